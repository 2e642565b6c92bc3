package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "no encontrado"
	}
	return fmt.Sprintf("%s no encontrado", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("%s no válido", e.Field)
	}
	return "error de validación"
}

func (e ValidationError) Unwrap() error { return e.Err }

// SoldOutError signals an admission rejected because the trip has no
// remaining seats. User-visible, never retried automatically.
type SoldOutError struct {
	RutaID int64
	Fecha  string
}

func (e SoldOutError) Error() string {
	if e.Fecha != "" {
		return fmt.Sprintf("viaje agotado para el %s", e.Fecha)
	}
	return "viaje agotado"
}

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("conflicto de %s: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("conflicto de %s", e.Resource)
	default:
		return "conflicto"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// UnavailableError marks transient storage faults; the whole operation
// is safe to retry because no partial write committed before the fault.
type UnavailableError struct {
	Msg string
	Err error
}

func (e UnavailableError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "almacenamiento no disponible"
}

func (e UnavailableError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "error interno"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsSoldOut(err error) bool {
	var target SoldOutError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
