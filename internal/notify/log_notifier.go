package notify

import (
	"context"
	"log"
)

// LogNotifier is the default sink when no mail provider is configured.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, msg Message) error {
	log.Printf("[NOTIFY] template=%s to=%s nombre=%s (sin proveedor de correo, solo log)",
		msg.Template, msg.ToEmail, msg.ToName)
	return nil
}
