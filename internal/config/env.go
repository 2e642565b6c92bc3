package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CORSOrigins []string

	EmailJSServiceID      string
	EmailJSPublicKey      string
	EmailJSTemplateCompra string
	EmailJSTemplateCancel string
}

func LoadEnv() Env {
	env := Env{
		AppAddr:               getenv("APP_ADDR", ":8080"),
		GinMode:               strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBHost:                getenv("DB_HOST", "127.0.0.1"),
		DBPort:                getenv("DB_PORT", "3306"),
		DBUser:                getenv("DB_USER", "root"),
		DBPassword:            strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBName:                getenv("DB_NAME", "boletera_templo"),
		EmailJSServiceID:      strings.TrimSpace(os.Getenv("EMAILJS_SERVICE_ID")),
		EmailJSPublicKey:      strings.TrimSpace(os.Getenv("EMAILJS_PUBLIC_KEY")),
		EmailJSTemplateCompra: strings.TrimSpace(os.Getenv("EMAILJS_TEMPLATE_COMPRA")),
		EmailJSTemplateCancel: strings.TrimSpace(os.Getenv("EMAILJS_TEMPLATE_CANCEL")),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}
	if len(env.CORSOrigins) == 0 {
		env.CORSOrigins = []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}
	}

	return env
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
