package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "boletera/backend/internal/config"
	intdb "boletera/backend/internal/db"
	router "boletera/backend/internal/http"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(db); err != nil {
		log.Fatalf("No se pudo preparar el esquema: %v", err)
	}

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Servidor escuchando en http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("No se pudo iniciar el servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Apagando el servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("El apagado del servidor falló: %v", err)
	}

	log.Println("Servidor detenido correctamente.")
}
