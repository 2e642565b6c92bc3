package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex
)

// ConnectDB initializes the shared DB connection (idempotent).
func ConnectDB(env Env) *sql.DB {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		env.DBUser,
		env.DBPassword,
		env.DBHost,
		env.DBPort,
		env.DBName,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("No se pudo abrir la conexión a MySQL: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("No se pudo hacer ping a MySQL: %v", err)
	}

	DB = db
	log.Printf("Conexión a MySQL establecida (%s)", env.DBName)
	return DB
}

func EnsureDB() error {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB == nil {
		return fmt.Errorf("base de datos no inicializada")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return DB.PingContext(ctx)
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
