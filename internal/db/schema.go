package db

import "database/sql"

// Schema statements for the three core tables. Reservas carries
// ON DELETE CASCADE so a trip cancellation can never leave orphans,
// and viajes enforces one instance per (ruta, fecha_salida).
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS rutas (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	nombre VARCHAR(255) NOT NULL,
	origen VARCHAR(100) NOT NULL,
	destino VARCHAR(100) NOT NULL,
	precio_base DECIMAL(10,2) NOT NULL DEFAULT 0,
	capacidad INT NOT NULL DEFAULT 14,
	hora_salida VARCHAR(8) NOT NULL DEFAULT '00:00',
	hora_llegada VARCHAR(8) NOT NULL DEFAULT '00:00',
	paradas JSON NULL,
	dias_operativos JSON NULL,
	activa BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_rutas_origen_destino (origen, destino),
	KEY idx_rutas_activa (activa)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS viajes (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	ruta_id BIGINT NOT NULL,
	fecha_salida DATETIME NOT NULL,
	asientos_ocupados INT NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_viaje_ruta_fecha (ruta_id, fecha_salida),
	KEY idx_viajes_fecha (fecha_salida),
	CONSTRAINT fk_viajes_ruta FOREIGN KEY (ruta_id) REFERENCES rutas(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS reservas (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	viaje_id BIGINT NOT NULL,
	cliente_nombre VARCHAR(255) NOT NULL,
	cliente_email VARCHAR(255) NOT NULL,
	parada_abordaje VARCHAR(100) NULL,
	hora_abordaje VARCHAR(8) NULL,
	codigo_visual VARCHAR(20) NOT NULL,
	firma_seguridad CHAR(36) NOT NULL,
	validado BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_reserva_firma (firma_seguridad),
	KEY idx_reservas_viaje (viaje_id),
	CONSTRAINT fk_reservas_viaje FOREIGN KEY (viaje_id) REFERENCES viajes(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

// EnsureSchema creates the core tables when they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
