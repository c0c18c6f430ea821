// Package sqlite implementa los repositorios sobre un archivo SQLite local vía GORM.
// Es el almacenamiento por defecto cuando STORE_DRIVER no se define.
package sqlite

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database conexión GORM al archivo SQLite.
type Database struct {
	DB *gorm.DB
}

// busyTimeoutMS espera ante bloqueos de otro proceso sobre el mismo archivo.
const busyTimeoutMS = 5000

// Open abre (o crea) el archivo en path con llaves foráneas activas.
// Una sola conexión abierta: SQLite admite un único escritor, así que las
// operaciones concurrentes esperan turno en el pool.
func Open(path string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(withPragmas(path)), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtener sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Database{DB: db}, nil
}

// Close cierra el pool de conexiones subyacente.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("obtener sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Run ejecuta fn dentro de una transacción: commit si fn no falla, rollback en otro caso.
func (d *Database) Run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.DB.WithContext(ctx).Transaction(fn)
}

func withPragmas(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_foreign_keys=on&_busy_timeout=%d", path, sep, busyTimeoutMS)
}
