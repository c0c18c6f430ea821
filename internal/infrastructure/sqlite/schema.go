package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/invoice-manager/internal/domain/repository"
)

var _ repository.SchemaInitializer = (*Database)(nil)

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		full_name TEXT NOT NULL,
		email     TEXT NOT NULL,
		phone     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id     INTEGER NOT NULL,
		billing_address TEXT NOT NULL,
		description     TEXT NOT NULL,
		amount          REAL NOT NULL,
		status          TEXT NOT NULL,
		created_at      DATETIME NOT NULL,
		updated_at      DATETIME NOT NULL,
		FOREIGN KEY(customer_id) REFERENCES customers(id)
	)`,
}

// InitSchema crea las tablas que falten. Se puede llamar en cada arranque.
func (d *Database) InitSchema(ctx context.Context) error {
	return d.Run(ctx, func(tx *gorm.DB) error {
		for _, ddl := range schemaDDL {
			if err := tx.Exec(ddl).Error; err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}
		return nil
	})
}
