package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoice-manager/internal/domain/repository"
)

var _ repository.SchemaInitializer = (*Schema)(nil)

// schemaLockKey llave del advisory lock que serializa arranques simultáneos.
const schemaLockKey = 4_711_001

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id        BIGSERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		email     TEXT NOT NULL,
		phone     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id              BIGSERIAL PRIMARY KEY,
		customer_id     BIGINT NOT NULL REFERENCES customers(id),
		billing_address TEXT NOT NULL,
		description     TEXT NOT NULL,
		amount          NUMERIC NOT NULL,
		status          TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
}

// Schema crea las tablas de clientes y facturas.
type Schema struct {
	tx *TxRunner
}

// NewSchema construye el inicializador.
func NewSchema(tx *TxRunner) *Schema {
	return &Schema{tx: tx}
}

// InitSchema crea las tablas que falten. Se puede llamar en cada arranque.
func (s *Schema) InitSchema(ctx context.Context) error {
	return s.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, schemaLockKey); err != nil {
			return fmt.Errorf("schema lock: %w", err)
		}
		for _, ddl := range schemaDDL {
			if _, err := q.Exec(ctx, ddl); err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}
		return nil
	})
}
