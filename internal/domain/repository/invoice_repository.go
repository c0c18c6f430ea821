package repository

import (
	"context"

	"github.com/jhoicas/invoice-manager/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Cada operación es atómica por sí misma: confirma al terminar o no deja rastro.
type InvoiceRepository interface {
	// Create inserta la factura, asigna ID y fija CreatedAt = UpdatedAt = ahora (UTC, segundos).
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID devuelve la factura unida con el nombre del cliente, o nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.InvoiceView, error)
	// List devuelve todas las facturas unidas con su cliente, por id descendente.
	List(ctx context.Context) ([]*entity.InvoiceView, error)
	// Update sobrescribe todos los campos editables y refresca UpdatedAt.
	// Devuelve false si invoice.ID no existe.
	Update(ctx context.Context, invoice *entity.Invoice) (bool, error)
	// Delete borra físicamente la factura. Devuelve false si no existía.
	Delete(ctx context.Context, id int64) (bool, error)
}

// SchemaInitializer crea las tablas si faltan. Debe ser idempotente.
type SchemaInitializer interface {
	InitSchema(ctx context.Context) error
}
