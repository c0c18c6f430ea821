package repository

import (
	"context"

	"github.com/jhoicas/invoice-manager/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// No valida: los datos llegan ya revisados por el paquete validation.
type CustomerRepository interface {
	// Create inserta el cliente y asigna customer.ID.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	// List devuelve todos los clientes, el más reciente primero.
	List(ctx context.Context) ([]*entity.Customer, error)
}
