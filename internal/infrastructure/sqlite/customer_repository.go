package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/invoice-manager/internal/domain/entity"
	"github.com/jhoicas/invoice-manager/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre SQLite.
type CustomerRepo struct {
	db *Database
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(db *Database) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	m := CustomerModel{FullName: customer.FullName, Email: customer.Email, Phone: customer.Phone}
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		return tx.Create(&m).Error
	})
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	customer.ID = m.ID
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var m CustomerModel
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		return tx.Take(&m, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return m.toEntity(), nil
}

// List lista todos los clientes, el más reciente primero.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	var rows []CustomerModel
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		return tx.Order("id DESC").Find(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	list := make([]*entity.Customer, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}
