package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoice-manager/internal/domain/entity"
	"github.com/jhoicas/invoice-manager/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	tx *TxRunner
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(tx *TxRunner) *CustomerRepo {
	return &CustomerRepo{tx: tx}
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (full_name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id`
	return r.tx.Run(ctx, func(q Querier) error {
		err := q.QueryRow(ctx, query, customer.FullName, customer.Email, customer.Phone).Scan(&customer.ID)
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
		return nil
	})
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `SELECT id, full_name, email, phone FROM customers WHERE id = $1`
	var c *entity.Customer
	err := r.tx.Run(ctx, func(q Querier) error {
		var row entity.Customer
		err := q.QueryRow(ctx, query, id).Scan(&row.ID, &row.FullName, &row.Email, &row.Phone)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("get customer: %w", err)
		}
		c = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List lista todos los clientes, el más reciente primero.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT id, full_name, email, phone FROM customers ORDER BY id DESC`
	var list []*entity.Customer
	err := r.tx.Run(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query)
		if err != nil {
			return fmt.Errorf("list customers: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var c entity.Customer
			if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone); err != nil {
				return fmt.Errorf("scan customer: %w", err)
			}
			list = append(list, &c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}
