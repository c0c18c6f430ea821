package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoice-manager/internal/domain"
	"github.com/jhoicas/invoice-manager/internal/domain/entity"
	"github.com/jhoicas/invoice-manager/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const selectInvoiceView = `
	SELECT i.id, i.customer_id, c.full_name AS customer_name,
	       i.billing_address, i.description, i.amount, i.status,
	       i.created_at, i.updated_at
	FROM invoices i
	JOIN customers c ON c.id = i.customer_id`

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	tx  *TxRunner
	now func() time.Time
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(tx *TxRunner) *InvoiceRepo {
	return &InvoiceRepo{tx: tx, now: time.Now}
}

func (r *InvoiceRepo) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Second)
}

// Create persiste la factura con created_at = updated_at = ahora.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	now := r.timestamp()
	query := `
		INSERT INTO invoices (customer_id, billing_address, description, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.tx.Run(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query,
			invoice.CustomerID, invoice.BillingAddress, invoice.Description,
			invoice.Amount, string(invoice.Status), now, now,
		).Scan(&invoice.ID)
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	return nil
}

// GetByID obtiene la factura unida con su cliente.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.InvoiceView, error) {
	var view *entity.InvoiceView
	err := r.tx.Run(ctx, func(q Querier) error {
		v, err := scanInvoiceView(q.QueryRow(ctx, selectInvoiceView+` WHERE i.id = $1`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("get invoice: %w", err)
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// List lista todas las facturas, la más reciente primero.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.InvoiceView, error) {
	var list []*entity.InvoiceView
	err := r.tx.Run(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, selectInvoiceView+` ORDER BY i.id DESC`)
		if err != nil {
			return fmt.Errorf("list invoices: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			v, err := scanInvoiceView(rows)
			if err != nil {
				return fmt.Errorf("scan invoice: %w", err)
			}
			list = append(list, v)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Update sobrescribe todos los campos editables de la factura.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) (bool, error) {
	now := r.timestamp()
	query := `
		UPDATE invoices
		SET customer_id = $2, billing_address = $3, description = $4,
		    amount = $5, status = $6, updated_at = $7
		WHERE id = $1`
	var affected int64
	err := r.tx.Run(ctx, func(q Querier) error {
		tag, err := q.Exec(ctx, query,
			invoice.ID, invoice.CustomerID, invoice.BillingAddress, invoice.Description,
			invoice.Amount, string(invoice.Status), now,
		)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrCustomerNotFound
		}
		return false, fmt.Errorf("update invoice: %w", err)
	}
	if affected == 0 {
		return false, nil
	}
	invoice.UpdatedAt = now
	return true, nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	var affected int64
	err := r.tx.Run(ctx, func(q Querier) error {
		tag, err := q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return affected > 0, nil
}

func scanInvoiceView(row pgx.Row) (*entity.InvoiceView, error) {
	var v entity.InvoiceView
	var status string
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.CustomerName,
		&v.BillingAddress, &v.Description, &v.Amount, &status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Status = entity.InvoiceStatus(status)
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	return &v, nil
}
