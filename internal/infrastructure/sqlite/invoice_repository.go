package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jhoicas/invoice-manager/internal/domain"
	"github.com/jhoicas/invoice-manager/internal/domain/entity"
	"github.com/jhoicas/invoice-manager/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceViewColumns = `i.id, i.customer_id, c.full_name AS customer_name,
	i.billing_address, i.description, i.amount, i.status,
	i.created_at, i.updated_at`

// InvoiceRepo implementación de InvoiceRepository sobre SQLite.
type InvoiceRepo struct {
	db  *Database
	now func() time.Time
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(db *Database) *InvoiceRepo {
	return &InvoiceRepo{db: db, now: time.Now}
}

func (r *InvoiceRepo) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Second)
}

// Create persiste la factura con created_at = updated_at = ahora.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	now := r.timestamp()
	m := InvoiceModel{
		CustomerID:     invoice.CustomerID,
		BillingAddress: invoice.BillingAddress,
		Description:    invoice.Description,
		Amount:         invoice.Amount,
		Status:         string(invoice.Status),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		return tx.Create(&m).Error
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	invoice.ID = m.ID
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	return nil
}

// GetByID obtiene la factura unida con su cliente.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.InvoiceView, error) {
	var rows []invoiceViewRow
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		return joinedInvoices(tx).Where("i.id = ?", id).Limit(1).Scan(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toEntity(), nil
}

// List lista todas las facturas, la más reciente primero.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.InvoiceView, error) {
	var rows []invoiceViewRow
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		return joinedInvoices(tx).Order("i.id DESC").Scan(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	list := make([]*entity.InvoiceView, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

// Update sobrescribe todos los campos editables de la factura.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) (bool, error) {
	now := r.timestamp()
	var affected int64
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&InvoiceModel{}).Where("id = ?", invoice.ID).Updates(map[string]any{
			"customer_id":     invoice.CustomerID,
			"billing_address": invoice.BillingAddress,
			"description":     invoice.Description,
			"amount":          invoice.Amount,
			"status":          string(invoice.Status),
			"updated_at":      now,
		})
		affected = res.RowsAffected
		return res.Error
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
	err := r.db.Run(ctx, func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&InvoiceModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return affected > 0, nil
}

func joinedInvoices(tx *gorm.DB) *gorm.DB {
	return tx.Table("invoices AS i").
		Select(invoiceViewColumns).
		Joins("JOIN customers c ON c.id = i.customer_id")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
