package sqlite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-manager/internal/domain/entity"
)

// CustomerModel fila de la tabla customers.
type CustomerModel struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FullName string `gorm:"column:full_name"`
	Email    string `gorm:"column:email"`
	Phone    string `gorm:"column:phone"`
}

func (CustomerModel) TableName() string { return "customers" }

func (m CustomerModel) toEntity() *entity.Customer {
	return &entity.Customer{ID: m.ID, FullName: m.FullName, Email: m.Email, Phone: m.Phone}
}

// InvoiceModel fila de la tabla invoices.
type InvoiceModel struct {
	ID             int64           `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID     int64           `gorm:"column:customer_id"`
	BillingAddress string          `gorm:"column:billing_address"`
	Description    string          `gorm:"column:description"`
	Amount         decimal.Decimal `gorm:"column:amount"`
	Status         string          `gorm:"column:status"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (InvoiceModel) TableName() string { return "invoices" }

// invoiceViewRow resultado del JOIN invoices + customers.
type invoiceViewRow struct {
	ID             int64           `gorm:"column:id"`
	CustomerID     int64           `gorm:"column:customer_id"`
	CustomerName   string          `gorm:"column:customer_name"`
	BillingAddress string          `gorm:"column:billing_address"`
	Description    string          `gorm:"column:description"`
	Amount         decimal.Decimal `gorm:"column:amount"`
	Status         string          `gorm:"column:status"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (r invoiceViewRow) toEntity() *entity.InvoiceView {
	return &entity.InvoiceView{
		Invoice: entity.Invoice{
			ID:             r.ID,
			CustomerID:     r.CustomerID,
			BillingAddress: r.BillingAddress,
			Description:    r.Description,
			Amount:         r.Amount,
			Status:         entity.InvoiceStatus(r.Status),
			CreatedAt:      r.CreatedAt.UTC(),
			UpdatedAt:      r.UpdatedAt.UTC(),
		},
		CustomerName: r.CustomerName,
	}
}
