package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de la factura. Lo asigna el usuario, sin reglas de transición.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceStatuses lista cerrada de estados válidos, en el orden en que se muestran.
var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusSent,
	InvoiceStatusPaid,
	InvoiceStatusCancelled,
}

// Valid indica si s pertenece al conjunto fijo de estados.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Invoice representa una factura ligada a un único cliente.
// CreatedAt y UpdatedAt los fija la capa de persistencia (UTC, precisión de segundos).
type Invoice struct {
	ID             int64
	CustomerID     int64
	BillingAddress string
	Description    string
	Amount         decimal.Decimal
	Status         InvoiceStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InvoiceView es la factura unida con el nombre de su cliente (solo lectura).
type InvoiceView struct {
	Invoice
	CustomerName string
}
