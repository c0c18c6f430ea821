package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-manager/internal/domain/entity"
)

// CreateCustomerRequest body para POST /api/customers (JSON o formulario, todo como texto).
type CreateCustomerRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// InvoiceRequest body para POST /api/invoices y PUT /api/invoices/:id.
// Los campos llegan crudos; customer_id y amount se convierten tras validar.
type InvoiceRequest struct {
	CustomerID     string `json:"customer_id" form:"customer_id"`
	BillingAddress string `json:"billing_address" form:"billing_address"`
	Description    string `json:"description" form:"description"`
	Amount         string `json:"amount" form:"amount"`
	Status         string `json:"status" form:"status"` // vacío = draft
}

// InvoiceResponse factura unida con el nombre del cliente.
type InvoiceResponse struct {
	ID             int64           `json:"id"`
	CustomerID     int64           `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	BillingAddress string          `json:"billing_address"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreatedResponse identificador devuelto tras crear un recurso.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// NewCustomerResponse mapea la entidad a la respuesta.
func NewCustomerResponse(c *entity.Customer) *CustomerResponse {
	return &CustomerResponse{ID: c.ID, FullName: c.FullName, Email: c.Email, Phone: c.Phone}
}

// NewInvoiceResponse mapea la vista a la respuesta.
func NewInvoiceResponse(v *entity.InvoiceView) *InvoiceResponse {
	return &InvoiceResponse{
		ID:             v.ID,
		CustomerID:     v.CustomerID,
		CustomerName:   v.CustomerName,
		BillingAddress: v.BillingAddress,
		Description:    v.Description,
		Amount:         v.Amount,
		Status:         string(v.Status),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}
