package billing

import (
	"context"

	"github.com/jhoicas/invoice-manager/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación imprimible de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.InvoiceView) ([]byte, error)
}
