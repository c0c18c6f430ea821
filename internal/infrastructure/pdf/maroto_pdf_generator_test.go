package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-manager/internal/domain/entity"
)

func sampleInvoice() *entity.InvoiceView {
	ts := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)
	return &entity.InvoiceView{
		Invoice: entity.Invoice{
			ID:             42,
			CustomerID:     7,
			BillingAddress: "123 Main St, Springfield",
			Description:    "Website redesign",
			Amount:         decimal.RequireFromString("1250.5"),
			Status:         entity.InvoiceStatusPaid,
			CreatedAt:      ts,
			UpdatedAt:      ts.Add(time.Hour),
		},
		CustomerName: "Jane Doe",
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	out, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), sampleInvoice())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un documento PDF")
}

func TestHelpers(t *testing.T) {
	inv := sampleInvoice()
	assert.Equal(t, "Invoice #000042", invoiceNumber(inv))
	assert.Equal(t, "1250.50", formatAmount(inv))
}
