// Package pdf genera la versión imprimible de una factura.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: INVOICE + N°          │  Estado + Fechas            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Dirección de facturación                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Descripción | Importe                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhoicas/invoice-manager/internal/application/billing"
	"github.com/jhoicas/invoice-manager/internal/domain/entity"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// colores por estado de la factura
var statusColors = map[entity.InvoiceStatus]*props.Color{
	entity.InvoiceStatusDraft:     colorGray,
	entity.InvoiceStatusSent:      colorPrimary,
	entity.InvoiceStatusPaid:      {Red: 20, Green: 130, Blue: 60},
	entity.InvoiceStatusCancelled: {Red: 170, Green: 30, Blue: 30},
}

const dateLayout = "2006-01-02 15:04 UTC"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, invoice *entity.InvoiceView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(invoiceNumber(invoice), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(invoice *entity.InvoiceView) core.Row {
	statusColor, ok := statusColors[invoice.Status]
	if !ok {
		statusColor = colorGray
	}
	return row.New(22).Add(
		col.New(7).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New(invoiceNumber(invoice), props.Text{
				Size: 10, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(strings.ToUpper(string(invoice.Status)), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: statusColor, Top: 1,
			}),
			text.New("Created: "+invoice.CreatedAt.UTC().Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Updated: "+invoice.UpdatedAt.UTC().Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(invoice *entity.InvoiceView) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
			text.New(invoice.BillingAddress, props.Text{
				Size: 9, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New("Description", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New("Amount", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

func detailRow(invoice *entity.InvoiceView) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New(invoice.Description, props.Text{Size: 9, Top: 2})),
		col.New(3).Add(text.New(formatAmount(invoice), props.Text{Size: 9, Align: align.Right, Top: 2})),
	)
}

func totalRow(invoice *entity.InvoiceView) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 3, Right: 2,
		})),
		col.New(3).Add(text.New(formatAmount(invoice), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 3,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func invoiceNumber(invoice *entity.InvoiceView) string {
	return fmt.Sprintf("Invoice #%06d", invoice.ID)
}

// formatAmount dos decimales fijos; sin símbolo de moneda.
func formatAmount(invoice *entity.InvoiceView) string {
	return invoice.Amount.StringFixed(2)
}
