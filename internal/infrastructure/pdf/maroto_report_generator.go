// Package pdf implementa el reporte de facturas en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Reporte de Facturas + fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Cliente | Fecha | Monto   (una fila por factura) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: suma de los montos listados                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DIRECTORIO: clientes (nombre, email, teléfono)              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/facturas-admin/internal/application/billing"
	"github.com/jhoicas/facturas-admin/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa billing.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInvoiceReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInvoiceReport(
	_ context.Context,
	rows []appbilling.InvoiceReportRow,
	customers []*entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Facturas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(invoiceHeaderRow())
	total := decimal.Zero
	for _, r := range invoiceRows(rows) {
		m.AddRows(r)
	}
	for _, r := range rows {
		total = total.Add(r.Invoice.Amount)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total, len(rows)))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(customerHeaderRow())
	for _, r := range customerRows(customers) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRow: título del reporte + fecha de generación.
func titleRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Facturas", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// invoiceHeaderRow: cabecera de la tabla de facturas.
func invoiceHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Cliente", 6, align.Left),
		h("Fecha", 2, align.Center),
		h("Monto", 3, align.Right),
	)
}

// invoiceRows: una fila por factura (id, cliente, fecha, monto).
func invoiceRows(list []appbilling.InvoiceReportRow) []core.Row {
	result := make([]core.Row, 0, len(list))
	for _, r := range list {
		name := r.CustomerName
		if name == "" {
			name = fmt.Sprintf("Cliente %d", r.Invoice.CustomerID) // fallback
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.Invoice.ID),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				r.Invoice.Date,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+r.Invoice.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: cantidad de facturas y suma de montos.
func totalRow(total decimal.Decimal, count int) core.Row {
	return row.New(10).Add(
		col.New(7).Add(text.New(
			fmt.Sprintf("%d factura(s)", count),
			props.Text{Size: 8, Color: colorGray, Top: 2, Left: 1},
		)),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 1, Right: 2,
		})),
		col.New(3).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 1, Right: 1,
		})),
	)
}

// customerHeaderRow: cabecera del directorio de clientes.
func customerHeaderRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New("DIRECTORIO DE CLIENTES", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3,
		})),
	)
}

// customerRows: una fila por cliente (nombre, email, teléfono).
func customerRows(customers []*entity.Customer) []core.Row {
	result := make([]core.Row, 0, len(customers))
	for _, c := range customers {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(c.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(nonEmpty(c.Email, "—"), props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(3).Add(text.New(nonEmpty(c.Phone, "—"), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1, Color: colorGray})),
		))
	}
	return result
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
