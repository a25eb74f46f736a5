package billing

import (
	"context"

	"github.com/jhoicas/facturas-admin/internal/domain/entity"
	"github.com/jhoicas/facturas-admin/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// Si fn retorna error, el caller hace rollback y nada queda persistido.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		invoices repository.InvoiceRepository,
	) error) error
}

// InvoiceReportRow factura enriquecida con los datos de su cliente,
// lista para renderizar una línea del reporte.
type InvoiceReportRow struct {
	Invoice       entity.Invoice
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// ReportPDFGenerator puerto de generación del reporte de facturas.
// El layout binario del PDF es asunto del adaptador, no del caso de uso.
type ReportPDFGenerator interface {
	GenerateInvoiceReport(ctx context.Context, rows []InvoiceReportRow, customers []*entity.Customer) ([]byte, error)
}
