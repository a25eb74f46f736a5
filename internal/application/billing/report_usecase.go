package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/facturas-admin/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF de facturas: cada factura listada se
// enriquece con los datos de su cliente y se entrega al generador.
type ReportUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	generator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	generator ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{customers: customers, invoices: invoices, generator: generator}
}

// InvoiceReport arma el reporte respetando los mismos filtros del listado.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - el error del repositorio o del generador en caso contrario.
func (uc *ReportUseCase) InvoiceReport(ctx context.Context, filter repository.InvoiceFilter) (pdfBytes []byte, filename string, err error) {
	invoices, err := uc.invoices.List(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar facturas: %w", err)
	}
	customers, err := uc.customers.Search(ctx, "")
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar clientes: %w", err)
	}

	byID := make(map[int64]int, len(customers))
	for i, c := range customers {
		byID[c.ID] = i
	}

	rows := make([]InvoiceReportRow, 0, len(invoices))
	for _, inv := range invoices {
		row := InvoiceReportRow{Invoice: *inv}
		if i, ok := byID[inv.CustomerID]; ok {
			row.CustomerName = customers[i].Name
			row.CustomerEmail = customers[i].Email
			row.CustomerPhone = customers[i].Phone
		}
		rows = append(rows, row)
	}

	pdfBytes, err = uc.generator.GenerateInvoiceReport(ctx, rows, customers)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("reporte_facturas_%s.pdf", time.Now().Format("2006-01-02"))
	return pdfBytes, filename, nil
}
