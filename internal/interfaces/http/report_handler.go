package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturas-admin/internal/application/billing"
	"github.com/jhoicas/facturas-admin/internal/application/dto"
)

// ReportHandler descarga del reporte PDF de facturas (protegido).
type ReportHandler struct {
	uc *billing.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *billing.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InvoiceReport GET /api/reports/invoices
// Acepta los mismos filtros que el listado de facturas.
func (h *ReportHandler) InvoiceReport(c *fiber.Ctx) error {
	filter, err := parseInvoiceFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdfBytes, filename, err := h.uc.InvoiceReport(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
