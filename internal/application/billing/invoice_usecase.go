package billing

import (
	"context"
	"time"

	"github.com/jhoicas/facturas-admin/internal/application/dto"
	"github.com/jhoicas/facturas-admin/internal/domain"
	"github.com/jhoicas/facturas-admin/internal/domain/entity"
	"github.com/jhoicas/facturas-admin/internal/domain/repository"
	"github.com/jhoicas/facturas-admin/internal/domain/validation"
)

// InvoiceUseCase casos de uso de facturas. Garantiza que toda factura
// persistida referencia a un cliente vivo y lleva un monto ya validado.
type InvoiceUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(customers repository.CustomerRepository, invoices repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{customers: customers, invoices: invoices}
}

// Create verifica el cliente, valida el monto y persiste.
// El orden importa: primero la referencia, después el monto.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	customer, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	amount, err := validation.Amount(in.Amount)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	invoice := &entity.Invoice{
		CustomerID: in.CustomerID,
		Date:       in.Date,
		Amount:     amount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Update localiza la factura y aplica los mismos chequeos que Create.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	customer, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	amount, err := validation.Amount(in.Amount)
	if err != nil {
		return nil, err
	}
	invoice.CustomerID = in.CustomerID
	invoice.Date = in.Date
	invoice.Amount = amount
	invoice.UpdatedAt = time.Now()
	if err := uc.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Delete elimina la factura. Un segundo Delete sobre el mismo ID retorna
// ErrInvoiceNotFound.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	affected, err := uc.invoices.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

// List devuelve las facturas que cumplen TODOS los filtros presentes
// (semántica AND), ordenadas por ID ascendente.
func (uc *InvoiceUseCase) List(ctx context.Context, filter repository.InvoiceFilter) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoices.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Date:       inv.Date,
		Amount:     inv.Amount,
	}
}
