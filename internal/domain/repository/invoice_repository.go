package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturas-admin/internal/domain/entity"
)

// InvoiceFilter filtros conjuntivos para el listado de facturas.
// Un campo nil no impone restricción; todos los presentes deben cumplirse.
type InvoiceFilter struct {
	Date       *string
	CustomerID *int64
	AmountMin  *decimal.Decimal // cota inferior inclusiva
	AmountMax  *decimal.Decimal // cota superior inclusiva
}

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// Create persiste la factura y escribe el ID asignado en invoice.ID.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID devuelve (nil, nil) si la factura no existe.
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// List devuelve las facturas que cumplen TODOS los filtros presentes,
	// ordenadas por ID ascendente.
	List(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete devuelve cuántas filas eliminó (0 = no existía).
	Delete(ctx context.Context, id int64) (int64, error)
	// ExistsByCustomer indica si el cliente tiene al menos una factura.
	// Soporta la guarda de integridad referencial al eliminar clientes.
	ExistsByCustomer(ctx context.Context, customerID int64) (bool, error)
}
