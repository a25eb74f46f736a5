package repository

import (
	"context"

	"github.com/jhoicas/facturas-admin/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create persiste el cliente y escribe el ID asignado en customer.ID.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve (nil, nil) si el cliente no existe.
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	// Search lista clientes cuyo nombre o email contenga query como
	// substring (sensible a mayúsculas, semántica LIKE '%q%'). Con query
	// vacío devuelve todos. Orden estable por ID ascendente.
	Search(ctx context.Context, query string) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete devuelve cuántas filas eliminó (0 = no existía).
	Delete(ctx context.Context, id int64) (int64, error)
}
