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

// CustomerUseCase casos de uso de clientes. Es el único camino por el que se
// crean, mutan o eliminan clientes: toda validación corre aquí, antes de
// cualquier escritura.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	tx        TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, tx: tx}
}

// Create valida nombre y teléfono (en ese orden) y persiste el cliente.
// La primera regla que falla retorna sin escribir nada.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validation.CustomerName(in.Name); err != nil {
		return nil, err
	}
	if err := validation.Phone(in.Phone); err != nil {
		return nil, err
	}
	now := time.Now()
	customer := &entity.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update localiza el cliente, aplica las mismas validaciones que Create y
// muta el registro en sitio.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if err := validation.CustomerName(in.Name); err != nil {
		return nil, err
	}
	if err := validation.Phone(in.Phone); err != nil {
		return nil, err
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina el cliente si no tiene facturas asociadas. La verificación
// y el borrado corren en una misma transacción para que la guarda no pueda
// quedar obsoleta entre la consulta y la escritura.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(customers repository.CustomerRepository, invoices repository.InvoiceRepository) error {
		customer, err := customers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrCustomerNotFound
		}
		has, err := invoices.ExistsByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if has {
			return domain.ErrCustomerHasInvoices
		}
		_, err = customers.Delete(ctx, id)
		return err
	})
}

// List devuelve todos los clientes, o los que contengan query como substring
// en nombre o email (sensible a mayúsculas). Orden por ID ascendente.
func (uc *CustomerUseCase) List(ctx context.Context, query string) ([]*dto.CustomerResponse, error) {
	list, err := uc.customers.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}
