package billing_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/facturas-admin/internal/application/billing"
	"github.com/jhoicas/facturas-admin/internal/domain/entity"
	"github.com/jhoicas/facturas-admin/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los adaptadores PostgreSQL: IDs secuenciales desde 1, (nil, nil) cuando no
// hay fila, filtrado conjuntivo y orden por ID ascendente.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]entity.Customer
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: make(map[int64]entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	r.items[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCustomerRepo) Search(_ context.Context, query string) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Customer
	for id := range r.items {
		c := r.items[id]
		if query == "" || strings.Contains(c.Name, query) || strings.Contains(c.Email, query) {
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *fakeCustomerRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type fakeInvoiceRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]entity.Invoice
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{items: make(map[int64]entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	inv.ID = r.nextID
	r.items[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Invoice
	for id := range r.items {
		inv := r.items[id]
		if filter.Date != nil && inv.Date != *filter.Date {
			continue
		}
		if filter.CustomerID != nil && inv.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.AmountMin != nil && inv.Amount.LessThan(*filter.AmountMin) {
			continue
		}
		if filter.AmountMax != nil && inv.Amount.GreaterThan(*filter.AmountMax) {
			continue
		}
		list = append(list, &inv)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *fakeInvoiceRepo) ExistsByCustomer(_ context.Context, customerID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.items {
		if inv.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInvoiceRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// fakeTxRunner ejecuta fn directamente sobre los fakes; si fn falla nada se
// revierte porque los fakes solo escriben al final de cada operación.
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	invoices  *fakeInvoiceRepo
}

var _ billing.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
) error) error {
	return fn(r.customers, r.invoices)
}
