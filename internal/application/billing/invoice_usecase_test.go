package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-admin/internal/application/billing"
	"github.com/jhoicas/facturas-admin/internal/application/dto"
	"github.com/jhoicas/facturas-admin/internal/domain"
	"github.com/jhoicas/facturas-admin/internal/domain/repository"
)

type invoiceFixture struct {
	customerUC *billing.CustomerUseCase
	invoiceUC  *billing.InvoiceUseCase
	customers  *fakeCustomerRepo
	invoices   *fakeInvoiceRepo
}

func newInvoiceFixture() *invoiceFixture {
	customers := newFakeCustomerRepo()
	invoices := newFakeInvoiceRepo()
	tx := &fakeTxRunner{customers: customers, invoices: invoices}
	return &invoiceFixture{
		customerUC: billing.NewCustomerUseCase(customers, tx),
		invoiceUC:  billing.NewInvoiceUseCase(customers, invoices),
		customers:  customers,
		invoices:   invoices,
	}
}

func (f *invoiceFixture) mustCustomer(t *testing.T, name, email, phone string) int64 {
	t.Helper()
	c, err := f.customerUC.Create(context.Background(), dto.CreateCustomerRequest{Name: name, Email: email, Phone: phone})
	require.NoError(t, err)
	return c.ID
}

func (f *invoiceFixture) mustInvoice(t *testing.T, customerID int64, date, amount string) int64 {
	t.Helper()
	inv, err := f.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{CustomerID: customerID, Date: date, Amount: amount})
	require.NoError(t, err)
	return inv.ID
}

// Cliente inexistente: NotFound sin importar que fecha y monto sean válidos.
func TestInvoiceCreate_ClienteInexistente(t *testing.T) {
	f := newInvoiceFixture()

	_, err := f.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{CustomerID: 99, Date: "2024-01-01", Amount: "150.50"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	// La referencia se verifica antes que el monto: con ambos inválidos
	// también gana NotFound.
	_, err = f.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{CustomerID: 99, Date: "2024-01-01", Amount: "abc"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Zero(t, f.invoices.len())
}

func TestInvoiceCreate_MontoInvalido(t *testing.T) {
	f := newInvoiceFixture()
	customerID := f.mustCustomer(t, "Ana Gomez", "ana@x.com", "5551234567")

	for _, amount := range []string{"", "abc", "1.2.3", "-5", "1,50"} {
		_, err := f.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{CustomerID: customerID, Date: "2024-01-01", Amount: amount})
		assert.ErrorIs(t, err, domain.ErrAmountNotANumber, "monto %q", amount)
	}
	assert.Zero(t, f.invoices.len(), "un create fallido no debe dejar registros")
}

func TestInvoiceCreate_GuardaMontoParseado(t *testing.T) {
	f := newInvoiceFixture()
	customerID := f.mustCustomer(t, "Ana Gomez", "ana@x.com", "5551234567")

	inv, err := f.invoiceUC.Create(context.Background(), dto.CreateInvoiceRequest{CustomerID: customerID, Date: "2024-01-01", Amount: "150.50"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), inv.ID)
	assert.True(t, inv.Amount.Equal(decimal.RequireFromString("150.50")))
}

func TestInvoiceUpdate_NoExiste(t *testing.T) {
	f := newInvoiceFixture()
	customerID := f.mustCustomer(t, "Ana Gomez", "ana@x.com", "5551234567")

	_, err := f.invoiceUC.Update(context.Background(), 7, dto.CreateInvoiceRequest{CustomerID: customerID, Date: "2024-01-01", Amount: "10"})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestInvoiceUpdate_MismosChequeosQueCreate(t *testing.T) {
	f := newInvoiceFixture()
	ctx := context.Background()
	customerID := f.mustCustomer(t, "Ana Gomez", "ana@x.com", "5551234567")
	invoiceID := f.mustInvoice(t, customerID, "2024-01-01", "100")

	// Reasignar a un cliente inexistente falla.
	_, err := f.invoiceUC.Update(ctx, invoiceID, dto.CreateInvoiceRequest{CustomerID: 99, Date: "2024-01-01", Amount: "100"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	// Monto inválido falla y no muta.
	_, err = f.invoiceUC.Update(ctx, invoiceID, dto.CreateInvoiceRequest{CustomerID: customerID, Date: "2024-01-01", Amount: "x"})
	assert.ErrorIs(t, err, domain.ErrAmountNotANumber)

	list, err := f.invoiceUC.List(ctx, repository.InvoiceFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Amount.Equal(decimal.RequireFromString("100")))

	// Update válido muta en sitio.
	updated, err := f.invoiceUC.Update(ctx, invoiceID, dto.CreateInvoiceRequest{CustomerID: customerID, Date: "2024-02-02", Amount: "200.25"})
	require.NoError(t, err)
	assert.Equal(t, invoiceID, updated.ID)
	assert.Equal(t, "2024-02-02", updated.Date)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("200.25")))
}

func TestInvoiceDelete_Idempotencia(t *testing.T) {
	f := newInvoiceFixture()
	customerID := f.mustCustomer(t, "Ana Gomez", "ana@x.com", "5551234567")
	invoiceID := f.mustInvoice(t, customerID, "2024-01-01", "100")

	require.NoError(t, f.invoiceUC.Delete(context.Background(), invoiceID))
	assert.ErrorIs(t, f.invoiceUC.Delete(context.Background(), invoiceID), domain.ErrInvoiceNotFound)
}

// Filtros conjuntivos sobre un fixture de 6 facturas y 2 clientes:
// cada filtro presente recorta, los ausentes no restringen.
func TestInvoiceList_FiltroConjuntivo(t *testing.T) {
	f := newInvoiceFixture()
	ctx := context.Background()
	ana := f.mustCustomer(t, "Ana Gomez", "ana@x.com", "5551234567")
	juan := f.mustCustomer(t, "Juan Perez", "juan@x.com", "5559876543")

	inv1 := f.mustInvoice(t, ana, "2024-01-01", "50")
	inv2 := f.mustInvoice(t, ana, "2024-01-01", "150")
	inv3 := f.mustInvoice(t, ana, "2024-02-01", "250")
	inv4 := f.mustInvoice(t, juan, "2024-01-01", "100")
	inv5 := f.mustInvoice(t, juan, "2024-02-01", "300")
	inv6 := f.mustInvoice(t, juan, "2024-03-01", "99.99")

	amountMin := decimal.RequireFromString("100")
	amountMax := decimal.RequireFromString("200")

	// customer_id=ana AND amount>=100: exactamente inv2 e inv3.
	got, err := f.invoiceUC.List(ctx, repository.InvoiceFilter{CustomerID: &ana, AmountMin: &amountMin})
	require.NoError(t, err)
	assert.Equal(t, []int64{inv2, inv3}, invoiceIDs(got))

	// Rango inclusivo [100, 200]: inv2 (150) e inv4 (100, cota inferior inclusiva).
	got, err = f.invoiceUC.List(ctx, repository.InvoiceFilter{AmountMin: &amountMin, AmountMax: &amountMax})
	require.NoError(t, err)
	assert.Equal(t, []int64{inv2, inv4}, invoiceIDs(got))

	// Fecha exacta.
	date := "2024-01-01"
	got, err = f.invoiceUC.List(ctx, repository.InvoiceFilter{Date: &date})
	require.NoError(t, err)
	assert.Equal(t, []int64{inv1, inv2, inv4}, invoiceIDs(got))

	// Los tres filtros juntos.
	got, err = f.invoiceUC.List(ctx, repository.InvoiceFilter{Date: &date, CustomerID: &juan, AmountMin: &amountMin})
	require.NoError(t, err)
	assert.Equal(t, []int64{inv4}, invoiceIDs(got))

	// Sin filtros: todas, orden por ID ascendente.
	got, err = f.invoiceUC.List(ctx, repository.InvoiceFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{inv1, inv2, inv3, inv4, inv5, inv6}, invoiceIDs(got))
}

// Escenario completo: alta de cliente y factura, listado por rango de monto
// y guarda de integridad al eliminar.
func TestEscenarioCompleto(t *testing.T) {
	f := newInvoiceFixture()
	ctx := context.Background()

	ana, err := f.customerUC.Create(ctx, dto.CreateCustomerRequest{Name: "Ana Gomez", Email: "ana@x.com", Phone: "5551234567"})
	require.NoError(t, err)
	require.Equal(t, int64(1), ana.ID)

	inv, err := f.invoiceUC.Create(ctx, dto.CreateInvoiceRequest{CustomerID: ana.ID, Date: "2024-01-01", Amount: "150.50"})
	require.NoError(t, err)
	require.Equal(t, int64(1), inv.ID)
	require.True(t, inv.Amount.Equal(decimal.RequireFromString("150.50")))

	amountMin := decimal.RequireFromString("100")
	amountMax := decimal.RequireFromString("200")
	got, err := f.invoiceUC.List(ctx, repository.InvoiceFilter{AmountMin: &amountMin, AmountMax: &amountMax})
	require.NoError(t, err)
	require.Equal(t, []int64{inv.ID}, invoiceIDs(got))

	// La factura 1 sigue referenciando al cliente 1: el delete se rechaza.
	err = f.customerUC.Delete(ctx, ana.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerHasInvoices)
	assert.Equal(t, 1, f.customers.len())
}

func invoiceIDs(list []*dto.InvoiceResponse) []int64 {
	ids := make([]int64, 0, len(list))
	for _, inv := range list {
		ids = append(ids, inv.ID)
	}
	return ids
}
