package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers (también PUT /:id).
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone"`
}

// CreateInvoiceRequest body para POST /api/invoices (también PUT /:id).
// Amount viaja como string crudo: la validación y el parseo son del núcleo,
// no del binding JSON.
type CreateInvoiceRequest struct {
	CustomerID int64  `json:"customer_id"`
	Date       string `json:"date"`
	Amount     string `json:"amount"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
}
