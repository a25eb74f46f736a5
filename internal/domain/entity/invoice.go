package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura simple (sin líneas de detalle).
// Cada factura pertenece exactamente a un Customer; el FK se valida en el
// Record Service antes de persistir y lo respalda la constraint de la tabla.
type Invoice struct {
	ID         int64
	CustomerID int64
	Date       string // texto "YYYY-MM-DD"; no se valida el calendario
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
