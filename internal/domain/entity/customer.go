package entity

import "time"

// Customer representa un cliente de facturación.
// El ID lo asigna la base de datos (BIGSERIAL) y es inmutable.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string // 10 dígitos, validado por el Record Service
	CreatedAt time.Time
	UpdatedAt time.Time
}
