package entity

import "time"

// User representa un usuario del panel de administración.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string // bcrypt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
