package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
	RoleHR    = "hr"
	RoleOps   = "ops"
)

// User is a console user.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	Role         string // admin, sales, hr, ops
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
