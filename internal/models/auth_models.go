package models

import "time"

// User roles. The studio app only distinguishes administrators from
// regular billing users.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents a login account for the studio app.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // '-' means don't send in JSON response
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"` // ADMIN or USER
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
