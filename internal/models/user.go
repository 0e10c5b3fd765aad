package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Primary key
	Username     string    `json:"username" db:"username"`           // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`             // bcrypt password hash
	Role         string    `json:"role" db:"role"`                   // member or admin
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// IsAdmin reports whether the user holds the admin role.
func (u *UserDB) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
