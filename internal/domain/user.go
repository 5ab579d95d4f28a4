package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User represents an account able to sign in to the back-office
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role constants
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// UserRepository defines the interface for user operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
