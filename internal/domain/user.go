package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleAdmin     = "admin"
	RoleCompany   = "company"
	RoleCandidate = "candidate"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, username, role, password string) (*User, error)
	Login(ctx context.Context, username, password string) (string, *User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
