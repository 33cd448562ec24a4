package domain

import (
	"context"
	"time"
)

// Company is an employer profile. It shares its primary key with the
// owning user: one user has at most one company profile.
type Company struct {
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Email       string    `json:"email" validate:"required,email"`
	CNPJ        string    `json:"cnpj" validate:"required,min=14,max=18"`
	Description string    `json:"description" validate:"required"`
	Size        string    `json:"size" validate:"required"`
	Website     string    `json:"website" validate:"omitempty,url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CompanyRepository interface {
	// Create returns a conflict error when email or CNPJ is already taken.
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	GetByUserID(ctx context.Context, userID int64) (*Company, error)
}

type CompanyUsecase interface {
	UpsertProfile(ctx context.Context, userID int64, company *Company) (*Company, bool, error)
	GetProfile(ctx context.Context, userID int64) (*Company, error)
	GetByUserID(ctx context.Context, userID int64) (*Company, error)
}
