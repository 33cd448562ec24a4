package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (user_id, name, email, cnpj, description, size, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		company.UserID, company.Name, company.Email, company.CNPJ,
		company.Description, company.Size, company.Website,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A company with the given email or CNPJ already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `
		UPDATE companies
		SET name = $2, email = $3, cnpj = $4, description = $5, size = $6, website = $7, updated_at = $8
		WHERE user_id = $1`

	company.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		company.UserID, company.Name, company.Email, company.CNPJ,
		company.Description, company.Size, company.Website, company.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A company with the given email or CNPJ already exists")
		}
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	query := `
		SELECT user_id, name, email, cnpj, description, size, website, created_at, updated_at
		FROM companies WHERE user_id = $1`

	var company domain.Company
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&company.UserID, &company.Name, &company.Email, &company.CNPJ,
		&company.Description, &company.Size, &company.Website,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}
