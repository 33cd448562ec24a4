package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationSelect = `
	SELECT a.id, a.job_id, a.candidate_id, a.status, a.applied_at, a.updated_at,
	       j.title, j.company_id, co.name, ca.name, ca.email
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN companies co ON co.user_id = j.company_id
	JOIN candidates ca ON ca.user_id = a.candidate_id`

// applicationSortColumns whitelists the sortable columns for List.
var applicationSortColumns = map[string]string{
	"applied_at": "a.applied_at",
	"updated_at": "a.updated_at",
	"status":     "a.status",
	"id":         "a.id",
}

// Create inserts a new application. The unique index on
// (job_id, candidate_id) is the authoritative duplicate guard: a
// violation under concurrent submission comes back as
// domain.ErrDuplicateApplication.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, candidate_id, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.Status, app.AppliedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := applicationSelect + ` WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.Status,
		&app.AppliedAt, &app.UpdatedAt,
		&app.JobTitle, &app.JobCompanyID, &app.CompanyName,
		&app.CandidateName, &app.CandidateEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, candidateID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, candidateID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, int64, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.CompanyID != nil {
		addCondition("j.company_id = $%d", *filter.CompanyID)
	}
	if filter.CandidateID != nil {
		addCondition("a.candidate_id = $%d", *filter.CandidateID)
	}
	if filter.JobID != nil {
		addCondition("a.job_id = $%d", *filter.JobID)
	}
	if filter.Status != nil {
		addCondition("a.status = $%d", string(*filter.Status))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `
		SELECT COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortCol, ok := applicationSortColumns[filter.SortBy]
	if !ok {
		sortCol = "a.applied_at"
		filter.SortDesc = true
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	// Ties on the sort key break by ascending id so the order is stable.
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query := fmt.Sprintf("%s%s ORDER BY %s %s, a.id ASC LIMIT $%d OFFSET $%d",
		applicationSelect, where, sortCol, direction, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateID, &app.Status,
			&app.AppliedAt, &app.UpdatedAt,
			&app.JobTitle, &app.JobCompanyID, &app.CompanyName,
			&app.CandidateName, &app.CandidateEmail,
		); err != nil {
			return nil, 0, err
		}
		applications = append(applications, app)
	}
	return applications, total, rows.Err()
}

// UpdateStatus performs one lifecycle step in a single transaction. The
// current status is re-read under a row lock so concurrent transitions
// on the same application serialize; the transition table is checked
// against that locked value, not the caller's stale read.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, next domain.ApplicationStatus) (*domain.Application, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var current domain.ApplicationStatus
	err = tx.QueryRow(ctx,
		`SELECT status FROM applications WHERE id = $1 FOR UPDATE`, id,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := domain.ValidateTransition(current, next); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`,
		id, next, time.Now(),
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}
