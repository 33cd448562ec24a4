package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobSelect = `
	SELECT j.id, j.company_id, j.title, j.description, j.level, j.employment_type,
	       j.salary_min, j.salary_max, j.location, j.is_remote, j.status,
	       j.created_at, j.updated_at, c.name,
	       COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.id IS NOT NULL), '{}') AS skills
	FROM jobs j
	JOIN companies c ON c.user_id = j.company_id
	LEFT JOIN job_skills js ON js.job_id = j.id
	LEFT JOIN skills s ON s.id = js.skill_id`

const jobGroupBy = ` GROUP BY j.id, c.name`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (company_id, title, description, level, employment_type,
		                  salary_min, salary_max, location, is_remote, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}

	return r.db.QueryRow(ctx, query,
		job.CompanyID, job.Title, job.Description, job.Level, job.EmploymentType,
		job.SalaryMin, job.SalaryMax, job.Location, job.IsRemote, job.Status,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := jobSelect + ` WHERE j.id = $1` + jobGroupBy

	var job domain.Job
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.Level,
		&job.EmploymentType, &job.SalaryMin, &job.SalaryMax, &job.Location,
		&job.IsRemote, &job.Status, &job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, pq.Array(&skills),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Skills = skills
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := jobSelect + jobGroupBy + ` ORDER BY j.created_at DESC, j.id LIMIT $1 OFFSET $2`
	return r.fetchPage(ctx, query, total, limit, offset)
}

func (r *jobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := jobSelect + ` WHERE j.company_id = $3` + jobGroupBy +
		` ORDER BY j.created_at DESC, j.id LIMIT $1 OFFSET $2`
	return r.fetchPage(ctx, query, total, limit, offset, companyID)
}

func (r *jobRepo) fetchPage(ctx context.Context, query string, total int64, limit, offset int, extra ...interface{}) ([]domain.Job, int64, error) {
	args := append([]interface{}{limit, offset}, extra...)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var skills []string
		if err := rows.Scan(
			&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.Level,
			&job.EmploymentType, &job.SalaryMin, &job.SalaryMax, &job.Location,
			&job.IsRemote, &job.Status, &job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, pq.Array(&skills),
		); err != nil {
			return nil, 0, err
		}
		job.Skills = skills
		jobs = append(jobs, job)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, level = $4, employment_type = $5,
		    salary_min = $6, salary_max = $7, location = $8, is_remote = $9,
		    status = $10, updated_at = $11
		WHERE id = $1`

	job.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Level, job.EmploymentType,
		job.SalaryMin, job.SalaryMax, job.Location, job.IsRemote, job.Status,
		job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceSkills swaps the job's skill set in one transaction.
func (r *jobRepo) ReplaceSkills(ctx context.Context, jobID int64, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	for _, skillID := range skillIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO job_skills (job_id, skill_id) VALUES ($1, $2)`, jobID, skillID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
				return domain.ErrNotFound
			}
			return err
		}
	}
	return tx.Commit(ctx)
}
