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
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (user_id, name, email, headline, bio, phone, cpf, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		candidate.UserID, candidate.Name, candidate.Email, candidate.Headline,
		candidate.Bio, candidate.Phone, candidate.CPF,
		candidate.CreatedAt, candidate.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A candidate with the given email or CPF already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		UPDATE candidates
		SET name = $2, email = $3, headline = $4, bio = $5, phone = $6, cpf = $7, updated_at = $8
		WHERE user_id = $1`

	candidate.UpdatedAt = time.Now()

	result, err := r.db.Exec(ctx, query,
		candidate.UserID, candidate.Name, candidate.Email, candidate.Headline,
		candidate.Bio, candidate.Phone, candidate.CPF, candidate.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A candidate with the given email or CPF already exists")
		}
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	query := `
		SELECT c.user_id, c.name, c.email, c.headline, c.bio, c.phone, c.cpf,
		       c.created_at, c.updated_at,
		       COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.id IS NOT NULL), '{}') AS skills
		FROM candidates c
		LEFT JOIN candidate_skills cs ON cs.candidate_id = c.user_id
		LEFT JOIN skills s ON s.id = cs.skill_id
		WHERE c.user_id = $1
		GROUP BY c.user_id`

	var candidate domain.Candidate
	var skills []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&candidate.UserID, &candidate.Name, &candidate.Email, &candidate.Headline,
		&candidate.Bio, &candidate.Phone, &candidate.CPF,
		&candidate.CreatedAt, &candidate.UpdatedAt,
		pq.Array(&skills),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	candidate.Skills = skills
	return &candidate, nil
}

// ReplaceSkills swaps the candidate's skill set in one transaction.
func (r *candidateRepo) ReplaceSkills(ctx context.Context, candidateID int64, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_skills WHERE candidate_id = $1`, candidateID); err != nil {
		return err
	}
	for _, skillID := range skillIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO candidate_skills (candidate_id, skill_id) VALUES ($1, $2)`,
			candidateID, skillID,
		)
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

func (r *candidateRepo) ListLinks(ctx context.Context, candidateID int64) ([]domain.Link, error) {
	query := `SELECT id, candidate_id, url, link_type FROM links WHERE candidate_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.ID, &l.CandidateID, &l.URL, &l.LinkType); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *candidateRepo) CreateLink(ctx context.Context, link *domain.Link) error {
	query := `INSERT INTO links (candidate_id, url, link_type) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, link.CandidateID, link.URL, link.LinkType).Scan(&link.ID)
}

func (r *candidateRepo) UpdateLink(ctx context.Context, link *domain.Link) error {
	query := `UPDATE links SET url = $3, link_type = $4 WHERE id = $1 AND candidate_id = $2`
	result, err := r.db.Exec(ctx, query, link.ID, link.CandidateID, link.URL, link.LinkType)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) DeleteLink(ctx context.Context, candidateID, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM links WHERE id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) ListExperiences(ctx context.Context, candidateID int64) ([]domain.Experience, error) {
	query := `
		SELECT id, candidate_id, title, company, role, description, start_date, end_date
		FROM experiences WHERE candidate_id = $1
		ORDER BY start_date DESC, id`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Title, &e.Company, &e.Role,
			&e.Description, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

func (r *candidateRepo) CreateExperience(ctx context.Context, exp *domain.Experience) error {
	query := `
		INSERT INTO experiences (candidate_id, title, company, role, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		exp.CandidateID, exp.Title, exp.Company, exp.Role,
		exp.Description, exp.StartDate, exp.EndDate,
	).Scan(&exp.ID)
}

func (r *candidateRepo) UpdateExperience(ctx context.Context, exp *domain.Experience) error {
	query := `
		UPDATE experiences
		SET title = $3, company = $4, role = $5, description = $6, start_date = $7, end_date = $8
		WHERE id = $1 AND candidate_id = $2`
	result, err := r.db.Exec(ctx, query, exp.ID, exp.CandidateID,
		exp.Title, exp.Company, exp.Role, exp.Description, exp.StartDate, exp.EndDate)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) DeleteExperience(ctx context.Context, candidateID, id int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM experiences WHERE id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) ListEducations(ctx context.Context, candidateID int64) ([]domain.Education, error) {
	query := `
		SELECT id, candidate_id, institution, degree, field_of_study, start_date, end_date
		FROM educations WHERE candidate_id = $1
		ORDER BY start_date DESC, id`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var educations []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.Institution, &e.Degree,
			&e.FieldOfStudy, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		educations = append(educations, e)
	}
	return educations, rows.Err()
}

func (r *candidateRepo) CreateEducation(ctx context.Context, edu *domain.Education) error {
	query := `
		INSERT INTO educations (candidate_id, institution, degree, field_of_study, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		edu.CandidateID, edu.Institution, edu.Degree, edu.FieldOfStudy,
		edu.StartDate, edu.EndDate,
	).Scan(&edu.ID)
}

func (r *candidateRepo) UpdateEducation(ctx context.Context, edu *domain.Education) error {
	query := `
		UPDATE educations
		SET institution = $3, degree = $4, field_of_study = $5, start_date = $6, end_date = $7
		WHERE id = $1 AND candidate_id = $2`
	result, err := r.db.Exec(ctx, query, edu.ID, edu.CandidateID,
		edu.Institution, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) DeleteEducation(ctx context.Context, candidateID, id int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM educations WHERE id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
