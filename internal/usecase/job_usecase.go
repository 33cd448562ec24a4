package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	validate    *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		validate:    validate,
	}
}

// resolveCompany maps the authenticated user to their company profile.
// Posting or managing jobs requires the profile to exist first.
func (u *jobUsecase) resolveCompany(ctx context.Context, userID int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID int64, job *domain.Job) error {
	company, err := u.resolveCompany(ctx, userID)
	if err != nil {
		return err
	}

	job.CompanyID = company.UserID
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	if job.Status != domain.JobStatusOpen && job.Status != domain.JobStatusClosed {
		return apperror.BadRequest("Status must be either 'open' or 'closed'")
	}
	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.BadRequest("Minimum salary cannot exceed maximum salary")
	}

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := normalizePage(page, pageSize)
	return u.jobRepo.Fetch(ctx, limit, offset)
}

func (u *jobUsecase) ListJobsByCompany(ctx context.Context, userID int64, page, pageSize int) ([]domain.Job, int64, error) {
	company, err := u.resolveCompany(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := normalizePage(page, pageSize)
	return u.jobRepo.FetchByCompanyID(ctx, company.UserID, limit, offset)
}

// getOwnedJob fetches a job and verifies the caller's company owns it.
// Jobs of other companies are reported as not found rather than forbidden
// to avoid leaking their existence.
func (u *jobUsecase) getOwnedJob(ctx context.Context, userID, id int64) (*domain.Job, error) {
	company, err := u.resolveCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if job.CompanyID != company.UserID {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID, id int64, job *domain.Job) (*domain.Job, error) {
	existing, err := u.getOwnedJob(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	job.ID = existing.ID
	job.CompanyID = existing.CompanyID
	if job.Status == "" {
		job.Status = existing.Status
	}
	if job.Status != domain.JobStatusOpen && job.Status != domain.JobStatusClosed {
		return nil, apperror.BadRequest("Status must be either 'open' or 'closed'")
	}
	if err := u.validate.Struct(job); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return nil, apperror.BadRequest("Minimum salary cannot exceed maximum salary")
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return u.jobRepo.GetByID(ctx, id)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID, id int64) error {
	if _, err := u.getOwnedJob(ctx, userID, id); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, id)
}

func (u *jobUsecase) SetJobSkills(ctx context.Context, userID, id int64, skillIDs []int64) (*domain.Job, error) {
	if _, err := u.getOwnedJob(ctx, userID, id); err != nil {
		return nil, err
	}
	if err := u.jobRepo.ReplaceSkills(ctx, id, skillIDs); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("One or more skills do not exist")
		}
		return nil, err
	}
	return u.jobRepo.GetByID(ctx, id)
}

// normalizePage converts one-based page parameters into limit/offset,
// clamping out-of-range values to sane defaults.
func normalizePage(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize
}
