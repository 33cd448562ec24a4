package domain

import (
	"context"
	"time"
)

// JobStatus gates whether a job accepts new applications.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

type Job struct {
	ID             int64     `json:"id"`
	CompanyID      int64     `json:"company_id"`
	Title          string    `json:"title" validate:"required,min=3,max=100"`
	Description    string    `json:"description" validate:"required,min=10"`
	Level          string    `json:"level" validate:"required,oneof=junior mid senior"`
	EmploymentType string    `json:"employment_type" validate:"required,oneof=clt pj freelancer internship"`
	SalaryMin      *float64  `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax      *float64  `json:"salary_max" validate:"omitempty,gte=0"`
	Location       string    `json:"location" validate:"required,min=3,max=100"`
	IsRemote       bool      `json:"is_remote"`
	Status         JobStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Joined data for detail/list responses
	CompanyName string   `json:"company_name,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, limit, offset int) ([]Job, int64, error)
	FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
	ReplaceSkills(ctx context.Context, jobID int64, skillIDs []int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID int64, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	ListJobsByCompany(ctx context.Context, userID int64, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, userID, id int64, job *Job) (*Job, error)
	DeleteJob(ctx context.Context, userID, id int64) error
	SetJobSkills(ctx context.Context, userID, id int64, skillIDs []int64) (*Job, error)
}
