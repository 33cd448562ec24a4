package domain

import (
	"context"
	"time"
)

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// statusTransitions is the single source of truth for the lifecycle:
// applied → reviewing/rejected, reviewing → approved/rejected.
// Approved and rejected are terminal.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:   {ApplicationStatusReviewing, ApplicationStatusRejected},
	ApplicationStatusReviewing: {ApplicationStatusApproved, ApplicationStatusRejected},
	ApplicationStatusApproved:  {},
	ApplicationStatusRejected:  {},
}

// Valid reports whether s is one of the defined lifecycle states.
func (s ApplicationStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Terminal reports whether s has no outgoing transitions.
func (s ApplicationStatus) Terminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether a single-hop transition s → next is legal.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns an *InvalidTransitionError if from → to is not
// a legal single-hop transition.
func ValidateTransition(from, to ApplicationStatus) error {
	if !from.CanTransitionTo(to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// Application represents a candidate's application to a job.
// AppliedAt is set once at creation and never changes; UpdatedAt is
// refreshed on every status transition.
type Application struct {
	ID          int64             `json:"id"`
	JobID       int64             `json:"job_id"`
	CandidateID int64             `json:"candidate_id"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Joined data for ownership checks and list responses
	JobTitle       string `json:"job_title,omitempty"`
	JobCompanyID   int64  `json:"company_id,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateEmail string `json:"-"`
}

// ApplicationFilter narrows and pages an application listing.
// CompanyID and CandidateID are visibility scopes set by the usecase from
// the caller's principal; they are never taken from request input.
type ApplicationFilter struct {
	CompanyID   *int64
	CandidateID *int64
	JobID       *int64
	Status      *ApplicationStatus
	SortBy      string
	SortDesc    bool
	Page        int
	PageSize    int
}

// ApplicationPage is one page of a filtered application listing.
type ApplicationPage struct {
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Items    []Application `json:"items"`
}

// ApplicationRepository defines data access for applications.
type ApplicationRepository interface {
	// Create inserts the application; a unique-constraint violation on
	// (job_id, candidate_id) is returned as ErrDuplicateApplication.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	Exists(ctx context.Context, jobID, candidateID int64) (bool, error)
	List(ctx context.Context, filter ApplicationFilter) ([]Application, int64, error)
	// UpdateStatus transitions one application one step inside a single
	// transaction, re-reading the current status under a row lock. It
	// returns *InvalidTransitionError when the step is not legal.
	UpdateStatus(ctx context.Context, id int64, next ApplicationStatus) (*Application, error)
}

// ApplicationUsecase defines the application lifecycle operations.
type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, jobID int64) (*Application, error)
	GetByID(ctx context.Context, userID int64, role string, id int64) (*Application, error)
	List(ctx context.Context, userID int64, role string, filter ApplicationFilter) (*ApplicationPage, error)
	UpdateStatus(ctx context.Context, userID int64, role string, id int64, next ApplicationStatus) (*Application, error)
	Export(ctx context.Context, userID int64, role string, jobID int64, format string) ([]byte, string, error)
}
