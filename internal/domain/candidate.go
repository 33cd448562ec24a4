package domain

import (
	"context"
	"time"
)

// Candidate is a job-seeker profile, keyed by the owning user's id.
type Candidate struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Headline  string    `json:"headline" validate:"required,max=150"`
	Bio       string    `json:"bio" validate:"max=2000"`
	Phone     string    `json:"phone" validate:"required,min=7,max=20"`
	CPF       string    `json:"cpf" validate:"required,min=11,max=14"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined data for detail responses
	Skills []string `json:"skills,omitempty"`
}

type Link struct {
	ID          int64  `json:"id"`
	CandidateID int64  `json:"candidate_id"`
	URL         string `json:"url" validate:"required,url"`
	LinkType    string `json:"link_type" validate:"required,max=50"`
}

type Experience struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidate_id"`
	Title       string     `json:"title" validate:"required,max=100"`
	Company     string     `json:"company" validate:"required,max=100"`
	Role        string     `json:"role" validate:"required,max=100"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type Education struct {
	ID           int64      `json:"id"`
	CandidateID  int64      `json:"candidate_id"`
	Institution  string     `json:"institution" validate:"required,max=150"`
	Degree       string     `json:"degree" validate:"required,max=100"`
	FieldOfStudy string     `json:"field_of_study" validate:"required,max=100"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

type CandidateRepository interface {
	// Create returns a conflict error when email or CPF is already taken.
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
	GetByUserID(ctx context.Context, userID int64) (*Candidate, error)
	ReplaceSkills(ctx context.Context, candidateID int64, skillIDs []int64) error

	ListLinks(ctx context.Context, candidateID int64) ([]Link, error)
	CreateLink(ctx context.Context, link *Link) error
	UpdateLink(ctx context.Context, link *Link) error
	DeleteLink(ctx context.Context, candidateID, id int64) error

	ListExperiences(ctx context.Context, candidateID int64) ([]Experience, error)
	CreateExperience(ctx context.Context, exp *Experience) error
	UpdateExperience(ctx context.Context, exp *Experience) error
	DeleteExperience(ctx context.Context, candidateID, id int64) error

	ListEducations(ctx context.Context, candidateID int64) ([]Education, error)
	CreateEducation(ctx context.Context, edu *Education) error
	UpdateEducation(ctx context.Context, edu *Education) error
	DeleteEducation(ctx context.Context, candidateID, id int64) error
}

type CandidateUsecase interface {
	UpsertProfile(ctx context.Context, userID int64, candidate *Candidate) (*Candidate, bool, error)
	GetProfile(ctx context.Context, userID int64) (*Candidate, error)
	GetByUserID(ctx context.Context, userID int64) (*Candidate, error)
	SetSkills(ctx context.Context, userID int64, skillIDs []int64) (*Candidate, error)

	ListLinks(ctx context.Context, userID int64) ([]Link, error)
	AddLink(ctx context.Context, userID int64, link *Link) error
	UpdateLink(ctx context.Context, userID int64, link *Link) error
	RemoveLink(ctx context.Context, userID, id int64) error

	ListExperiences(ctx context.Context, userID int64) ([]Experience, error)
	AddExperience(ctx context.Context, userID int64, exp *Experience) error
	UpdateExperience(ctx context.Context, userID int64, exp *Experience) error
	RemoveExperience(ctx context.Context, userID, id int64) error

	ListEducations(ctx context.Context, userID int64) ([]Education, error)
	AddEducation(ctx context.Context, userID int64, edu *Education) error
	UpdateEducation(ctx context.Context, userID int64, edu *Education) error
	RemoveEducation(ctx context.Context, userID, id int64) error
}
