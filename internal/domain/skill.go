package domain

import "context"

// Skill is a catalog entry shared by candidate profiles and jobs.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,min=1,max=50"`
}

type SkillRepository interface {
	// Create returns a conflict error when the name is already taken.
	Create(ctx context.Context, skill *Skill) error
	GetByID(ctx context.Context, id int64) (*Skill, error)
	Fetch(ctx context.Context) ([]Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int64) error
}

type SkillUsecase interface {
	CreateSkill(ctx context.Context, name string) (*Skill, error)
	GetSkill(ctx context.Context, id int64) (*Skill, error)
	ListSkills(ctx context.Context) ([]Skill, error)
	UpdateSkill(ctx context.Context, id int64, name string) (*Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}
