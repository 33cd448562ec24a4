package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/notify"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	notifier      notify.Queue
	validate      *validator.Validate
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, notifier notify.Queue, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		notifier:      notifier,
		validate:      validate,
	}
}

// UpsertProfile creates or updates the caller's candidate profile. The
// boolean result reports whether a new profile was created.
func (u *candidateUsecase) UpsertProfile(ctx context.Context, userID int64, candidate *domain.Candidate) (*domain.Candidate, bool, error) {
	candidate.UserID = userID

	if err := u.validate.Struct(candidate); err != nil {
		return nil, false, apperror.BadRequest(err.Error())
	}

	existing, err := u.candidateRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		candidate.Skills = existing.Skills
		if err := u.candidateRepo.Update(ctx, candidate); err != nil {
			return nil, false, err
		}
		return candidate, false, nil
	case errors.Is(err, domain.ErrNotFound):
		if err := u.candidateRepo.Create(ctx, candidate); err != nil {
			return nil, false, err
		}
		u.notifier.Enqueue(notify.Message{
			Kind: notify.KindWelcome,
			To:   candidate.Email,
			Name: candidate.Name,
			Role: domain.RoleCandidate,
		})
		return candidate, true, nil
	default:
		return nil, false, err
	}
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID int64) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate profile not found")
		}
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	return u.GetProfile(ctx, userID)
}

func (u *candidateUsecase) SetSkills(ctx context.Context, userID int64, skillIDs []int64) (*domain.Candidate, error) {
	if _, err := u.GetProfile(ctx, userID); err != nil {
		return nil, err
	}
	if err := u.candidateRepo.ReplaceSkills(ctx, userID, skillIDs); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("One or more skills do not exist")
		}
		return nil, err
	}
	return u.GetProfile(ctx, userID)
}

func (u *candidateUsecase) ListLinks(ctx context.Context, userID int64) ([]domain.Link, error) {
	if _, err := u.GetProfile(ctx, userID); err != nil {
		return nil, err
	}
	return u.candidateRepo.ListLinks(ctx, userID)
}

func (u *candidateUsecase) AddLink(ctx context.Context, userID int64, link *domain.Link) error {
	if _, err := u.GetProfile(ctx, userID); err != nil {
		return err
	}
	link.CandidateID = userID
	if err := u.validate.Struct(link); err != nil {
		return apperror.BadRequest(err.Error())
	}
	return u.candidateRepo.CreateLink(ctx, link)
}

func (u *candidateUsecase) UpdateLink(ctx context.Context, userID int64, link *domain.Link) error {
	link.CandidateID = userID
	if err := u.validate.Struct(link); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := u.candidateRepo.UpdateLink(ctx, link); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Link not found")
		}
		return err
	}
	return nil
}

func (u *candidateUsecase) RemoveLink(ctx context.Context, userID, id int64) error {
	if err := u.candidateRepo.DeleteLink(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Link not found")
		}
		return err
	}
	return nil
}

func (u *candidateUsecase) ListExperiences(ctx context.Context, userID int64) ([]domain.Experience, error) {
	if _, err := u.GetProfile(ctx, userID); err != nil {
		return nil, err
	}
	return u.candidateRepo.ListExperiences(ctx, userID)
}

func (u *candidateUsecase) AddExperience(ctx context.Context, userID int64, exp *domain.Experience) error {
	if _, err := u.GetProfile(ctx, userID); err != nil {
		return err
	}
	exp.CandidateID = userID
	if err := u.validate.Struct(exp); err != nil {
		return apperror.BadRequest(err.Error())
	}
	return u.candidateRepo.CreateExperience(ctx, exp)
}

func (u *candidateUsecase) UpdateExperience(ctx context.Context, userID int64, exp *domain.Experience) error {
	exp.CandidateID = userID
	if err := u.validate.Struct(exp); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := u.candidateRepo.UpdateExperience(ctx, exp); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Experience not found")
		}
		return err
	}
	return nil
}

func (u *candidateUsecase) RemoveExperience(ctx context.Context, userID, id int64) error {
	if err := u.candidateRepo.DeleteExperience(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Experience not found")
		}
		return err
	}
	return nil
}

func (u *candidateUsecase) ListEducations(ctx context.Context, userID int64) ([]domain.Education, error) {
	if _, err := u.GetProfile(ctx, userID); err != nil {
		return nil, err
	}
	return u.candidateRepo.ListEducations(ctx, userID)
}

func (u *candidateUsecase) AddEducation(ctx context.Context, userID int64, edu *domain.Education) error {
	if _, err := u.GetProfile(ctx, userID); err != nil {
		return err
	}
	edu.CandidateID = userID
	if err := u.validate.Struct(edu); err != nil {
		return apperror.BadRequest(err.Error())
	}
	return u.candidateRepo.CreateEducation(ctx, edu)
}

func (u *candidateUsecase) UpdateEducation(ctx context.Context, userID int64, edu *domain.Education) error {
	edu.CandidateID = userID
	if err := u.validate.Struct(edu); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := u.candidateRepo.UpdateEducation(ctx, edu); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Education not found")
		}
		return err
	}
	return nil
}

func (u *candidateUsecase) RemoveEducation(ctx context.Context, userID, id int64) error {
	if err := u.candidateRepo.DeleteEducation(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Education not found")
		}
		return err
	}
	return nil
}
