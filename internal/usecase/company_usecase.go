package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/notify"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	notifier    notify.Queue
	validate    *validator.Validate
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, notifier notify.Queue, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		notifier:    notifier,
		validate:    validate,
	}
}

// UpsertProfile creates or updates the caller's company profile. The
// boolean result reports whether a new profile was created.
func (u *companyUsecase) UpsertProfile(ctx context.Context, userID int64, company *domain.Company) (*domain.Company, bool, error) {
	company.UserID = userID

	if err := u.validate.Struct(company); err != nil {
		return nil, false, apperror.BadRequest(err.Error())
	}

	_, err := u.companyRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		if err := u.companyRepo.Update(ctx, company); err != nil {
			return nil, false, err
		}
		return company, false, nil
	case errors.Is(err, domain.ErrNotFound):
		if err := u.companyRepo.Create(ctx, company); err != nil {
			return nil, false, err
		}
		u.notifier.Enqueue(notify.Message{
			Kind: notify.KindWelcome,
			To:   company.Email,
			Name: company.Name,
			Role: domain.RoleCompany,
		})
		return company, true, nil
	default:
		return nil, false, err
	}
}

func (u *companyUsecase) GetProfile(ctx context.Context, userID int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) GetByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	return u.GetProfile(ctx, userID)
}
