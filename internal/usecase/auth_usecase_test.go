package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("Should hash the password and store the user", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			user := args.Get(1).(*domain.User)
			assert.NotEqual(t, "hunter2-strong", user.PasswordHash)
			assert.True(t, auth.CheckPassword("hunter2-strong", user.PasswordHash))
		})

		user, err := uc.Register(ctx, "ana", domain.RoleCandidate, "hunter2-strong")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleCandidate, user.Role)
	})

	t.Run("Should reject admin registration", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		_, err := uc.Register(ctx, "root", domain.RoleAdmin, "hunter2-strong")
		assertAppErrorCode(t, err, http.StatusBadRequest)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject short passwords", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		_, err := uc.Register(ctx, "ana", domain.RoleCandidate, "short")
		assertAppErrorCode(t, err, http.StatusBadRequest)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	hash, _ := auth.HashPassword("hunter2-strong")
	stored := &domain.User{ID: 42, Username: "ana", Role: domain.RoleCandidate, PasswordHash: hash}

	t.Run("Should issue a parseable token for valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		mockRepo.On("GetByUsername", ctx, "ana").Return(stored, nil)

		token, user, err := uc.Login(ctx, "ana", "hunter2-strong")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)

		userID, err := tokens.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("Should not reveal whether the user exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		mockRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByUsername", ctx, "ana").Return(stored, nil)

		_, _, errUnknown := uc.Login(ctx, "ghost", "whatever-pass")
		_, _, errWrongPass := uc.Login(ctx, "ana", "wrong-password")

		assertAppErrorCode(t, errUnknown, http.StatusUnauthorized)
		assertAppErrorCode(t, errWrongPass, http.StatusUnauthorized)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})
}
