package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/notify"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, candidateID int64) (bool, error) {
	args := m.Called(ctx, jobID, candidateID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Application), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, next domain.ApplicationStatus) (*domain.Application, error) {
	args := m.Called(ctx, id, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, companyID, limit, offset)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepo) ReplaceSkills(ctx context.Context, jobID int64, skillIDs []int64) error {
	return m.Called(ctx, jobID, skillIDs).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) ReplaceSkills(ctx context.Context, candidateID int64, skillIDs []int64) error {
	return m.Called(ctx, candidateID, skillIDs).Error(0)
}

func (m *MockCandidateRepo) ListLinks(ctx context.Context, candidateID int64) ([]domain.Link, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]domain.Link), args.Error(1)
}

func (m *MockCandidateRepo) CreateLink(ctx context.Context, link *domain.Link) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockCandidateRepo) UpdateLink(ctx context.Context, link *domain.Link) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockCandidateRepo) DeleteLink(ctx context.Context, candidateID, id int64) error {
	return m.Called(ctx, candidateID, id).Error(0)
}

func (m *MockCandidateRepo) ListExperiences(ctx context.Context, candidateID int64) ([]domain.Experience, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockCandidateRepo) CreateExperience(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockCandidateRepo) UpdateExperience(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockCandidateRepo) DeleteExperience(ctx context.Context, candidateID, id int64) error {
	return m.Called(ctx, candidateID, id).Error(0)
}

func (m *MockCandidateRepo) ListEducations(ctx context.Context, candidateID int64) ([]domain.Education, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockCandidateRepo) CreateEducation(ctx context.Context, edu *domain.Education) error {
	return m.Called(ctx, edu).Error(0)
}

func (m *MockCandidateRepo) UpdateEducation(ctx context.Context, edu *domain.Education) error {
	return m.Called(ctx, edu).Error(0)
}

func (m *MockCandidateRepo) DeleteEducation(ctx context.Context, candidateID, id int64) error {
	return m.Called(ctx, candidateID, id).Error(0)
}

// queueRecorder captures enqueued notifications.
type queueRecorder struct {
	messages []notify.Message
}

func (q *queueRecorder) Enqueue(msg notify.Message) bool {
	q.messages = append(q.messages, msg)
	return true
}

type appUCFixture struct {
	appRepo       *MockApplicationRepo
	jobRepo       *MockJobRepo
	companyRepo   *MockCompanyRepo
	candidateRepo *MockCandidateRepo
	queue         *queueRecorder
	uc            domain.ApplicationUsecase
}

func newAppUCFixture() *appUCFixture {
	f := &appUCFixture{
		appRepo:       new(MockApplicationRepo),
		jobRepo:       new(MockJobRepo),
		companyRepo:   new(MockCompanyRepo),
		candidateRepo: new(MockCandidateRepo),
		queue:         &queueRecorder{},
	}
	f.uc = usecase.NewApplicationUsecase(f.appRepo, f.jobRepo, f.companyRepo, f.candidateRepo, f.queue)
	return f
}

func assertAppErrorCode(t *testing.T, err error, code int) {
	t.Helper()
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	candidate := &domain.Candidate{UserID: 100, Name: "Ana", Email: "ana@example.com"}
	openJob := &domain.Job{ID: 10, CompanyID: 5, Title: "Backend Dev", Status: domain.JobStatusOpen, Location: "Remote"}

	t.Run("Should create application and notify the candidate", func(t *testing.T) {
		f := newAppUCFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(1)).Return(candidate, nil)
		f.jobRepo.On("GetByID", ctx, int64(10)).Return(openJob, nil)
		f.appRepo.On("Exists", ctx, int64(10), int64(100)).Return(false, nil)
		f.appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
			app.ID = 77
		})
		f.appRepo.On("GetByID", ctx, int64(77)).Return(&domain.Application{
			ID: 77, JobID: 10, CandidateID: 100,
			Status: domain.ApplicationStatusApplied, CompanyName: "Acme",
		}, nil)

		app, err := f.uc.Apply(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(77), app.ID)

		if assert.Len(t, f.queue.messages, 1) {
			msg := f.queue.messages[0]
			assert.Equal(t, notify.KindApplicationReceived, msg.Kind)
			assert.Equal(t, "ana@example.com", msg.To)
			assert.Equal(t, "Backend Dev", msg.Mail.JobTitle)
		}
	})

	t.Run("Should fail when candidate profile is missing", func(t *testing.T) {
		f := newAppUCFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(1)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.Apply(ctx, 1, 10)
		assertAppErrorCode(t, err, http.StatusNotFound)
		f.jobRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Should fail when job does not exist", func(t *testing.T) {
		f := newAppUCFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(1)).Return(candidate, nil)
		f.jobRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.Apply(ctx, 1, 99)
		assertAppErrorCode(t, err, http.StatusNotFound)
	})

	t.Run("Should fail when job is closed", func(t *testing.T) {
		f := newAppUCFixture()
		closedJob := &domain.Job{ID: 11, CompanyID: 5, Status: domain.JobStatusClosed}
		f.candidateRepo.On("GetByUserID", ctx, int64(1)).Return(candidate, nil)
		f.jobRepo.On("GetByID", ctx, int64(11)).Return(closedJob, nil)

		_, err := f.uc.Apply(ctx, 1, 11)
		assertAppErrorCode(t, err, http.StatusBadRequest)
		f.appRepo.AssertNotCalled(t, "Create")
		assert.Empty(t, f.queue.messages)
	})

	t.Run("Should fail with conflict when already applied", func(t *testing.T) {
		f := newAppUCFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(1)).Return(candidate, nil)
		f.jobRepo.On("GetByID", ctx, int64(10)).Return(openJob, nil)
		f.appRepo.On("Exists", ctx, int64(10), int64(100)).Return(true, nil)

		_, err := f.uc.Apply(ctx, 1, 10)
		assertAppErrorCode(t, err, http.StatusConflict)
		f.appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should fail with conflict when a concurrent duplicate wins the insert", func(t *testing.T) {
		f := newAppUCFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(1)).Return(candidate, nil)
		f.jobRepo.On("GetByID", ctx, int64(10)).Return(openJob, nil)
		f.appRepo.On("Exists", ctx, int64(10), int64(100)).Return(false, nil)
		f.appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicateApplication)

		_, err := f.uc.Apply(ctx, 1, 10)
		assertAppErrorCode(t, err, http.StatusConflict)
		assert.Empty(t, f.queue.messages)
	})
}

func TestGetApplicationByID(t *testing.T) {
	ctx := context.Background()
	app := &domain.Application{ID: 77, JobID: 10, CandidateID: 100, JobCompanyID: 5}

	t.Run("Should return not found before any ownership check", func(t *testing.T) {
		f := newAppUCFixture()
		f.appRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.GetByID(ctx, 1, domain.RoleCompany, 404)
		assertAppErrorCode(t, err, http.StatusNotFound)
		f.companyRepo.AssertNotCalled(t, "GetByUserID")
	})

	t.Run("Should allow the company owning the job", func(t *testing.T) {
		f := newAppUCFixture()
		f.appRepo.On("GetByID", ctx, int64(77)).Return(app, nil)
		f.companyRepo.On("GetByUserID", ctx, int64(5)).Return(&domain.Company{UserID: 5}, nil)

		got, err := f.uc.GetByID(ctx, 5, domain.RoleCompany, 77)
		assert.NoError(t, err)
		assert.Equal(t, app, got)
	})

	t.Run("Should forbid a different company", func(t *testing.T) {
		f := newAppUCFixture()
		f.appRepo.On("GetByID", ctx, int64(77)).Return(app, nil)
		f.companyRepo.On("GetByUserID", ctx, int64(6)).Return(&domain.Company{UserID: 6}, nil)

		_, err := f.uc.GetByID(ctx, 6, domain.RoleCompany, 77)
		assertAppErrorCode(t, err, http.StatusForbidden)
	})

	t.Run("Should allow the applying candidate", func(t *testing.T) {
		f := newAppUCFixture()
		f.appRepo.On("GetByID", ctx, int64(77)).Return(app, nil)
		f.candidateRepo.On("GetByUserID", ctx, int64(100)).Return(&domain.Candidate{UserID: 100}, nil)

		got, err := f.uc.GetByID(ctx, 100, domain.RoleCandidate, 77)
		assert.NoError(t, err)
		assert.Equal(t, app, got)
	})

	t.Run("Should forbid admins", func(t *testing.T) {
		f := newAppUCFixture()
		f.appRepo.On("GetByID", ctx, int64(77)).Return(app, nil)

		_, err := f.uc.GetByID(ctx, 1, domain.RoleAdmin, 77)
		assertAppErrorCode(t, err, http.StatusForbidden)
	})
}

func TestListApplications(t *testing.T) {
	ctx := context.Background()

	t.Run("Should scope a company to its own jobs", func(t *testing.T) {
		f := newAppUCFixture()
		f.companyRepo.On("GetByUserID", ctx, int64(5)).Return(&domain.Company{UserID: 5}, nil)
		f.appRepo.On("List", ctx, mock.MatchedBy(func(filter domain.ApplicationFilter) bool {
			return filter.CompanyID != nil && *filter.CompanyID == 5 && filter.CandidateID == nil
		})).Return([]domain.Application{{ID: 1}}, int64(1), nil)

		page, err := f.uc.List(ctx, 5, domain.RoleCompany, domain.ApplicationFilter{})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Len(t, page.Items, 1)
	})

	t.Run("Should scope a candidate to their own applications", func(t *testing.T) {
		f := newAppUCFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(100)).Return(&domain.Candidate{UserID: 100}, nil)
		f.appRepo.On("List", ctx, mock.MatchedBy(func(filter domain.ApplicationFilter) bool {
			return filter.CandidateID != nil && *filter.CandidateID == 100 && filter.CompanyID == nil
		})).Return([]domain.Application{}, int64(0), nil)

		page, err := f.uc.List(ctx, 100, domain.RoleCandidate, domain.ApplicationFilter{})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), page.Total)
	})

	t.Run("Should ignore caller-supplied scope fields", func(t *testing.T) {
		f := newAppUCFixture()
		foreign := int64(999)
		f.candidateRepo.On("GetByUserID", ctx, int64(100)).Return(&domain.Candidate{UserID: 100}, nil)
		f.appRepo.On("List", ctx, mock.MatchedBy(func(filter domain.ApplicationFilter) bool {
			return filter.CandidateID != nil && *filter.CandidateID == 100 && filter.CompanyID == nil
		})).Return([]domain.Application{}, int64(0), nil)

		_, err := f.uc.List(ctx, 100, domain.RoleCandidate, domain.ApplicationFilter{
			CompanyID:   &foreign,
			CandidateID: &foreign,
		})
		assert.NoError(t, err)
	})

	t.Run("Should return an empty page for admins", func(t *testing.T) {
		f := newAppUCFixture()

		page, err := f.uc.List(ctx, 1, domain.RoleAdmin, domain.ApplicationFilter{})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), page.Total)
		assert.Empty(t, page.Items)
		f.appRepo.AssertNotCalled(t, "List")
	})

	t.Run("Should return an empty page when a candidate has no profile yet", func(t *testing.T) {
		f := newAppUCFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(100)).Return(nil, domain.ErrNotFound)

		page, err := f.uc.List(ctx, 100, domain.RoleCandidate, domain.ApplicationFilter{})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), page.Total)
	})

	t.Run("Should reject unknown sort fields", func(t *testing.T) {
		f := newAppUCFixture()

		_, err := f.uc.List(ctx, 5, domain.RoleCompany, domain.ApplicationFilter{SortBy: "password_hash"})
		assertAppErrorCode(t, err, http.StatusBadRequest)
	})

	t.Run("Should reject unknown status filters", func(t *testing.T) {
		f := newAppUCFixture()
		bad := domain.ApplicationStatus("pending")

		_, err := f.uc.List(ctx, 5, domain.RoleCompany, domain.ApplicationFilter{Status: &bad})
		assertAppErrorCode(t, err, http.StatusBadRequest)
	})

	t.Run("Should normalize paging parameters", func(t *testing.T) {
		f := newAppUCFixture()
		f.companyRepo.On("GetByUserID", ctx, int64(5)).Return(&domain.Company{UserID: 5}, nil)
		f.appRepo.On("List", ctx, mock.MatchedBy(func(filter domain.ApplicationFilter) bool {
			return filter.Page == 1 && filter.PageSize == 20
		})).Return([]domain.Application{}, int64(0), nil)

		page, err := f.uc.List(ctx, 5, domain.RoleCompany, domain.ApplicationFilter{Page: -3, PageSize: 0})
		assert.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.PageSize)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	app := &domain.Application{ID: 77, JobID: 10, CandidateID: 100, JobCompanyID: 5, Status: domain.ApplicationStatusApplied}

	t.Run("Should move the application and notify the candidate", func(t *testing.T) {
		f := newAppUCFixture()
		f.appRepo.On("GetByID", ctx, int64(77)).Return(app, nil)
		f.companyRepo.On("GetByUserID", ctx, int64(5)).Return(&domain.Company{UserID: 5}, nil)
		f.appRepo.On("UpdateStatus", ctx, int64(77), domain.ApplicationStatusReviewing).Return(&domain.Application{
			ID: 77, JobID: 10, CandidateID: 100, JobCompanyID: 5,
			Status:         domain.ApplicationStatusReviewing,
			CandidateEmail: "ana@example.com",
			CandidateName:  "Ana",
			JobTitle:       "Backend Dev",
		}, nil)

		updated, err := f.uc.UpdateStatus(ctx, 5, domain.RoleCompany, 77, domain.ApplicationStatusReviewing)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusReviewing, updated.Status)

		if assert.Len(t, f.queue.messages, 1) {
			assert.Equal(t, notify.KindStatusChanged, f.queue.messages[0].Kind)
			assert.Equal(t, "reviewing", f.queue.messages[0].Mail.Status)
		}
	})

	t.Run("Should reject unknown target statuses", func(t *testing.T) {
		f := newAppUCFixture()

		_, err := f.uc.UpdateStatus(ctx, 5, domain.RoleCompany, 77, domain.ApplicationStatus("archived"))
		assertAppErrorCode(t, err, http.StatusBadRequest)
		f.appRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Should forbid candidates", func(t *testing.T) {
		f := newAppUCFixture()
		f.appRepo.On("GetByID", ctx, int64(77)).Return(app, nil)
		f.candidateRepo.On("GetByUserID", ctx, int64(100)).Return(&domain.Candidate{UserID: 100}, nil)

		_, err := f.uc.UpdateStatus(ctx, 100, domain.RoleCandidate, 77, domain.ApplicationStatusReviewing)
		assertAppErrorCode(t, err, http.StatusForbidden)
		f.appRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Should forbid a different company", func(t *testing.T) {
		f := newAppUCFixture()
		f.appRepo.On("GetByID", ctx, int64(77)).Return(app, nil)
		f.companyRepo.On("GetByUserID", ctx, int64(6)).Return(&domain.Company{UserID: 6}, nil)

		_, err := f.uc.UpdateStatus(ctx, 6, domain.RoleCompany, 77, domain.ApplicationStatusReviewing)
		assertAppErrorCode(t, err, http.StatusForbidden)
	})

	t.Run("Should surface illegal transitions as bad request", func(t *testing.T) {
		f := newAppUCFixture()
		terminal := &domain.Application{ID: 78, JobID: 10, CandidateID: 100, JobCompanyID: 5, Status: domain.ApplicationStatusApproved}
		f.appRepo.On("GetByID", ctx, int64(78)).Return(terminal, nil)
		f.companyRepo.On("GetByUserID", ctx, int64(5)).Return(&domain.Company{UserID: 5}, nil)
		f.appRepo.On("UpdateStatus", ctx, int64(78), domain.ApplicationStatusRejected).
			Return(nil, &domain.InvalidTransitionError{From: domain.ApplicationStatusApproved, To: domain.ApplicationStatusRejected})

		_, err := f.uc.UpdateStatus(ctx, 5, domain.RoleCompany, 78, domain.ApplicationStatusRejected)
		assertAppErrorCode(t, err, http.StatusBadRequest)
		assert.Contains(t, err.Error(), "approved")
		assert.Empty(t, f.queue.messages)
	})
}

func TestExportApplications(t *testing.T) {
	ctx := context.Background()
	job := &domain.Job{ID: 10, CompanyID: 5, Title: "Backend Dev", Status: domain.JobStatusOpen}

	t.Run("Should forbid candidates", func(t *testing.T) {
		f := newAppUCFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(100)).Return(&domain.Candidate{UserID: 100}, nil)

		_, _, err := f.uc.Export(ctx, 100, domain.RoleCandidate, 10, "csv")
		assertAppErrorCode(t, err, http.StatusForbidden)
	})

	t.Run("Should hide jobs of other companies", func(t *testing.T) {
		f := newAppUCFixture()
		f.companyRepo.On("GetByUserID", ctx, int64(6)).Return(&domain.Company{UserID: 6}, nil)
		f.jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)

		_, _, err := f.uc.Export(ctx, 6, domain.RoleCompany, 10, "csv")
		assertAppErrorCode(t, err, http.StatusNotFound)
	})

	t.Run("Should produce a csv with one row per application", func(t *testing.T) {
		f := newAppUCFixture()
		f.companyRepo.On("GetByUserID", ctx, int64(5)).Return(&domain.Company{UserID: 5}, nil)
		f.jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		f.appRepo.On("List", ctx, mock.AnythingOfType("domain.ApplicationFilter")).Return([]domain.Application{
			{ID: 1, CandidateName: "Ana", CandidateEmail: "ana@example.com", Status: domain.ApplicationStatusApplied},
			{ID: 2, CandidateName: "Bruno, Jr.", CandidateEmail: "bruno@example.com", Status: domain.ApplicationStatusReviewing},
		}, int64(2), nil)

		data, filename, err := f.uc.Export(ctx, 5, domain.RoleCompany, 10, "csv")
		assert.NoError(t, err)
		assert.Contains(t, filename, ".csv")
		assert.Contains(t, string(data), "candidate_name")
		assert.Contains(t, string(data), "ana@example.com")
		assert.Contains(t, string(data), `"Bruno, Jr."`)
	})

	t.Run("Should reject unknown formats", func(t *testing.T) {
		f := newAppUCFixture()
		f.companyRepo.On("GetByUserID", ctx, int64(5)).Return(&domain.Company{UserID: 5}, nil)
		f.jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)
		f.appRepo.On("List", ctx, mock.AnythingOfType("domain.ApplicationFilter")).Return([]domain.Application{}, int64(0), nil)

		_, _, err := f.uc.Export(ctx, 5, domain.RoleCompany, 10, "pdf")
		assertAppErrorCode(t, err, http.StatusBadRequest)
	})
}
