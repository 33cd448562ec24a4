package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/notify"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"

	"github.com/xuri/excelize/v2"
)

// applicationSortFields mirrors the sortable columns the repository accepts.
var applicationSortFields = map[string]bool{
	"applied_at": true,
	"updated_at": true,
	"status":     true,
	"id":         true,
}

type applicationUsecase struct {
	appRepo       domain.ApplicationRepository
	jobRepo       domain.JobRepository
	companyRepo   domain.CompanyRepository
	candidateRepo domain.CandidateRepository
	notifier      notify.Queue
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	companyRepo domain.CompanyRepository,
	candidateRepo domain.CandidateRepository,
	notifier notify.Queue,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		companyRepo:   companyRepo,
		candidateRepo: candidateRepo,
		notifier:      notifier,
	}
}

// resolvePrincipal maps the authenticated user to an ownership principal.
// A company or candidate role without the matching profile is an error:
// those callers cannot own anything yet.
func (u *applicationUsecase) resolvePrincipal(ctx context.Context, userID int64, role string) (domain.Principal, error) {
	switch role {
	case domain.RoleCompany:
		company, err := u.companyRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Company profile not found")
			}
			return nil, err
		}
		return domain.CompanyPrincipal{CompanyID: company.UserID}, nil
	case domain.RoleCandidate:
		candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Candidate profile not found")
			}
			return nil, err
		}
		return domain.CandidatePrincipal{CandidateID: candidate.UserID}, nil
	default:
		return domain.OtherPrincipal{Role: role}, nil
	}
}

// resolvePrincipalLenient is resolvePrincipal for listing: a caller whose
// profile is missing simply owns nothing, which yields an empty page
// instead of an error.
func (u *applicationUsecase) resolvePrincipalLenient(ctx context.Context, userID int64, role string) (domain.Principal, error) {
	p, err := u.resolvePrincipal(ctx, userID, role)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
			return domain.OtherPrincipal{Role: role}, nil
		}
		return nil, err
	}
	return p, nil
}

func (u *applicationUsecase) Apply(ctx context.Context, userID, jobID int64) (*domain.Application, error) {
	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate profile not found")
		}
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperror.New(http.StatusBadRequest, "Job is not open for applications.", domain.ErrJobNotOpen)
	}

	exists, err := u.appRepo.Exists(ctx, jobID, candidate.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job.")
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: candidate.UserID,
		Status:      domain.ApplicationStatusApplied,
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		// The unique constraint is authoritative; a concurrent duplicate
		// slips past the Exists pre-check and surfaces here.
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.Conflict("You have already applied to this job.")
		}
		return nil, err
	}

	created, err := u.appRepo.GetByID(ctx, app.ID)
	if err != nil {
		return nil, err
	}

	u.notifier.Enqueue(notify.Message{
		Kind: notify.KindApplicationReceived,
		To:   candidate.Email,
		Name: candidate.Name,
		Mail: email.ApplicationMailData{
			CandidateName: candidate.Name,
			JobTitle:      job.Title,
			CompanyName:   created.CompanyName,
			Location:      job.Location,
		},
	})

	return created, nil
}

func (u *applicationUsecase) GetByID(ctx context.Context, userID int64, role string, id int64) (*domain.Application, error) {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}

	principal, err := u.resolvePrincipal(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	if !domain.CanReadApplication(principal, app) {
		return nil, apperror.Forbidden("You do not have access to this application")
	}
	return app, nil
}

func (u *applicationUsecase) List(ctx context.Context, userID int64, role string, filter domain.ApplicationFilter) (*domain.ApplicationPage, error) {
	if filter.SortBy != "" && !applicationSortFields[filter.SortBy] {
		return nil, apperror.BadRequest("Invalid sort field: " + filter.SortBy)
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperror.BadRequest("Invalid application status: " + string(*filter.Status))
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	principal, err := u.resolvePrincipalLenient(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	// The visibility scope comes from the principal, never from input.
	filter.CompanyID = nil
	filter.CandidateID = nil
	switch pr := principal.(type) {
	case domain.CompanyPrincipal:
		filter.CompanyID = &pr.CompanyID
	case domain.CandidatePrincipal:
		filter.CandidateID = &pr.CandidateID
	default:
		return &domain.ApplicationPage{
			Total:    0,
			Page:     filter.Page,
			PageSize: filter.PageSize,
			Items:    []domain.Application{},
		}, nil
	}

	items, total, err := u.appRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Application{}
	}
	return &domain.ApplicationPage{
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Items:    items,
	}, nil
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, userID int64, role string, id int64, next domain.ApplicationStatus) (*domain.Application, error) {
	if !next.Valid() {
		return nil, apperror.BadRequest("Invalid application status: " + string(next))
	}

	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}

	principal, err := u.resolvePrincipal(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	if !domain.CanWriteApplicationStatus(principal, app) {
		return nil, apperror.Forbidden("Only the company owning the job can change the application status")
	}

	updated, err := u.appRepo.UpdateStatus(ctx, id, next)
	if err != nil {
		var transitionErr *domain.InvalidTransitionError
		if errors.As(err, &transitionErr) {
			return nil, apperror.BadRequest(transitionErr.Error())
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}

	if updated.CandidateEmail != "" {
		u.notifier.Enqueue(notify.Message{
			Kind: notify.KindStatusChanged,
			To:   updated.CandidateEmail,
			Name: updated.CandidateName,
			Mail: email.ApplicationMailData{
				CandidateName: updated.CandidateName,
				JobTitle:      updated.JobTitle,
				CompanyName:   updated.CompanyName,
				Status:        string(updated.Status),
			},
		})
	}

	return updated, nil
}

// exportColumns is the fixed column layout of an application export.
var exportColumns = []string{"candidate_name", "candidate_email", "status", "applied_at", "updated_at"}

// Export produces an xlsx or csv file of all applications to one of the
// caller's jobs. Only the owning company may export.
func (u *applicationUsecase) Export(ctx context.Context, userID int64, role string, jobID int64, format string) ([]byte, string, error) {
	principal, err := u.resolvePrincipal(ctx, userID, role)
	if err != nil {
		return nil, "", err
	}
	company, ok := principal.(domain.CompanyPrincipal)
	if !ok {
		return nil, "", apperror.Forbidden("Only companies can export applications")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.NotFound("Job not found")
		}
		return nil, "", err
	}
	if job.CompanyID != company.CompanyID {
		return nil, "", apperror.NotFound("Job not found")
	}

	// Limit export to 10,000 rows
	filter := domain.ApplicationFilter{
		CompanyID: &company.CompanyID,
		JobID:     &jobID,
		SortBy:    "applied_at",
		Page:      1,
		PageSize:  10000,
	}
	apps, _, err := u.appRepo.List(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch applications for export: %w", err)
	}

	switch format {
	case "csv":
		return exportApplicationsCSV(apps)
	case "xlsx", "":
		return exportApplicationsExcel(apps)
	default:
		return nil, "", apperror.BadRequest("Unsupported export format: " + format)
	}
}

func applicationFieldValue(app domain.Application, field string) interface{} {
	switch field {
	case "candidate_name":
		return app.CandidateName
	case "candidate_email":
		return app.CandidateEmail
	case "status":
		return string(app.Status)
	case "applied_at":
		return app.AppliedAt.Format(time.RFC3339)
	case "updated_at":
		return app.UpdatedAt.Format(time.RFC3339)
	default:
		return ""
	}
}

func exportApplicationsExcel(apps []domain.Application) ([]byte, string, error) {
	f := excelize.NewFile()
	sheetName := "Applications"
	f.SetSheetName("Sheet1", sheetName)

	headerNames := map[string]string{
		"candidate_name":  "CANDIDATE NAME",
		"candidate_email": "CANDIDATE EMAIL",
		"status":          "STATUS",
		"applied_at":      "APPLIED AT",
		"updated_at":      "UPDATED AT",
	}

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, headerNames[col])
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		for colIdx, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, applicationFieldValue(app, col))
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 24)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("applications_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func exportApplicationsCSV(apps []domain.Application) ([]byte, string, error) {
	var buf bytes.Buffer

	buf.WriteString(strings.Join(exportColumns, ",") + "\n")

	for _, app := range apps {
		values := make([]string, 0, len(exportColumns))
		for _, col := range exportColumns {
			valueStr := fmt.Sprintf("%v", applicationFieldValue(app, col))
			if strings.Contains(valueStr, ",") || strings.Contains(valueStr, "\"") || strings.Contains(valueStr, "\n") {
				valueStr = "\"" + strings.ReplaceAll(valueStr, "\"", "\"\"") + "\""
			}
			values = append(values, valueStr)
		}
		buf.WriteString(strings.Join(values, ",") + "\n")
	}

	filename := fmt.Sprintf("applications_%s.csv", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
