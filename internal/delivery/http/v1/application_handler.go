package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application lifecycle routes.
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apply := protected.Group("")
	apply.Use(middleware.RequireRole(domain.RoleCandidate))
	{
		apply.POST("/jobs/:id/apply", handler.ApplyToJob)
	}

	applications := protected.Group("/applications")
	{
		applications.GET("", handler.ListApplications)
		applications.GET("/export", handler.ExportApplications)
		applications.GET("/:id", handler.GetApplication)
		applications.PATCH("/:id", handler.UpdateApplicationStatus)
	}
}

// UpdateStatusRequest is the payload for moving an application.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=applied reviewing approved rejected"`
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submit an application for an open job (Candidate only)
// @Tags         applications
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListApplications godoc
// @Summary      List applications
// @Description  List applications visible to the caller: a company sees applications to its jobs, a candidate sees their own
// @Tags         applications
// @Produce      json
// @Param        job_id     query  int     false  "Filter by job"
// @Param        status     query  string  false  "Filter by status"  Enums(applied, reviewing, approved, rejected)
// @Param        sort_by    query  string  false  "Sort field"        Enums(applied_at, updated_at, status, id)
// @Param        sort_desc  query  bool    false  "Sort descending"
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      400  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	filter := domain.ApplicationFilter{
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_desc") == "true",
	}
	filter.Page, filter.PageSize = pageParams(c)

	if jobIDStr := c.Query("job_id"); jobIDStr != "" {
		jobID, err := strconv.ParseInt(jobIDStr, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid job ID"))
			return
		}
		filter.JobID = &jobID
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.ApplicationStatus(statusStr)
		filter.Status = &status
	}

	page, err := h.applicationUC.List(c.Request.Context(), userID, role, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Paginated(c, http.StatusOK, "Applications retrieved", page.Items, response.PageMeta{
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

// GetApplication godoc
// @Summary      Get application
// @Description  Get one application; only the applying candidate or the company owning the job may see it
// @Tags         applications
// @Produce      json
// @Param        id  path  int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	app, err := h.applicationUC.GetByID(c.Request.Context(), userID, role, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved", app)
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Description  Move an application one step through the lifecycle (owning company only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, role, id, domain.ApplicationStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}

// ExportApplications godoc
// @Summary      Export applications
// @Description  Download applications to one of the caller's jobs as xlsx or csv (Company only)
// @Tags         applications
// @Produce      application/octet-stream
// @Param        job_id  query  int     true   "Job ID"
// @Param        format  query  string  false  "Export format"  Enums(xlsx, csv)
// @Success      200  {file}    file
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/export [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ExportApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	jobID, err := strconv.ParseInt(c.Query("job_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}
	format := c.DefaultQuery("format", "xlsx")

	data, filename, err := h.applicationUC.Export(c.Request.Context(), userID, role, jobID, format)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == "csv" {
		contentType = "text/csv"
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
