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

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes. Browsing is public; posting and
// managing jobs requires the company role.
func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.ListJobs)
	public.GET("/jobs/:id", handler.GetJob)

	company := protected.Group("")
	company.Use(middleware.RequireRole(domain.RoleCompany))
	{
		company.POST("/jobs", handler.CreateJob)
		company.PUT("/jobs/:id", handler.UpdateJob)
		company.DELETE("/jobs/:id", handler.DeleteJob)
		company.PUT("/jobs/:id/skills", handler.SetJobSkills)
		company.GET("/companies/me/jobs", handler.ListMyJobs)
	}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Browse published jobs with paging
// @Tags         jobs
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	page, pageSize := pageParams(c)

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, http.StatusOK, "Jobs retrieved", jobs, response.PageMeta{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetJob godoc
// @Summary      Get job
// @Description  Get one job with company and skills
// @Tags         jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// CreateJob godoc
// @Summary      Create job
// @Description  Publish a new job for the caller's company
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Job  true  "Job"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, &job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// UpdateJob godoc
// @Summary      Update job
// @Description  Update one of the caller's jobs
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Job ID"
// @Param        body  body      domain.Job  true  "Job"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.jobUC.UpdateJob(c.Request.Context(), userID, id, &job)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", updated)
}

// DeleteJob godoc
// @Summary      Delete job
// @Description  Delete one of the caller's jobs
// @Tags         jobs
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// SetJobSkills godoc
// @Summary      Set job skills
// @Description  Replace the required skill set of one of the caller's jobs
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      SetSkillsRequest  true  "Skill ids"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/skills [put]
// @Security     BearerAuth
func (h *JobHandler) SetJobSkills(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req SetSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.SetJobSkills(c.Request.Context(), userID, id, req.SkillIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job skills updated", job)
}

// ListMyJobs godoc
// @Summary      List my jobs
// @Description  List the caller's company jobs with paging
// @Tags         jobs
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /companies/me/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	page, pageSize := pageParams(c)

	jobs, total, err := h.jobUC.ListJobsByCompany(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, http.StatusOK, "Jobs retrieved", jobs, response.PageMeta{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
