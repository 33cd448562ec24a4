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

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewCandidateHandler registers candidate profile routes, including the
// skills, links, experiences and educations sub-resources.
func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	// Candidate profiles are visible to recruiters and admins, not to
	// other candidates.
	readers := protected.Group("/candidates")
	readers.Use(middleware.RequireRole(domain.RoleCompany, domain.RoleAdmin))
	{
		readers.GET("/:id", handler.GetCandidate)
	}

	candidates := protected.Group("/candidates")
	candidates.Use(middleware.RequireRole(domain.RoleCandidate))
	{
		candidates.PUT("/me", handler.UpsertProfile)
		candidates.GET("/me", handler.GetProfile)
		candidates.PUT("/me/skills", handler.SetSkills)

		candidates.GET("/me/links", handler.ListLinks)
		candidates.POST("/me/links", handler.AddLink)
		candidates.PUT("/me/links/:id", handler.UpdateLink)
		candidates.DELETE("/me/links/:id", handler.RemoveLink)

		candidates.GET("/me/experiences", handler.ListExperiences)
		candidates.POST("/me/experiences", handler.AddExperience)
		candidates.PUT("/me/experiences/:id", handler.UpdateExperience)
		candidates.DELETE("/me/experiences/:id", handler.RemoveExperience)

		candidates.GET("/me/educations", handler.ListEducations)
		candidates.POST("/me/educations", handler.AddEducation)
		candidates.PUT("/me/educations/:id", handler.UpdateEducation)
		candidates.DELETE("/me/educations/:id", handler.RemoveEducation)
	}
}

type SetSkillsRequest struct {
	SkillIDs []int64 `json:"skill_ids" binding:"required"`
}

// GetCandidate godoc
// @Summary      Get a candidate
// @Description  Get a candidate profile by user ID (Company or Admin only)
// @Tags         candidates
// @Produce      json
// @Param        id  path  int  true  "Candidate user ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate ID"))
		return
	}

	candidate, err := h.candidateUC.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}

// UpsertProfile godoc
// @Summary      Create or update candidate profile
// @Description  Create the caller's candidate profile, or update it if it already exists
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Candidate  true  "Candidate profile"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Success      201  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates/me [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpsertProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var candidate domain.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	saved, created, err := h.candidateUC.UpsertProfile(c.Request.Context(), userID, &candidate)
	if err != nil {
		c.Error(err)
		return
	}

	if created {
		response.Success(c, http.StatusCreated, "Candidate profile created", saved)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile updated", saved)
}

// GetProfile godoc
// @Summary      Get candidate profile
// @Description  Get the caller's candidate profile including skills
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	candidate, err := h.candidateUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile retrieved", candidate)
}

// SetSkills godoc
// @Summary      Set candidate skills
// @Description  Replace the caller's skill set with the given catalog skill ids
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      SetSkillsRequest  true  "Skill ids"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/me/skills [put]
// @Security     BearerAuth
func (h *CandidateHandler) SetSkills(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req SetSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.SetSkills(c.Request.Context(), userID, req.SkillIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills updated", candidate)
}

func (h *CandidateHandler) ListLinks(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	links, err := h.candidateUC.ListLinks(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Links retrieved", links)
}

func (h *CandidateHandler) AddLink(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var link domain.Link
	if err := c.ShouldBindJSON(&link); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.AddLink(c.Request.Context(), userID, &link); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Link added", link)
}

func (h *CandidateHandler) UpdateLink(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid link ID"))
		return
	}

	var link domain.Link
	if err := c.ShouldBindJSON(&link); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	link.ID = id

	if err := h.candidateUC.UpdateLink(c.Request.Context(), userID, &link); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Link updated", link)
}

func (h *CandidateHandler) RemoveLink(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid link ID"))
		return
	}

	if err := h.candidateUC.RemoveLink(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Link removed", nil)
}

func (h *CandidateHandler) ListExperiences(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	experiences, err := h.candidateUC.ListExperiences(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experiences retrieved", experiences)
}

func (h *CandidateHandler) AddExperience(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var exp domain.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.AddExperience(c.Request.Context(), userID, &exp); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added", exp)
}

func (h *CandidateHandler) UpdateExperience(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid experience ID"))
		return
	}

	var exp domain.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	exp.ID = id

	if err := h.candidateUC.UpdateExperience(c.Request.Context(), userID, &exp); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated", exp)
}

func (h *CandidateHandler) RemoveExperience(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid experience ID"))
		return
	}

	if err := h.candidateUC.RemoveExperience(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience removed", nil)
}

func (h *CandidateHandler) ListEducations(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	educations, err := h.candidateUC.ListEducations(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Educations retrieved", educations)
}

func (h *CandidateHandler) AddEducation(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var edu domain.Education
	if err := c.ShouldBindJSON(&edu); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.AddEducation(c.Request.Context(), userID, &edu); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education added", edu)
}

func (h *CandidateHandler) UpdateEducation(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid education ID"))
		return
	}

	var edu domain.Education
	if err := c.ShouldBindJSON(&edu); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	edu.ID = id

	if err := h.candidateUC.UpdateEducation(c.Request.Context(), userID, &edu); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", edu)
}

func (h *CandidateHandler) RemoveEducation(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid education ID"))
		return
	}

	if err := h.candidateUC.RemoveEducation(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education removed", nil)
}
