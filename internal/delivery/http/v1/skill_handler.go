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

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

// NewSkillHandler registers the skill catalog routes. Reading is public;
// catalog management is admin only.
func NewSkillHandler(public *gin.RouterGroup, protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	public.GET("/skills", handler.ListSkills)

	admin := protected.Group("/skills")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("", handler.CreateSkill)
		admin.PUT("/:id", handler.UpdateSkill)
		admin.DELETE("/:id", handler.DeleteSkill)
	}
}

type SkillRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// ListSkills godoc
// @Summary      List skills
// @Description  Get the skill catalog
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Router       /skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// CreateSkill godoc
// @Summary      Create skill
// @Description  Add a skill to the catalog (Admin only)
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body      SkillRequest  true  "Skill"
// @Success      201  {object}  response.Response{data=domain.Skill}
// @Failure      409  {object}  response.Response
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.CreateSkill(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill created", skill)
}

// UpdateSkill godoc
// @Summary      Update skill
// @Description  Rename a catalog skill (Admin only)
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Skill ID"
// @Param        body  body      SkillRequest  true  "Skill"
// @Success      200  {object}  response.Response{data=domain.Skill}
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid skill ID"))
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.UpdateSkill(c.Request.Context(), id, req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", skill)
}

// DeleteSkill godoc
// @Summary      Delete skill
// @Description  Remove a skill from the catalog (Admin only)
// @Tags         skills
// @Produce      json
// @Param        id  path  int  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid skill ID"))
		return
	}

	if err := h.skillUC.DeleteSkill(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}
