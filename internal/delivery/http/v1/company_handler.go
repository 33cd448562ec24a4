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

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

// NewCompanyHandler registers company profile routes. Company profiles
// are publicly readable by user id; writing requires the company role.
func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	public.GET("/companies/:id", handler.GetCompany)

	companies := protected.Group("/companies")
	companies.Use(middleware.RequireRole(domain.RoleCompany))
	{
		companies.PUT("/me", handler.UpsertProfile)
		companies.GET("/me", handler.GetProfile)
	}
}

// UpsertProfile godoc
// @Summary      Create or update company profile
// @Description  Create the caller's company profile, or update it if it already exists
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Company  true  "Company profile"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Success      201  {object}  response.Response{data=domain.Company}
// @Failure      400  {object}  response.Response
// @Router       /companies/me [put]
// @Security     BearerAuth
func (h *CompanyHandler) UpsertProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var company domain.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	saved, created, err := h.companyUC.UpsertProfile(c.Request.Context(), userID, &company)
	if err != nil {
		c.Error(err)
		return
	}

	if created {
		response.Success(c, http.StatusCreated, "Company profile created", saved)
		return
	}
	response.Success(c, http.StatusOK, "Company profile updated", saved)
}

// GetCompany godoc
// @Summary      Get a company
// @Description  Get a company profile by user ID
// @Tags         companies
// @Produce      json
// @Param        id  path  int  true  "Company user ID"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company ID"))
		return
	}

	company, err := h.companyUC.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company retrieved", company)
}

// GetProfile godoc
// @Summary      Get company profile
// @Description  Get the caller's company profile
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /companies/me [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	company, err := h.companyUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile retrieved", company)
}
