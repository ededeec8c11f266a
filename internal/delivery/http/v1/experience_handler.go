package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(public *gin.RouterGroup, protected *gin.RouterGroup, experienceUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}

	public.GET("/experience/public", handler.List)
	public.GET("/experience/:id", handler.Get)

	experience := protected.Group("/experience")
	{
		experience.GET("", handler.List)
		experience.POST("", handler.Create)
		experience.PUT("/:id", handler.Update)
		experience.DELETE("/:id", handler.Delete)
	}
}

type CreateExperienceRequest struct {
	Type         string   `json:"type" binding:"omitempty,oneof=work education project other"`
	Title        string   `json:"title" binding:"required"`
	Organization string   `json:"organization" binding:"required"`
	Location     string   `json:"location"`
	Description  string   `json:"description" binding:"required"`
	StartDate    string   `json:"startDate" binding:"required"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
	Order        int      `json:"order"`
}

// ListExperience godoc
// @Summary      List experience entries
// @Description  Ordered by display order, then most recent start date
// @Tags         experience
// @Produce      json
// @Param        type  query     string  false  "Filter by type (work/education/project/other)"
// @Success      200   {object}  response.Response
// @Router       /experience [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	entries, err := h.experienceUC.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience list", entries)
}

// GetExperience godoc
// @Summary      Get experience entry
// @Tags         experience
// @Produce      json
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experience/{id} [get]
func (h *ExperienceHandler) Get(c *gin.Context) {
	entry, err := h.experienceUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience", entry)
}

// CreateExperience godoc
// @Summary      Create experience entry
// @Tags         experience
// @Accept       json
// @Produce      json
// @Param        experience  body      CreateExperienceRequest  true  "Experience"
// @Success      201         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Router       /experience [post]
// @Security     BearerAuth
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	entry := &domain.Experience{
		Type:         req.Type,
		Title:        req.Title,
		Organization: req.Organization,
		Location:     req.Location,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Current:      req.Current,
		Technologies: req.Technologies,
		Achievements: req.Achievements,
		Order:        req.Order,
	}
	if err := h.experienceUC.Create(c.Request.Context(), entry); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience created", entry)
}

// UpdateExperience godoc
// @Summary      Update experience entry
// @Description  Partially merge the supplied fields into the entry
// @Tags         experience
// @Accept       json
// @Produce      json
// @Param        id          path      string                  true  "Experience ID"
// @Param        experience  body      domain.ExperiencePatch  true  "Fields to update"
// @Success      200         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /experience/{id} [put]
// @Security     BearerAuth
func (h *ExperienceHandler) Update(c *gin.Context) {
	var patch domain.ExperiencePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	entry, err := h.experienceUC.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", entry)
}

// DeleteExperience godoc
// @Summary      Delete experience entry
// @Tags         experience
// @Produce      json
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experience/{id} [delete]
// @Security     BearerAuth
func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.experienceUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted", nil)
}
