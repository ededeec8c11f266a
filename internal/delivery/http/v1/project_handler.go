package v1

import (
	"net/http"
	"strconv"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(public *gin.RouterGroup, protected *gin.RouterGroup, projectUC domain.ProjectUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &ProjectHandler{projectUC: projectUC}

	// Public read-only views. Project details stay public so the
	// portfolio frontend can deep-link without a session.
	public.GET("/projects/public", handler.List)
	public.GET("/projects/:id", handler.Get)

	projects := protected.Group("/projects")
	{
		projects.GET("", handler.List)
		projects.POST("", handler.Create)
		projects.PUT("/:id", handler.Update)
		projects.DELETE("/:id", handler.Delete)
		projects.POST("/:id/upload", uploadLimiter, handler.UploadImage)
		projects.DELETE("/:id/images/:imageId", handler.DeleteImage)
	}
}

type CreateProjectRequest struct {
	Title        string              `json:"title" binding:"required"`
	Description  string              `json:"description" binding:"required"`
	LongDesc     string              `json:"longDescription"`
	Technologies []string            `json:"technologies" binding:"required,min=1"`
	Features     []string            `json:"features"`
	Category     string              `json:"category"`
	Status       string              `json:"status" binding:"omitempty,oneof=completed in-progress planned"`
	Featured     bool                `json:"featured"`
	Order        int                 `json:"order"`
	StartDate    string              `json:"startDate"`
	EndDate      string              `json:"endDate"`
	Links        domain.ProjectLinks `json:"links"`
}

// ListProjects godoc
// @Summary      List projects
// @Description  List projects ordered by display order, optionally filtered
// @Tags         projects
// @Produce      json
// @Param        featured  query     bool    false  "Filter by featured flag"
// @Param        category  query     string  false  "Filter by category"
// @Param        status    query     string  false  "Filter by status"
// @Success      200       {object}  response.Response
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var filter domain.ProjectFilter
	if raw := c.Query("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}
	filter.Category = c.Query("category")
	filter.Status = c.Query("status")

	projects, err := h.projectUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project list", projects)
}

// GetProject godoc
// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project", project)
}

// CreateProject godoc
// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      CreateProjectRequest  true  "Project"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /projects [post]
// @Security     BearerAuth
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	project := &domain.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDesc,
		Technologies:    req.Technologies,
		Features:        req.Features,
		Category:        req.Category,
		Status:          req.Status,
		Featured:        req.Featured,
		Order:           req.Order,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Links:           req.Links,
	}
	if err := h.projectUC.Create(c.Request.Context(), project); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project created", project)
}

// UpdateProject godoc
// @Summary      Update project
// @Description  Partially merge the supplied fields into the project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Project ID"
// @Param        project  body      domain.ProjectPatch  true  "Fields to update"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /projects/{id} [put]
// @Security     BearerAuth
func (h *ProjectHandler) Update(c *gin.Context) {
	var patch domain.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	project, err := h.projectUC.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project updated", project)
}

// DeleteProject godoc
// @Summary      Delete project
// @Description  Delete a project and release its stored assets
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [delete]
// @Security     BearerAuth
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project deleted", nil)
}

// UploadProjectImage godoc
// @Summary      Upload project image
// @Description  Attach an image to a project; the first becomes the canonical image
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true   "Project ID"
// @Param        image  formData  file    true   "Image file (jpeg/png/gif/webp, max 5 MiB)"
// @Param        type   formData  string  false  "Image type (screenshot/demo/thumbnail)"
// @Success      200    {object}  response.Response
// @Failure      413    {object}  response.Response
// @Failure      415    {object}  response.Response
// @Router       /projects/{id}/upload [post]
// @Security     BearerAuth
func (h *ProjectHandler) UploadImage(c *gin.Context) {
	filename, data, err := readFormFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}

	imageType := c.PostForm("type")
	project, err := h.projectUC.UploadImage(c.Request.Context(), c.Param("id"), filename, imageType, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Image uploaded", project)
}

// DeleteProjectImage godoc
// @Summary      Delete project image
// @Tags         projects
// @Produce      json
// @Param        id       path      string  true  "Project ID"
// @Param        imageId  path      string  true  "Image ID"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /projects/{id}/images/{imageId} [delete]
// @Security     BearerAuth
func (h *ProjectHandler) DeleteImage(c *gin.Context) {
	project, err := h.projectUC.DeleteImage(c.Request.Context(), c.Param("id"), c.Param("imageId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Image removed", project)
}
