package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &ProfileHandler{profileUC: profileUC}

	// Public read-only view
	public.GET("/profile/public", handler.Get)

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
		profile.POST("/upload-image", uploadLimiter, handler.UploadImage)
		profile.POST("/resume", uploadLimiter, handler.UploadResume)
		profile.POST("/skills", handler.AddSkill)
		profile.PUT("/skills/:skillId", handler.UpdateSkill)
		profile.DELETE("/skills/:skillId", handler.DeleteSkill)
	}
}

type AddSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"omitempty,oneof=frontend backend tools other"`
	Icon        string `json:"icon"`
	Proficiency int    `json:"proficiency" binding:"gte=0,lte=100"`
}

// GetProfile godoc
// @Summary      Get profile
// @Description  Return the profile singleton, creating a default one if absent
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Partially merge the supplied fields into the profile singleton
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfilePatch  true  "Fields to update"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	var patch domain.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	profile, err := h.profileUC.Update(c.Request.Context(), &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// UploadProfileImage godoc
// @Summary      Upload profile image
// @Description  Upload the about-section image; recompressed before storage
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file (jpeg/png/gif/webp, max 5 MiB)"
// @Success      200    {object}  response.Response
// @Failure      413    {object}  response.Response
// @Failure      415    {object}  response.Response
// @Router       /profile/upload-image [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadImage(c *gin.Context) {
	filename, data, err := readFormFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.profileUC.UploadImage(c.Request.Context(), filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Image uploaded", profile)
}

// UploadResume godoc
// @Summary      Upload resume
// @Description  Upload the resume document (PDF only)
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "PDF file (max 5 MiB)"
// @Success      200     {object}  response.Response
// @Failure      413     {object}  response.Response
// @Failure      415     {object}  response.Response
// @Router       /profile/resume [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	filename, data, err := readFormFile(c, "resume")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.profileUC.UploadResume(c.Request.Context(), filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded", profile)
}

// AddSkill godoc
// @Summary      Add skill
// @Description  Append a skill to the profile; a stable ID is assigned server-side
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        skill  body      AddSkillRequest  true  "Skill"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /profile/skills [post]
// @Security     BearerAuth
func (h *ProfileHandler) AddSkill(c *gin.Context) {
	var req AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	skill := &domain.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Icon:        req.Icon,
		Proficiency: req.Proficiency,
	}
	profile, err := h.profileUC.AddSkill(c.Request.Context(), skill)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill added", profile)
}

// UpdateSkill godoc
// @Summary      Update skill
// @Description  Partially update one skill by its ID
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        skillId  path      string            true  "Skill ID"
// @Param        skill    body      domain.SkillPatch  true  "Fields to update"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /profile/skills/{skillId} [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateSkill(c *gin.Context) {
	var patch domain.SkillPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	profile, err := h.profileUC.UpdateSkill(c.Request.Context(), c.Param("skillId"), &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill updated", profile)
}

// DeleteSkill godoc
// @Summary      Delete skill
// @Description  Remove one skill by its ID
// @Tags         profile
// @Produce      json
// @Param        skillId  path      string  true  "Skill ID"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /profile/skills/{skillId} [delete]
// @Security     BearerAuth
func (h *ProfileHandler) DeleteSkill(c *gin.Context) {
	profile, err := h.profileUC.DeleteSkill(c.Request.Context(), c.Param("skillId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill removed", profile)
}
