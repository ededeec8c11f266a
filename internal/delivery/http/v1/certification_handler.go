package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CertificationHandler struct {
	certificationUC domain.CertificationUsecase
}

func NewCertificationHandler(public *gin.RouterGroup, protected *gin.RouterGroup, certificationUC domain.CertificationUsecase) {
	handler := &CertificationHandler{certificationUC: certificationUC}

	public.GET("/certifications/public", handler.List)
	public.GET("/certifications/:id", handler.Get)

	certifications := protected.Group("/certifications")
	{
		certifications.GET("", handler.List)
		certifications.POST("", handler.Create)
		certifications.PUT("/:id", handler.Update)
		certifications.DELETE("/:id", handler.Delete)
	}
}

type CreateCertificationRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Platform      string   `json:"platform" binding:"required"`
	Icon          string   `json:"icon"`
	IssueDate     string   `json:"issueDate"`
	CredentialURL string   `json:"credentialUrl" binding:"omitempty,url"`
	CredentialID  string   `json:"credentialId"`
	ImageURL      string   `json:"imageUrl" binding:"omitempty,url"`
	Skills        []string `json:"skills"`
	Order         int      `json:"order"`
}

// ListCertifications godoc
// @Summary      List certifications
// @Description  Ordered by display order, then newest first
// @Tags         certifications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /certifications [get]
func (h *CertificationHandler) List(c *gin.Context) {
	certifications, err := h.certificationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification list", certifications)
}

// GetCertification godoc
// @Summary      Get certification
// @Tags         certifications
// @Produce      json
// @Param        id   path      string  true  "Certification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certifications/{id} [get]
func (h *CertificationHandler) Get(c *gin.Context) {
	certification, err := h.certificationUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification", certification)
}

// CreateCertification godoc
// @Summary      Create certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        certification  body      CreateCertificationRequest  true  "Certification"
// @Success      201            {object}  response.Response
// @Failure      400            {object}  response.Response
// @Router       /certifications [post]
// @Security     BearerAuth
func (h *CertificationHandler) Create(c *gin.Context) {
	var req CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	certification := &domain.Certification{
		Title:         req.Title,
		Description:   req.Description,
		Platform:      req.Platform,
		Icon:          req.Icon,
		IssueDate:     req.IssueDate,
		CredentialURL: req.CredentialURL,
		CredentialID:  req.CredentialID,
		ImageURL:      req.ImageURL,
		Skills:        req.Skills,
		Order:         req.Order,
	}
	if err := h.certificationUC.Create(c.Request.Context(), certification); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Certification created", certification)
}

// UpdateCertification godoc
// @Summary      Update certification
// @Description  Partially merge the supplied fields into the certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        id             path      string                     true  "Certification ID"
// @Param        certification  body      domain.CertificationPatch  true  "Fields to update"
// @Success      200            {object}  response.Response
// @Failure      404            {object}  response.Response
// @Router       /certifications/{id} [put]
// @Security     BearerAuth
func (h *CertificationHandler) Update(c *gin.Context) {
	var patch domain.CertificationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(bindError(err))
		return
	}

	certification, err := h.certificationUC.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification updated", certification)
}

// DeleteCertification godoc
// @Summary      Delete certification
// @Tags         certifications
// @Produce      json
// @Param        id   path      string  true  "Certification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certifications/{id} [delete]
// @Security     BearerAuth
func (h *CertificationHandler) Delete(c *gin.Context) {
	if err := h.certificationUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification deleted", nil)
}
