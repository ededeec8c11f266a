package v1

import (
	"net/http"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC          domain.AuthUsecase
	ProfileUC       domain.ProfileUsecase
	ProjectUC       domain.ProjectUsecase
	ExperienceUC    domain.ExperienceUsecase
	CertificationUC domain.CertificationUsecase
	MessageUC       domain.MessageUsecase
	Tokens          *auth.Manager
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.ClientURLs)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))
	r.Use(middleware.ErrorHandler())

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config))
	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(deps.Config))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter)
	NewProfileHandler(v1, protected, deps.ProfileUC, uploadLimiter)
	NewProjectHandler(v1, protected, deps.ProjectUC, uploadLimiter)
	NewExperienceHandler(v1, protected, deps.ExperienceUC)
	NewCertificationHandler(v1, protected, deps.CertificationUC)
	NewMessageHandler(v1, protected, deps.MessageUC)

	return r
}
