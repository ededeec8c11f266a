package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/repository/mongodb"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/auth"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/storage"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Content backend for a personal portfolio site.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Database
	db, err := database.NewMongoConnection(cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background())

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 15*time.Second)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		logger.Log.Error("Failed to create indexes", "error", err)
		cancelIndex()
		os.Exit(1)
	}
	cancelIndex()

	// 4. Setup Redis (optional; rate limiter falls back to in-memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer redis.Close()
		}
	}

	// 5. Setup Asset Store
	storeCtx, cancelStore := context.WithTimeout(context.Background(), 10*time.Second)
	assets, err := storage.NewS3Store(storeCtx, storage.Config{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		Bucket:        cfg.S3Bucket,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	cancelStore()
	if err != nil {
		logger.Log.Error("Failed to configure asset store", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	experienceRepo := mongodb.NewExperienceRepository(db)
	certificationRepo := mongodb.NewCertificationRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)

	// 7. Setup Token Manager and UseCases
	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	profileUC := usecase.NewProfileUsecase(profileRepo, assets)
	projectUC := usecase.NewProjectUsecase(projectRepo, assets)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo)
	certificationUC := usecase.NewCertificationUsecase(certificationRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:          authUC,
		ProfileUC:       profileUC,
		ProjectUC:       projectUC,
		ExperienceUC:    experienceUC,
		CertificationUC: certificationUC,
		MessageUC:       messageUC,
		Tokens:          tokens,
		Config:          cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
