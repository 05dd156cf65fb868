package main

import (
	"os"
	"time"

	api "leadflow-backend/cmd/api"
	authdomain "leadflow-backend/internal/auth/domain"
	authRepo "leadflow-backend/internal/auth/repository"
	authUsecase "leadflow-backend/internal/auth/usecase"
	automationdomain "leadflow-backend/internal/automation/domain"
	automationRepo "leadflow-backend/internal/automation/repository"
	automationUsecase "leadflow-backend/internal/automation/usecase"
	inquirydomain "leadflow-backend/internal/inquiry/domain"
	inquiryRepo "leadflow-backend/internal/inquiry/repository"
	inquiryUsecase "leadflow-backend/internal/inquiry/usecase"
	propertydomain "leadflow-backend/internal/property/domain"
	propertyRepo "leadflow-backend/internal/property/repository"
	propertyUsecase "leadflow-backend/internal/property/usecase"
	"leadflow-backend/pkg/config"
	"leadflow-backend/pkg/database"
	"leadflow-backend/pkg/logging"
	"leadflow-backend/pkg/ratelimit"
	"leadflow-backend/pkg/validators"

	"github.com/go-playground/validator/v10"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)

	// Initialize database
	db, err := database.NewSQLiteConnection(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.Agent{},
		&authdomain.RefreshToken{},
		&propertydomain.Property{},
		&inquirydomain.Inquiry{},
		&automationdomain.AutomationEvent{},
		&automationdomain.AutomationStats{},
	); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Request validation with custom rules
	validate := validator.New()
	validators.Register(validate)

	// Initialize repositories (dependency injection)
	agentRepository := authRepo.NewAgentRepository(db)
	propertyRepository := propertyRepo.NewGormPropertyRepository(db)
	inquiryRepository := inquiryRepo.NewGormInquiryRepository(db)
	automationRepository := automationRepo.NewGormAutomationRepository(db)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(agentRepository, validate, cfg)
	propertyUc := propertyUsecase.NewPropertyUsecase(propertyRepository)
	inquiryUc := inquiryUsecase.NewInquiryUsecase(inquiryRepository, propertyRepository)
	automationUc := automationUsecase.NewAutomationUsecase(automationRepository, propertyRepository, logger)

	// Sliding-window limiters on the auth endpoints, keyed by client IP.
	// In-memory: counters reset on restart.
	registerLimiter := ratelimit.NewSlidingWindow(3, time.Hour)
	loginLimiter := ratelimit.NewSlidingWindow(5, 15*time.Minute)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, propertyUc, inquiryUc, automationUc, registerLimiter, loginLimiter, cfg, logger)

	logger.Info("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
