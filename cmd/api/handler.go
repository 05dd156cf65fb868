package api

import (
	authUsecase "leadflow-backend/internal/auth/usecase"
	automationUsecasePkg "leadflow-backend/internal/automation/usecase"
	inquiryUsecasePkg "leadflow-backend/internal/inquiry/usecase"
	propertyUsecasePkg "leadflow-backend/internal/property/usecase"
	"leadflow-backend/pkg/config"
	"leadflow-backend/pkg/ratelimit"

	"log/slog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase       authUsecase.AuthUsecase
	propertyUsecase   propertyUsecasePkg.PropertyUsecase
	inquiryUsecase    inquiryUsecasePkg.InquiryUsecase
	automationUsecase automationUsecasePkg.AutomationUsecase
	registerLimiter   ratelimit.Limiter
	loginLimiter      ratelimit.Limiter
	config            *config.Config
	logger            *slog.Logger
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	propertyUc propertyUsecasePkg.PropertyUsecase,
	inquiryUc inquiryUsecasePkg.InquiryUsecase,
	automationUc automationUsecasePkg.AutomationUsecase,
	registerLimiter ratelimit.Limiter,
	loginLimiter ratelimit.Limiter,
	cfg *config.Config,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		authUsecase:       authUc,
		propertyUsecase:   propertyUc,
		inquiryUsecase:    inquiryUc,
		automationUsecase: automationUc,
		registerLimiter:   registerLimiter,
		loginLimiter:      loginLimiter,
		config:            cfg,
		logger:            logger,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
