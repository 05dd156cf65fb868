package api

import (
	"net/http"

	authDelivery "leadflow-backend/internal/auth/delivery"
	automationDelivery "leadflow-backend/internal/automation/delivery"
	inquiryDelivery "leadflow-backend/internal/inquiry/delivery"
	propertyDelivery "leadflow-backend/internal/property/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authDelivery.NewAuthHandler(h.authUsecase, h.registerLimiter, h.loginLimiter)
	propertyHandler := propertyDelivery.NewPropertyHandler(h.propertyUsecase)
	inquiryHandler := inquiryDelivery.NewInquiryHandler(h.inquiryUsecase)
	automationHandler := automationDelivery.NewAutomationHandler(h.automationUsecase)
	webhookHandler := automationDelivery.NewWebhookHandler(h.automationUsecase, h.logger)

	requireAuth := authDelivery.AuthMiddleware(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Scheduling webhook (no auth: called by the external system)
		api.POST("/webhooks/scheduling", webhookHandler.HandleTourBooking)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		// Property routes (protected)
		properties := api.Group("/properties")
		properties.Use(requireAuth)
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.POST("", propertyHandler.CreateProperty)
			properties.PUT("/:id", propertyHandler.UpdateProperty)
			properties.PATCH("/:id/status", propertyHandler.UpdateStatus)
			properties.DELETE("/:id", propertyHandler.DeleteProperty)
		}

		// Inquiry routes (protected)
		inquiries := api.Group("/inquiries")
		inquiries.Use(requireAuth)
		{
			inquiries.GET("", inquiryHandler.ListInquiries)
			inquiries.POST("", inquiryHandler.CreateInquiry)
			inquiries.PATCH("/:id/status", inquiryHandler.UpdateStatus)
		}

		// Automation routes (protected)
		automation := api.Group("/automation")
		automation.Use(requireAuth)
		{
			automation.GET("/stats", automationHandler.GetStats)
			automation.POST("/log-email", automationHandler.LogEmail)
		}

		// Dashboard (protected)
		api.GET("/dashboard/stats", requireAuth, h.DashboardStats)
	}
}
