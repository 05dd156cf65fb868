package delivery

import (
	"errors"
	"log/slog"
	"net/http"

	"leadflow-backend/internal/automation/dto"
	"leadflow-backend/internal/automation/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives tour-booking notifications from the external
// scheduling system. The endpoint is unauthenticated and always acknowledges
// with HTTP 200: the source does not replay rejected deliveries, so
// application failures are reported in the body and logged for operators.
type WebhookHandler struct {
	automationUsecase usecase.AutomationUsecase
	logger            *slog.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(automationUsecase usecase.AutomationUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		automationUsecase: automationUsecase,
		logger:            logger,
	}
}

// HandleTourBooking processes a scheduling webhook
// POST /api/webhooks/scheduling
func (h *WebhookHandler) HandleTourBooking(c *gin.Context) {
	var payload dto.TourWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		// Only total malformation surfaces a transport-level failure.
		c.JSON(http.StatusBadRequest, dto.WebhookResponse{
			Status:  "error",
			Message: "malformed payload",
		})
		return
	}

	if err := h.automationUsecase.HandleTourWebhook(&payload); err != nil {
		h.logger.Error("tour webhook rejected",
			"appointment_id", payload.ID.String(),
			"appointment_type_id", payload.AppointmentTypeID.String(),
			"error", err,
		)
		c.JSON(http.StatusOK, dto.WebhookResponse{
			Status:  "error",
			Message: webhookMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{
		Status:  "success",
		Message: "Tour booking logged",
	})
}

// webhookMessage keeps the body stable for known rejections and generic for
// everything else.
func webhookMessage(err error) string {
	if errors.Is(err, usecase.ErrInvalidPayload) || errors.Is(err, usecase.ErrPropertyNotFound) {
		return err.Error()
	}
	return "internal error"
}
