package delivery

import (
	"errors"
	"net/http"

	"leadflow-backend/internal/automation/dto"
	"leadflow-backend/internal/automation/usecase"

	"github.com/gin-gonic/gin"
)

// AutomationHandler handles the authenticated automation endpoints
type AutomationHandler struct {
	automationUsecase usecase.AutomationUsecase
}

// NewAutomationHandler creates a new AutomationHandler
func NewAutomationHandler(automationUsecase usecase.AutomationUsecase) *AutomationHandler {
	return &AutomationHandler{automationUsecase: automationUsecase}
}

// GetStats returns the agent's automation statistics
// GET /api/automation/stats
func (h *AutomationHandler) GetStats(c *gin.Context) {
	agentID := c.GetString("agentID")

	stats, err := h.automationUsecase.GetStats(agentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

// LogEmail records an automated email send against one of the agent's
// properties
// POST /api/automation/log-email
func (h *AutomationHandler) LogEmail(c *gin.Context) {
	agentID := c.GetString("agentID")

	var req dto.LogEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.automationUsecase.LogEmailSent(agentID, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotPropertyOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email logged",
	})
}
