package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardStats aggregates the counters shown on the agent dashboard
// GET /api/dashboard/stats
func (h *Handler) DashboardStats(c *gin.Context) {
	agentID := c.GetString("agentID")

	totalProperties, activeProperties, err := h.propertyUsecase.CountProperties(agentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard stats"})
		return
	}

	totalInquiries, err := h.inquiryUsecase.CountInquiries(agentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard stats"})
		return
	}

	automationStats, err := h.automationUsecase.GetStats(agentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total_properties":  totalProperties,
			"active_properties": activeProperties,
			"total_inquiries":   totalInquiries,
			"response_rate":     automationStats.ResponseRate,
		},
	})
}
