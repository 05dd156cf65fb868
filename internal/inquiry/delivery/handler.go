package delivery

import (
	"errors"
	"net/http"

	"leadflow-backend/internal/inquiry/dto"
	"leadflow-backend/internal/inquiry/usecase"

	"github.com/gin-gonic/gin"
)

// InquiryHandler handles inquiry HTTP requests
type InquiryHandler struct {
	inquiryUsecase usecase.InquiryUsecase
}

// NewInquiryHandler creates a new InquiryHandler
func NewInquiryHandler(inquiryUsecase usecase.InquiryUsecase) *InquiryHandler {
	return &InquiryHandler{inquiryUsecase: inquiryUsecase}
}

// ListInquiries returns the agent's inquiries with joined property info
// GET /api/inquiries
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	agentID := c.GetString("agentID")

	inquiries, err := h.inquiryUsecase.ListInquiries(agentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"inquiries": inquiries,
	})
}

// CreateInquiry records a prospect inquiry
// POST /api/inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	agentID := c.GetString("agentID")

	var req dto.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inquiry, err := h.inquiryUsecase.CreateInquiry(agentID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownProperty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"inquiry": inquiry,
	})
}

// UpdateStatus updates an inquiry's workflow status
// PATCH /api/inquiries/:id/status
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	agentID := c.GetString("agentID")
	inquiryID := c.Param("id")

	var req dto.InquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inquiry, err := h.inquiryUsecase.UpdateStatus(agentID, inquiryID, req.Status)
	if err != nil {
		if errors.Is(err, usecase.ErrInquiryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"inquiry": inquiry,
	})
}
