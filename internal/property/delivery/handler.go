package delivery

import (
	"errors"
	"net/http"

	"leadflow-backend/internal/property/dto"
	"leadflow-backend/internal/property/usecase"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles property CRUD HTTP requests
type PropertyHandler struct {
	propertyUsecase usecase.PropertyUsecase
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyUsecase usecase.PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{propertyUsecase: propertyUsecase}
}

// ListProperties returns all properties for the authenticated agent
// GET /api/properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	agentID := c.GetString("agentID")

	properties, err := h.propertyUsecase.ListProperties(agentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"properties": properties,
		"total":      len(properties),
	})
}

// CreateProperty creates a new property
// POST /api/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	agentID := c.GetString("agentID")

	var req dto.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.propertyUsecase.CreateProperty(agentID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrScheduleIDTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Property created successfully",
		"property": property,
	})
}

// UpdateProperty updates an existing property
// PUT /api/properties/:id
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	agentID := c.GetString("agentID")
	propertyID := c.Param("id")

	var req dto.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.propertyUsecase.UpdateProperty(agentID, propertyID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Property updated successfully",
		"property": property,
	})
}

// UpdateStatus toggles a property's lifecycle status
// PATCH /api/properties/:id/status
func (h *PropertyHandler) UpdateStatus(c *gin.Context) {
	agentID := c.GetString("agentID")
	propertyID := c.Param("id")

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.propertyUsecase.UpdateStatus(agentID, propertyID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Property status updated successfully",
		"property": property,
	})
}

// DeleteProperty removes a property
// DELETE /api/properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	agentID := c.GetString("agentID")
	propertyID := c.Param("id")

	if err := h.propertyUsecase.DeleteProperty(agentID, propertyID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Property deleted successfully",
	})
}

func (h *PropertyHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrScheduleIDTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
