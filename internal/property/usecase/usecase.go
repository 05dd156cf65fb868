package usecase

import (
	"leadflow-backend/internal/property/domain"
	"leadflow-backend/internal/property/dto"
)

// PropertyUsecase defines the interface for property business logic.
// All operations are scoped to the calling agent; a property owned by another
// agent behaves as if it does not exist.
type PropertyUsecase interface {
	ListProperties(agentID string) ([]*domain.Property, error)
	CreateProperty(agentID string, req *dto.PropertyRequest) (*domain.Property, error)
	UpdateProperty(agentID, propertyID string, req *dto.PropertyRequest) (*domain.Property, error)
	UpdateStatus(agentID, propertyID string, req *dto.StatusUpdateRequest) (*domain.Property, error)
	DeleteProperty(agentID, propertyID string) error

	// CountProperties returns the agent's total and active listing counts.
	CountProperties(agentID string) (total, active int64, err error)
}
