package repository

import "leadflow-backend/internal/property/domain"

// PropertyRepository defines the interface for property data access
type PropertyRepository interface {
	Create(property *domain.Property) error
	FindByID(id string) (*domain.Property, error)
	FindByAgentID(agentID string) ([]*domain.Property, error)

	// FindByExternalScheduleID resolves the external scheduling identifier to
	// the owning property. The lookup is global: the identifier is assumed
	// unique across all agents.
	FindByExternalScheduleID(externalID string) (*domain.Property, error)

	CountByAgentID(agentID string) (int64, error)
	CountActiveByAgentID(agentID string) (int64, error)
	Update(property *domain.Property) error
	Delete(id string) error
}
