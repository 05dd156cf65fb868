package repository

import "leadflow-backend/internal/inquiry/domain"

// InquiryRepository defines the interface for inquiry data access
type InquiryRepository interface {
	Create(inquiry *domain.Inquiry) error
	FindByID(id string) (*domain.Inquiry, error)

	// FindByAgentID returns the agent's inquiries newest first, each joined
	// with its property's address and unit when a property is linked.
	FindByAgentID(agentID string) ([]*domain.InquiryWithProperty, error)

	CountByAgentID(agentID string) (int64, error)
	Update(inquiry *domain.Inquiry) error
}
