package usecase

import "leadflow-backend/internal/automation/dto"

// AutomationUsecase defines the automation reconciliation engine: webhook
// ingestion, idempotent event recording, and derived-stat maintenance.
type AutomationUsecase interface {
	// HandleTourWebhook validates an inbound tour-booking notification,
	// resolves the property through its external schedule id, appends a tour
	// event and refreshes the owning agent's stats. Retried deliveries with a
	// known appointment id are acknowledged without a second append.
	HandleTourWebhook(payload *dto.TourWebhookPayload) error

	// LogEmailSent appends an email-sent event for a property the calling
	// agent owns, then refreshes that agent's stats.
	LogEmailSent(agentID string, req *dto.LogEmailRequest) error

	// GetStats returns the agent's cached stats, computing them on first
	// read, together with the active property count.
	GetStats(agentID string) (*dto.StatsResponse, error)
}
