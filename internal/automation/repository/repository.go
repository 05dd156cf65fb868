package repository

import "leadflow-backend/internal/automation/domain"

// AutomationRepository defines data access for the automation event log and
// the derived stats cache. The event log is append-only: there are no update
// or delete operations.
type AutomationRepository interface {
	// AppendEvent writes one event row. It rejects rows that claim a
	// scheduled tour without an appointment id and tour date.
	AppendEvent(event *domain.AutomationEvent) error

	// FindEventByAppointmentID returns the event recorded for an external
	// appointment id, or nil when none exists. Used to drop retried webhook
	// deliveries.
	FindEventByAppointmentID(appointmentID string) (*domain.AutomationEvent, error)

	// CountEvents counts the agent's events of one kind (tourScheduled
	// true/false) across all properties the agent owns.
	CountEvents(agentID string, tourScheduled bool) (int64, error)

	// RefreshStats recomputes the agent's stats row from the event log and
	// upserts it, all inside one transaction. Calling it twice with no new
	// events produces identical counters.
	RefreshStats(agentID string) (*domain.AutomationStats, error)

	// UpsertStats writes the single stats row for stats.AgentID, creating or
	// overwriting it atomically.
	UpsertStats(stats *domain.AutomationStats) error

	FindStatsByAgentID(agentID string) (*domain.AutomationStats, error)
}
