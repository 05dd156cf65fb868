package domain

import "time"

// AutomationStats is the cached per-agent summary of the automation log,
// exactly one row per agent. It is a deterministic function of the agent's
// AutomationEvent rows and can be recomputed from scratch at any time.
type AutomationStats struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	AgentID        string    `json:"agent_id" gorm:"uniqueIndex;not null"`
	EmailsSent     int64     `json:"emails_sent"`
	ToursScheduled int64     `json:"tours_scheduled"`
	ResponseRate   float64   `json:"response_rate"`
	LastUpdated    time.Time `json:"last_updated"`
}

func (AutomationStats) TableName() string {
	return "automation_stats"
}
