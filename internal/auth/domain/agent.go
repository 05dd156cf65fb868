package domain

import "time"

// Agent is a leasing professional, the tenant unit of the system. Every
// property and inquiry belongs to exactly one agent.
type Agent struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Company   string    `json:"company"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	AgentID   string    `json:"agent_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}
