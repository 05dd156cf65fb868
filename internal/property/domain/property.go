package domain

import "time"

// Property is a rental listing owned by exactly one agent.
// ExternalScheduleID is the opaque identifier assigned by the external
// scheduling system; inbound tour webhooks are joined to a property through
// it, so it must be unique across all agents when set.
type Property struct {
	ID                 string    `json:"id" gorm:"primaryKey"`
	AgentID            string    `json:"agent_id" gorm:"index;not null"`
	Address            string    `json:"address" gorm:"not null"`
	Unit               string    `json:"unit"`
	Rent               float64   `json:"rent"`
	Bedrooms           int       `json:"bedrooms"`
	Bathrooms          float64   `json:"bathrooms"`
	SquareFeet         int       `json:"square_feet"`
	Description        string    `json:"description"`
	Amenities          string    `json:"amenities"`
	AvailabilityDate   string    `json:"availability_date"`
	ExternalScheduleID string    `json:"external_schedule_id" gorm:"index"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	Status             string    `json:"status" gorm:"default:active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Property) TableName() string {
	return "agent_properties"
}
