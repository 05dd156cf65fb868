package domain

import "time"

// AutomationEvent is one row in the append-only automation log. Two kinds of
// rows share the schema: "email sent" rows (TourScheduled=false, no
// appointment id) and "tour booked" rows (TourScheduled=true with the
// external appointment id and tour date populated). Rows are never updated or
// deleted; corrections append new rows.
type AutomationEvent struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	PropertyID        string    `json:"property_id" gorm:"index;not null"`
	ProspectEmail     string    `json:"prospect_email"`
	ProspectName      string    `json:"prospect_name"`
	EmailSentDate     time.Time `json:"email_sent_date"`
	AppointmentID     string    `json:"appointment_id,omitempty" gorm:"index"`
	TourScheduled     bool      `json:"tour_scheduled" gorm:"default:false"`
	TourDate          *string   `json:"tour_date,omitempty"`
	AppointmentTypeID string    `json:"appointment_type_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func (AutomationEvent) TableName() string {
	return "email_automation_tracking"
}
