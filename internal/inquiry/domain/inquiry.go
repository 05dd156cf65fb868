package domain

import "time"

// Inquiry is a prospect contact recorded against an agent, optionally tied to
// one of their properties. It is informational only; the automation engine
// never touches it.
type Inquiry struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	AgentID       string    `json:"agent_id" gorm:"index;not null"`
	PropertyID    string    `json:"property_id,omitempty" gorm:"index"`
	ProspectName  string    `json:"prospect_name"`
	ProspectEmail string    `json:"prospect_email"`
	ProspectPhone string    `json:"prospect_phone"`
	Message       string    `json:"message"`
	Source        string    `json:"source"`
	Status        string    `json:"status" gorm:"default:new"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Inquiry) TableName() string {
	return "agent_inquiries"
}

// InquiryWithProperty is an inquiry joined with its property's address fields
// for list views.
type InquiryWithProperty struct {
	Inquiry
	PropertyAddress string `json:"property_address"`
	PropertyUnit    string `json:"property_unit"`
}
