package dto

import "encoding/json"

// FlexibleID decodes a JSON string or number field into its string form. The
// scheduling system sends appointment identifiers in either representation.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

func (f FlexibleID) String() string {
	return string(f)
}

// TourWebhookPayload is the inbound tour-booking notification. Datetime is an
// opaque string and is stored unparsed.
type TourWebhookPayload struct {
	ID                FlexibleID `json:"id"`
	AppointmentTypeID FlexibleID `json:"appointmentTypeID"`
	Email             string     `json:"email"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Datetime          string     `json:"datetime"`
}

type LogEmailRequest struct {
	PropertyID    string `json:"property_id" binding:"required"`
	ProspectEmail string `json:"prospect_email" binding:"required"`
	ProspectName  string `json:"prospect_name"`
}

// WebhookResponse is always returned with HTTP 200; the scheduling system
// does not replay rejected deliveries, so application failures are reported
// in the body only.
type WebhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type StatsResponse struct {
	EmailsSent       int64   `json:"emails_sent"`
	ToursScheduled   int64   `json:"tours_scheduled"`
	ResponseRate     float64 `json:"response_rate"`
	ActiveProperties int64   `json:"active_properties"`
}
