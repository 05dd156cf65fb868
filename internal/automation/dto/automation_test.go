package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexibleIDDecoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"string", `{"appointmentTypeID": "ABC123"}`, "ABC123"},
		{"number", `{"appointmentTypeID": 5551212}`, "5551212"},
		{"null", `{"appointmentTypeID": null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload TourWebhookPayload
			if err := json.Unmarshal([]byte(tt.in), &payload); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := payload.AppointmentTypeID.String(); got != tt.want {
				t.Errorf("appointmentTypeID = %q, want %q", got, tt.want)
			}
		})
	}
}
