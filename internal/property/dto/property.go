package dto

type PropertyRequest struct {
	Address            string  `json:"address" binding:"required"`
	Unit               string  `json:"unit"`
	Rent               float64 `json:"rent"`
	Bedrooms           int     `json:"bedrooms"`
	Bathrooms          float64 `json:"bathrooms"`
	SquareFeet         int     `json:"square_feet"`
	Description        string  `json:"description"`
	Amenities          string  `json:"amenities"`
	AvailabilityDate   string  `json:"availability_date"`
	ExternalScheduleID string  `json:"external_schedule_id"`
}

type StatusUpdateRequest struct {
	Status   string `json:"status" binding:"required"`
	IsActive *bool  `json:"is_active"`
}
