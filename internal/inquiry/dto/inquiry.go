package dto

type InquiryRequest struct {
	PropertyID    string `json:"property_id"`
	ProspectName  string `json:"prospect_name" binding:"required"`
	ProspectEmail string `json:"prospect_email" binding:"required,email"`
	ProspectPhone string `json:"prospect_phone"`
	Message       string `json:"message"`
	Source        string `json:"source"`
}

type InquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
