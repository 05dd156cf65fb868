package usecase

import (
	"leadflow-backend/internal/inquiry/domain"
	"leadflow-backend/internal/inquiry/dto"
)

// InquiryUsecase defines the interface for inquiry business logic
type InquiryUsecase interface {
	ListInquiries(agentID string) ([]*domain.InquiryWithProperty, error)
	CreateInquiry(agentID string, req *dto.InquiryRequest) (*domain.Inquiry, error)
	UpdateStatus(agentID, inquiryID, status string) (*domain.Inquiry, error)
	CountInquiries(agentID string) (int64, error)
}
