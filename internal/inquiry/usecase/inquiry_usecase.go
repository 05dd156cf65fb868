package usecase

import (
	"errors"

	"leadflow-backend/internal/inquiry/domain"
	"leadflow-backend/internal/inquiry/dto"
	"leadflow-backend/internal/inquiry/repository"
	propertyrepo "leadflow-backend/internal/property/repository"
)

var (
	ErrInquiryNotFound = errors.New("inquiry not found")

	// ErrUnknownProperty is returned when an inquiry references a property id
	// the calling agent does not own.
	ErrUnknownProperty = errors.New("unknown property")
)

// inquiryUsecase implements InquiryUsecase
type inquiryUsecase struct {
	inquiryRepo  repository.InquiryRepository
	propertyRepo propertyrepo.PropertyRepository
}

// NewInquiryUsecase creates a new instance of inquiryUsecase
func NewInquiryUsecase(inquiryRepo repository.InquiryRepository, propertyRepo propertyrepo.PropertyRepository) InquiryUsecase {
	return &inquiryUsecase{
		inquiryRepo:  inquiryRepo,
		propertyRepo: propertyRepo,
	}
}

func (u *inquiryUsecase) ListInquiries(agentID string) ([]*domain.InquiryWithProperty, error) {
	return u.inquiryRepo.FindByAgentID(agentID)
}

func (u *inquiryUsecase) CreateInquiry(agentID string, req *dto.InquiryRequest) (*domain.Inquiry, error) {
	if req.PropertyID != "" {
		property, err := u.propertyRepo.FindByID(req.PropertyID)
		if err != nil {
			return nil, err
		}
		if property == nil || property.AgentID != agentID {
			return nil, ErrUnknownProperty
		}
	}

	inquiry := &domain.Inquiry{
		AgentID:       agentID,
		PropertyID:    req.PropertyID,
		ProspectName:  req.ProspectName,
		ProspectEmail: req.ProspectEmail,
		ProspectPhone: req.ProspectPhone,
		Message:       req.Message,
		Source:        req.Source,
	}

	if err := u.inquiryRepo.Create(inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

func (u *inquiryUsecase) CountInquiries(agentID string) (int64, error) {
	return u.inquiryRepo.CountByAgentID(agentID)
}

func (u *inquiryUsecase) UpdateStatus(agentID, inquiryID, status string) (*domain.Inquiry, error) {
	inquiry, err := u.inquiryRepo.FindByID(inquiryID)
	if err != nil {
		return nil, err
	}
	if inquiry == nil || inquiry.AgentID != agentID {
		return nil, ErrInquiryNotFound
	}

	inquiry.Status = status
	if err := u.inquiryRepo.Update(inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}
