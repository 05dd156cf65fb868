package usecase

import (
	"errors"

	"leadflow-backend/internal/property/domain"
	"leadflow-backend/internal/property/dto"
	"leadflow-backend/internal/property/repository"
)

var (
	// ErrPropertyNotFound covers both a missing property and an ownership
	// miss, so responses do not leak other agents' listings.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrScheduleIDTaken is returned when the external schedule identifier is
	// already bound to a different property. The webhook resolver relies on
	// the identifier being globally unique.
	ErrScheduleIDTaken = errors.New("external schedule id already in use")
)

// propertyUsecase implements PropertyUsecase
type propertyUsecase struct {
	propertyRepo repository.PropertyRepository
}

// NewPropertyUsecase creates a new instance of propertyUsecase
func NewPropertyUsecase(propertyRepo repository.PropertyRepository) PropertyUsecase {
	return &propertyUsecase{propertyRepo: propertyRepo}
}

func (u *propertyUsecase) ListProperties(agentID string) ([]*domain.Property, error) {
	return u.propertyRepo.FindByAgentID(agentID)
}

func (u *propertyUsecase) CreateProperty(agentID string, req *dto.PropertyRequest) (*domain.Property, error) {
	if err := u.checkScheduleID(req.ExternalScheduleID, ""); err != nil {
		return nil, err
	}

	property := &domain.Property{
		AgentID:            agentID,
		Address:            req.Address,
		Unit:               req.Unit,
		Rent:               req.Rent,
		Bedrooms:           req.Bedrooms,
		Bathrooms:          req.Bathrooms,
		SquareFeet:         req.SquareFeet,
		Description:        req.Description,
		Amenities:          req.Amenities,
		AvailabilityDate:   req.AvailabilityDate,
		ExternalScheduleID: req.ExternalScheduleID,
	}

	if err := u.propertyRepo.Create(property); err != nil {
		return nil, err
	}

	return property, nil
}

func (u *propertyUsecase) UpdateProperty(agentID, propertyID string, req *dto.PropertyRequest) (*domain.Property, error) {
	property, err := u.findOwned(agentID, propertyID)
	if err != nil {
		return nil, err
	}

	if err := u.checkScheduleID(req.ExternalScheduleID, property.ID); err != nil {
		return nil, err
	}

	property.Address = req.Address
	property.Unit = req.Unit
	property.Rent = req.Rent
	property.Bedrooms = req.Bedrooms
	property.Bathrooms = req.Bathrooms
	property.SquareFeet = req.SquareFeet
	property.Description = req.Description
	property.Amenities = req.Amenities
	property.AvailabilityDate = req.AvailabilityDate
	property.ExternalScheduleID = req.ExternalScheduleID

	if err := u.propertyRepo.Update(property); err != nil {
		return nil, err
	}

	return property, nil
}

func (u *propertyUsecase) UpdateStatus(agentID, propertyID string, req *dto.StatusUpdateRequest) (*domain.Property, error) {
	property, err := u.findOwned(agentID, propertyID)
	if err != nil {
		return nil, err
	}

	property.Status = req.Status
	if req.IsActive != nil {
		property.IsActive = *req.IsActive
	} else {
		property.IsActive = req.Status == "active"
	}

	if err := u.propertyRepo.Update(property); err != nil {
		return nil, err
	}

	return property, nil
}

func (u *propertyUsecase) DeleteProperty(agentID, propertyID string) error {
	if _, err := u.findOwned(agentID, propertyID); err != nil {
		return err
	}
	return u.propertyRepo.Delete(propertyID)
}

func (u *propertyUsecase) CountProperties(agentID string) (total, active int64, err error) {
	total, err = u.propertyRepo.CountByAgentID(agentID)
	if err != nil {
		return 0, 0, err
	}
	active, err = u.propertyRepo.CountActiveByAgentID(agentID)
	if err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

// findOwned loads a property and verifies the caller owns it.
func (u *propertyUsecase) findOwned(agentID, propertyID string) (*domain.Property, error) {
	property, err := u.propertyRepo.FindByID(propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil || property.AgentID != agentID {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// checkScheduleID rejects an external schedule id already bound to another
// property. selfID exempts the property being updated.
func (u *propertyUsecase) checkScheduleID(externalID, selfID string) error {
	if externalID == "" {
		return nil
	}
	existing, err := u.propertyRepo.FindByExternalScheduleID(externalID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrScheduleIDTaken
	}
	return nil
}
