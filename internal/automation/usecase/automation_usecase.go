package usecase

import (
	"errors"
	"log/slog"
	"math"
	"strings"

	"leadflow-backend/internal/automation/domain"
	"leadflow-backend/internal/automation/dto"
	"leadflow-backend/internal/automation/repository"
	propertyrepo "leadflow-backend/internal/property/repository"
)

var (
	// ErrInvalidPayload marks a notification without an appointment type id.
	// Nothing is written.
	ErrInvalidPayload = errors.New("no appointment type ID")

	// ErrPropertyNotFound marks a resolver miss: no property carries the
	// notification's external schedule id. Nothing is written.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrNotPropertyOwner marks a cross-tenant write attempt on the
	// email-sent path. Nothing is written.
	ErrNotPropertyOwner = errors.New("property does not belong to this agent")
)

// automationUsecase implements AutomationUsecase
type automationUsecase struct {
	automationRepo repository.AutomationRepository
	propertyRepo   propertyrepo.PropertyRepository
	logger         *slog.Logger
}

// NewAutomationUsecase creates a new instance of automationUsecase
func NewAutomationUsecase(automationRepo repository.AutomationRepository, propertyRepo propertyrepo.PropertyRepository, logger *slog.Logger) AutomationUsecase {
	return &automationUsecase{
		automationRepo: automationRepo,
		propertyRepo:   propertyRepo,
		logger:         logger,
	}
}

func (u *automationUsecase) HandleTourWebhook(payload *dto.TourWebhookPayload) error {
	appointmentTypeID := payload.AppointmentTypeID.String()
	if appointmentTypeID == "" {
		return ErrInvalidPayload
	}

	property, err := u.propertyRepo.FindByExternalScheduleID(appointmentTypeID)
	if err != nil {
		return err
	}
	if property == nil {
		u.logger.Warn("no property for external schedule id",
			"appointment_type_id", appointmentTypeID,
		)
		return ErrPropertyNotFound
	}

	// The scheduling system may retry a delivery; the appointment id is the
	// dedup key, so a known id is acknowledged without a second append.
	appointmentID := payload.ID.String()
	if appointmentID != "" {
		existing, err := u.automationRepo.FindEventByAppointmentID(appointmentID)
		if err != nil {
			return err
		}
		if existing != nil {
			u.logger.Info("duplicate tour notification ignored",
				"appointment_id", appointmentID,
				"property_id", property.ID,
			)
			return nil
		}
	}

	prospectName := strings.TrimSpace(payload.FirstName + " " + payload.LastName)
	tourDate := payload.Datetime

	event := &domain.AutomationEvent{
		PropertyID:        property.ID,
		ProspectEmail:     payload.Email,
		ProspectName:      prospectName,
		AppointmentID:     appointmentID,
		TourScheduled:     true,
		TourDate:          &tourDate,
		AppointmentTypeID: appointmentTypeID,
	}

	if err := u.automationRepo.AppendEvent(event); err != nil {
		return err
	}

	if _, err := u.automationRepo.RefreshStats(property.AgentID); err != nil {
		return err
	}

	u.logger.Info("tour scheduled",
		"prospect", prospectName,
		"address", property.Address,
		"appointment_id", appointmentID,
	)

	return nil
}

func (u *automationUsecase) LogEmailSent(agentID string, req *dto.LogEmailRequest) error {
	property, err := u.propertyRepo.FindByID(req.PropertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return ErrPropertyNotFound
	}
	if property.AgentID != agentID {
		return ErrNotPropertyOwner
	}

	event := &domain.AutomationEvent{
		PropertyID:    property.ID,
		ProspectEmail: req.ProspectEmail,
		ProspectName:  req.ProspectName,
		TourScheduled: false,
	}

	if err := u.automationRepo.AppendEvent(event); err != nil {
		return err
	}

	_, err = u.automationRepo.RefreshStats(agentID)
	return err
}

func (u *automationUsecase) GetStats(agentID string) (*dto.StatsResponse, error) {
	stats, err := u.automationRepo.FindStatsByAgentID(agentID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats, err = u.automationRepo.RefreshStats(agentID)
		if err != nil {
			return nil, err
		}
	}

	activeProperties, err := u.propertyRepo.CountActiveByAgentID(agentID)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		EmailsSent:       stats.EmailsSent,
		ToursScheduled:   stats.ToursScheduled,
		ResponseRate:     math.Round(stats.ResponseRate*10) / 10,
		ActiveProperties: activeProperties,
	}, nil
}
