package repository

import (
	"errors"
	"time"

	"leadflow-backend/internal/automation/domain"
	propertydomain "leadflow-backend/internal/property/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrIncompleteTourEvent guards the log invariant: a tour row must carry the
// external appointment id and the tour date.
var ErrIncompleteTourEvent = errors.New("tour event requires appointment id and tour date")

// gormAutomationRepository implements AutomationRepository using GORM
type gormAutomationRepository struct {
	db *gorm.DB
}

// NewGormAutomationRepository creates a new GORM-based AutomationRepository
func NewGormAutomationRepository(db *gorm.DB) AutomationRepository {
	return &gormAutomationRepository{db: db}
}

func (r *gormAutomationRepository) AppendEvent(event *domain.AutomationEvent) error {
	if event.TourScheduled && (event.AppointmentID == "" || event.TourDate == nil || *event.TourDate == "") {
		return ErrIncompleteTourEvent
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.EmailSentDate.IsZero() {
		event.EmailSentDate = time.Now()
	}
	event.CreatedAt = time.Now()
	return r.db.Create(event).Error
}

func (r *gormAutomationRepository) FindEventByAppointmentID(appointmentID string) (*domain.AutomationEvent, error) {
	var event domain.AutomationEvent
	err := r.db.Where("appointment_id = ?", appointmentID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *gormAutomationRepository) CountEvents(agentID string, tourScheduled bool) (int64, error) {
	return countEvents(r.db, agentID, tourScheduled)
}

// RefreshStats re-derives the agent's counters from the event log and writes
// the stats row in the same transaction, so an interleaved append is either
// fully counted or not counted at all.
func (r *gormAutomationRepository) RefreshStats(agentID string) (*domain.AutomationStats, error) {
	stats := &domain.AutomationStats{AgentID: agentID}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		emails, err := countEvents(tx, agentID, false)
		if err != nil {
			return err
		}
		tours, err := countEvents(tx, agentID, true)
		if err != nil {
			return err
		}

		stats.EmailsSent = emails
		stats.ToursScheduled = tours
		if emails > 0 {
			stats.ResponseRate = float64(tours) / float64(emails) * 100
		} else {
			stats.ResponseRate = 0.0
		}

		return upsertStats(tx, stats)
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *gormAutomationRepository) UpsertStats(stats *domain.AutomationStats) error {
	return upsertStats(r.db, stats)
}

func (r *gormAutomationRepository) FindStatsByAgentID(agentID string) (*domain.AutomationStats, error) {
	var stats domain.AutomationStats
	err := r.db.Where("agent_id = ?", agentID).First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

// countEvents counts event rows of one kind under the agent's properties.
func countEvents(tx *gorm.DB, agentID string, tourScheduled bool) (int64, error) {
	var count int64
	owned := tx.Model(&propertydomain.Property{}).Select("id").Where("agent_id = ?", agentID)
	err := tx.Model(&domain.AutomationEvent{}).
		Where("tour_scheduled = ? AND property_id IN (?)", tourScheduled, owned).
		Count(&count).Error
	return count, err
}

// upsertStats writes the one-row-per-agent cache with ON CONFLICT semantics:
// create if absent, overwrite if present.
func upsertStats(tx *gorm.DB, stats *domain.AutomationStats) error {
	if stats.ID == "" {
		stats.ID = uuid.New().String()
	}
	stats.LastUpdated = time.Now()
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "agent_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"emails_sent", "tours_scheduled", "response_rate", "last_updated"}),
	}).Create(stats).Error
}
