package repository

import (
	"errors"
	"time"

	"leadflow-backend/internal/property/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPropertyRepository implements PropertyRepository using GORM
type gormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GORM-based PropertyRepository
func NewGormPropertyRepository(db *gorm.DB) PropertyRepository {
	return &gormPropertyRepository{db: db}
}

func (r *gormPropertyRepository) Create(property *domain.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	if property.Status == "" {
		property.Status = "active"
	}
	property.IsActive = true
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()
	return r.db.Create(property).Error
}

func (r *gormPropertyRepository) FindByID(id string) (*domain.Property, error) {
	var property domain.Property
	err := r.db.Where("id = ?", id).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

func (r *gormPropertyRepository) FindByAgentID(agentID string) ([]*domain.Property, error) {
	var properties []*domain.Property
	err := r.db.Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&properties).Error
	return properties, err
}

func (r *gormPropertyRepository) FindByExternalScheduleID(externalID string) (*domain.Property, error) {
	var property domain.Property
	err := r.db.Where("external_schedule_id = ?", externalID).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

func (r *gormPropertyRepository) CountByAgentID(agentID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Property{}).Where("agent_id = ?", agentID).Count(&count).Error
	return count, err
}

func (r *gormPropertyRepository) CountActiveByAgentID(agentID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Property{}).
		Where("agent_id = ? AND is_active = ?", agentID, true).
		Count(&count).Error
	return count, err
}

func (r *gormPropertyRepository) Update(property *domain.Property) error {
	property.UpdatedAt = time.Now()
	return r.db.Save(property).Error
}

func (r *gormPropertyRepository) Delete(id string) error {
	return r.db.Delete(&domain.Property{}, "id = ?", id).Error
}
