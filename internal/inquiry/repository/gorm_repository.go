package repository

import (
	"errors"
	"time"

	"leadflow-backend/internal/inquiry/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormInquiryRepository implements InquiryRepository using GORM
type gormInquiryRepository struct {
	db *gorm.DB
}

// NewGormInquiryRepository creates a new GORM-based InquiryRepository
func NewGormInquiryRepository(db *gorm.DB) InquiryRepository {
	return &gormInquiryRepository{db: db}
}

func (r *gormInquiryRepository) Create(inquiry *domain.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	if inquiry.Status == "" {
		inquiry.Status = "new"
	}
	inquiry.CreatedAt = time.Now()
	inquiry.UpdatedAt = time.Now()
	return r.db.Create(inquiry).Error
}

func (r *gormInquiryRepository) FindByID(id string) (*domain.Inquiry, error) {
	var inquiry domain.Inquiry
	err := r.db.Where("id = ?", id).First(&inquiry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *gormInquiryRepository) FindByAgentID(agentID string) ([]*domain.InquiryWithProperty, error) {
	var inquiries []*domain.InquiryWithProperty
	err := r.db.Table("agent_inquiries").
		Select("agent_inquiries.*, agent_properties.address AS property_address, agent_properties.unit AS property_unit").
		Joins("LEFT JOIN agent_properties ON agent_inquiries.property_id = agent_properties.id").
		Where("agent_inquiries.agent_id = ?", agentID).
		Order("agent_inquiries.created_at DESC").
		Scan(&inquiries).Error
	return inquiries, err
}

func (r *gormInquiryRepository) CountByAgentID(agentID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Inquiry{}).Where("agent_id = ?", agentID).Count(&count).Error
	return count, err
}

func (r *gormInquiryRepository) Update(inquiry *domain.Inquiry) error {
	inquiry.UpdatedAt = time.Now()
	return r.db.Save(inquiry).Error
}
