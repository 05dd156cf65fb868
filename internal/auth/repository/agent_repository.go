package repository

import (
	"errors"
	"time"

	authdomain "leadflow-backend/internal/auth/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// agentRepository implements AgentRepository using GORM
type agentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new instance of agentRepository
func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{
		db: db,
	}
}

func (r *agentRepository) Create(agent *authdomain.Agent) error {
	agent.ID = uuid.New().String()
	agent.IsActive = true
	agent.CreatedAt = time.Now()
	agent.UpdatedAt = time.Now()
	return r.db.Create(agent).Error
}

func (r *agentRepository) FindByEmail(email string) (*authdomain.Agent, error) {
	var agent authdomain.Agent
	err := r.db.Where("email = ?", email).First(&agent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepository) FindByID(id string) (*authdomain.Agent, error) {
	var agent authdomain.Agent
	err := r.db.Where("id = ?", id).First(&agent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepository) Update(agent *authdomain.Agent) error {
	agent.UpdatedAt = time.Now()
	return r.db.Save(agent).Error
}

// SaveRefreshToken stores a new refresh token for the agent. Each device keeps
// its own token; only expired tokens are cleaned up to prevent DB bloat.
func (r *agentRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("agent_id = ? AND expires_at < ?", token.AgentID, time.Now()).Delete(&authdomain.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (r *agentRepository) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	var refreshToken authdomain.RefreshToken
	err := r.db.Where("token = ?", token).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *agentRepository) DeleteRefreshToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&authdomain.RefreshToken{}).Error
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
