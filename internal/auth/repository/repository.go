package repository

import authdomain "leadflow-backend/internal/auth/domain"

// AgentRepository defines the interface for agent data access
type AgentRepository interface {
	Create(agent *authdomain.Agent) error
	FindByEmail(email string) (*authdomain.Agent, error)
	FindByID(id string) (*authdomain.Agent, error)
	Update(agent *authdomain.Agent) error

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error
}
