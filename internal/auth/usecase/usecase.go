package usecase

import (
	authdomain "leadflow-backend/internal/auth/domain"
	authdto "leadflow-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for agent authentication logic
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.Agent, error)
}
