package dto

import authdomain "leadflow-backend/internal/auth/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" validate:"required,email"`
	FirstName string `json:"first_name" binding:"required" validate:"required,min=2,personname"`
	LastName  string `json:"last_name" binding:"required" validate:"required,min=2,personname"`
	Company   string `json:"company" binding:"required" validate:"required,min=2"`
	Password  string `json:"password" binding:"required" validate:"required,min=8,hasletter,hasdigit"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	TokenType    string            `json:"token_type"`
	Agent        *authdomain.Agent `json:"agent"`
}
