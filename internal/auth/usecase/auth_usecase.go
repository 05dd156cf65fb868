package usecase

import (
	"errors"
	"strings"
	"time"

	authdomain "leadflow-backend/internal/auth/domain"
	authdto "leadflow-backend/internal/auth/dto"
	"leadflow-backend/internal/auth/repository"
	"leadflow-backend/pkg/config"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for any login failure so the response
// never reveals whether the email exists.
var ErrInvalidCredentials = errors.New("invalid email or password")

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	agentRepo repository.AgentRepository
	validate  *validator.Validate
	config    *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(agentRepo repository.AgentRepository, validate *validator.Validate, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		agentRepo: agentRepo,
		validate:  validate,
		config:    cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Company = strings.TrimSpace(req.Company)

	if err := u.validate.Struct(req); err != nil {
		return nil, validationMessage(err)
	}

	existing, err := u.agentRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	agent := &authdomain.Agent{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
	}

	if err := u.agentRepo.Create(agent); err != nil {
		return nil, err
	}

	return u.generateTokens(agent)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	agent, err := u.agentRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if agent == nil || !agent.IsActive {
		return nil, ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, agent.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.generateTokens(agent)
}

func (u *authUsecase) RefreshToken(refreshToken string) (*authdto.TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	// Check if token exists in repository
	storedToken, err := u.agentRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if storedToken == nil || storedToken.ExpiresAt.Before(time.Now()) {
		return nil, errors.New("refresh token expired")
	}

	agentID, ok := claims["agent_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	agent, err := u.agentRepo.FindByID(agentID)
	if err != nil {
		return nil, err
	}

	if agent == nil || !agent.IsActive {
		return nil, errors.New("agent not found")
	}

	// Rotate: the old token is revoked before new ones are issued
	if err := u.agentRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, err
	}

	return u.generateTokens(agent)
}

func (u *authUsecase) Logout(refreshToken string) error {
	return u.agentRepo.DeleteRefreshToken(refreshToken)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.Agent, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	agentID, ok := claims["agent_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	agent, err := u.agentRepo.FindByID(agentID)
	if err != nil {
		return nil, err
	}

	if agent == nil || !agent.IsActive {
		return nil, errors.New("agent not found")
	}

	return agent, nil
}

func (u *authUsecase) generateTokens(agent *authdomain.Agent) (*authdto.TokenResponse, error) {
	accessToken, err := u.generateAccessToken(agent)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.generateRefreshToken(agent)
	if err != nil {
		return nil, err
	}

	refreshTokenEntity := &authdomain.RefreshToken{
		Token:     refreshToken,
		AgentID:   agent.ID,
		ExpiresAt: time.Now().Add(u.config.JWTRefreshExpiry),
	}
	if err := u.agentRepo.SaveRefreshToken(refreshTokenEntity); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		Agent:        agent,
	}, nil
}

func (u *authUsecase) generateAccessToken(agent *authdomain.Agent) (string, error) {
	claims := jwt.MapClaims{
		"agent_id": agent.ID,
		"email":    agent.Email,
		"exp":      time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) generateRefreshToken(agent *authdomain.Agent) (string, error) {
	claims := jwt.MapClaims{
		"agent_id": agent.ID,
		"token_id": uuid.New().String(),
		"exp":      time.Now().Add(u.config.JWTRefreshExpiry).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

// validationMessage turns the first field error into a client-facing message.
func validationMessage(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Email":
		return errors.New("a valid email address is required")
	case "FirstName", "LastName":
		if fe.Tag() == "personname" {
			return errors.New("name contains invalid characters")
		}
		return errors.New("name must be at least 2 characters long")
	case "Company":
		return errors.New("company name must be at least 2 characters long")
	case "Password":
		switch fe.Tag() {
		case "min":
			return errors.New("password must be at least 8 characters long")
		case "hasletter":
			return errors.New("password must contain at least one letter")
		case "hasdigit":
			return errors.New("password must contain at least one number")
		}
		return errors.New("password is required")
	}
	return err
}
