package delivery

import (
	"errors"
	"net/http"

	authdomain "leadflow-backend/internal/auth/domain"
	authdto "leadflow-backend/internal/auth/dto"
	"leadflow-backend/internal/auth/usecase"
	"leadflow-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles agent registration and session HTTP requests
type AuthHandler struct {
	authUsecase     usecase.AuthUsecase
	registerLimiter ratelimit.Limiter
	loginLimiter    ratelimit.Limiter
}

// NewAuthHandler creates a new AuthHandler. The limiters are keyed by client
// IP and throttle credential-guessing and bulk signups.
func NewAuthHandler(authUsecase usecase.AuthUsecase, registerLimiter, loginLimiter ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{
		authUsecase:     authUsecase,
		registerLimiter: registerLimiter,
		loginLimiter:    loginLimiter,
	}
}

// Register creates a new agent account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	if !h.registerLimiter.Allow("register_" + c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many registration attempts"})
		return
	}

	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.authUsecase.Register(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tokens)
}

// Login authenticates an agent
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.loginLimiter.Allow("login_" + c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}

	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// RefreshToken exchanges a stored refresh token for a new token pair
// POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.authUsecase.RefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Logout revokes the refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.Logout(req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the authenticated agent
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	agent, ok := c.MustGet("agent").(*authdomain.Agent)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"agent": agent})
}
