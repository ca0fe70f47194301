package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hrmslite/hrms-lite-api/internal/auth"
	"github.com/hrmslite/hrms-lite-api/internal/dto"
	apierrors "github.com/hrmslite/hrms-lite-api/internal/errors"
	"github.com/hrmslite/hrms-lite-api/internal/middleware"
	"github.com/hrmslite/hrms-lite-api/internal/models"
	"github.com/hrmslite/hrms-lite-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	jwtSecret   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtSecret:   jwtSecret,
	}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string      `json:"name"`
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	apierrors.Success(c, http.StatusCreated, "Registration successful! You can now login.", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

// Login verifies credentials and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	token, err := auth.Issue(h.jwtSecret, user)
	if err != nil {
		if errors.Is(err, auth.ErrNoSigningKey) {
			apierrors.ServerConfiguration(c)
			return
		}
		apierrors.InternalError(c, "Login failed. Please try again later.")
		return
	}

	apierrors.Success(c, http.StatusOK, "Login successful! Welcome back.", gin.H{
		"token": token,
		"user":  dto.ToUserDTO(*user),
	})
}

// Profile returns the caller's own account.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Invalid authentication. Please login again.")
		return
	}

	userID, err := uuid.Parse(claims.ID)
	if err != nil {
		apierrors.Unauthorized(c, "Invalid authentication. Please login again.")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, "", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

// ListUsers returns every account, sans password.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		respondAuthError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, "", gin.H{
		"count": len(users),
		"users": dto.ToUserDTOs(users),
	})
}

// ChangePassword verifies the current password and sets a new one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}

	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Invalid authentication. Please login again.")
		return
	}
	userID, err := uuid.Parse(claims.ID)
	if err != nil {
		apierrors.Unauthorized(c, "Invalid authentication. Please login again.")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondAuthError(c, err)
		return
	}

	apierrors.Success(c, http.StatusOK, "Password changed successfully", nil)
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRegistrationFields),
		errors.Is(err, services.ErrMissingCredentials),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrPasswordChangeFields),
		errors.Is(err, services.ErrNewPasswordTooShort):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrWrongPassword):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
