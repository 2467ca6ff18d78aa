package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/designxpo/poonam-cosmetics-backend/internal/app/model"
	"github.com/designxpo/poonam-cosmetics-backend/internal/app/service"
	"github.com/designxpo/poonam-cosmetics-backend/internal/errors"
	"github.com/designxpo/poonam-cosmetics-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	Name    string         `json:"name" binding:"required"`
	Phone   string         `json:"phone" binding:"required"`
	Address *model.Address `json:"address"`
}

// Register creates a new customer account
// POST /api/v1/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration payload", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid registration data")
		return
	}

	user, tokens, err := ctrl.authService.Register(req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		if stderrors.Is(err, service.ErrEmailAlreadyExists) {
			errors.Conflict(c, errors.AuthEmailAlreadyExists, "An account with this email already exists")
			return
		}
		log.Error("Registration failed", err, map[string]interface{}{
			"email": req.Email,
		})
		errors.InternalError(c, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Login authenticates a user
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid login data")
		return
	}

	user, tokens, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, service.ErrInvalidCredentials) {
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthInvalidCredentials, "Invalid email or password")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"email": req.Email,
		})
		errors.InternalError(c, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Logout revokes the current access token
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	authHeader := c.GetHeader("Authorization")
	token := ""
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	}
	if token == "" {
		token, _ = c.Cookie("token")
	}

	if token != "" {
		if err := ctrl.authService.Logout(c.Request.Context(), token); err != nil {
			log.Error("Logout failed", err, nil)
			errors.InternalError(c, "Failed to log out")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Refresh exchanges a refresh token for a new token pair
// POST /api/v1/auth/refresh
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Refresh token is required")
		return
	}

	tokens, err := ctrl.authService.Refresh(req.RefreshToken)
	if err != nil {
		if stderrors.Is(err, service.ErrInvalidRefreshToken) {
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid refresh token")
			return
		}
		errors.InternalError(c, "Failed to refresh session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tokens": tokens,
	})
}

// GetProfile returns the authenticated user's profile
// GET /api/v1/auth/profile
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	user, err := ctrl.authService.GetProfile(userID)
	if err != nil {
		if stderrors.Is(err, service.ErrUserNotFound) {
			errors.NotFound(c, errors.ResourceNotFound, "User not found")
			return
		}
		errors.InternalError(c, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}

// UpdateProfile updates name, phone and delivery address
// PUT /api/v1/auth/profile
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid profile data")
		return
	}

	user, err := ctrl.authService.UpdateProfile(userID, service.ProfileUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrNamePhoneRequired):
			errors.BadRequest(c, errors.ValidationRequired, "Name and phone are required")
		case stderrors.Is(err, service.ErrIncompleteAddress):
			errors.BadRequest(c, errors.ValidationAddressFields, "Address requires street, city, state and pincode")
		case stderrors.Is(err, service.ErrUserNotFound):
			errors.NotFound(c, errors.ResourceNotFound, "User not found")
		default:
			log.Error("Profile update failed", err, map[string]interface{}{
				"user_id": userID,
			})
			errors.InternalError(c, "Failed to update profile")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}
