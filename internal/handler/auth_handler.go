package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/middleware"
	"github.com/yashalsharma/kirayadoor-backend/internal/service"
)

// AuthHandler handles OTP login and profile requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RequestOTPRequest represents the OTP request body
type RequestOTPRequest struct {
	Phone string `json:"phone"`
}

// RequestOTPResponse represents the OTP request response
type RequestOTPResponse struct {
	AttemptID string `json:"attemptId"`
}

// VerifyOTPRequest represents the OTP verification body
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// VerifyOTPResponse represents a successful login
type VerifyOTPResponse struct {
	Token string        `json:"token"`
	Owner *domain.Owner `json:"owner"`
}

// UpdateProfileRequest represents the profile update body
type UpdateProfileRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// RequestOTP handles POST /api/v1/auth/otp/request
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	attemptID, err := h.authService.RequestOTP(req.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPhone) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "phone", Message: "Must be 8-15 digits with an optional leading +"},
			})
		}
		log.Error().Err(err).Msg("Failed to issue OTP")
		return NewInternalError(c, "Failed to send login code")
	}

	return c.JSON(http.StatusOK, RequestOTPResponse{AttemptID: attemptID.String()})
}

// VerifyOTP handles POST /api/v1/auth/otp/verify
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	token, owner, err := h.authService.VerifyOTP(req.Phone, req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOTP) {
			return NewUnauthorizedError(c, "Invalid or expired login code")
		}
		log.Error().Err(err).Msg("Failed to verify OTP")
		return NewInternalError(c, "Failed to verify login code")
	}

	log.Info().Int32("owner_id", owner.ID).Msg("Owner logged in")
	return c.JSON(http.StatusOK, VerifyOTPResponse{Token: token, Owner: owner})
}

// GetProfile handles GET /api/v1/profile
func (h *AuthHandler) GetProfile(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	owner, err := h.authService.GetOwner(ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return NewNotFoundError(c, "Owner not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Msg("Failed to get profile")
		return NewInternalError(c, "Failed to get profile")
	}

	return c.JSON(http.StatusOK, owner)
}

// UpdateProfile handles PUT /api/v1/profile
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	owner, err := h.authService.UpdateProfile(ownerID, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Msg("Failed to update profile")
		return NewInternalError(c, "Failed to update profile")
	}

	log.Info().Int32("owner_id", ownerID).Msg("Profile updated")
	return c.JSON(http.StatusOK, owner)
}
