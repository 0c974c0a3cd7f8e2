package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/middleware"
	"github.com/yashalsharma/kirayadoor-backend/internal/service"
)

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	propertyService *service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// PropertyRequest represents the create/update property request body
type PropertyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID        int32  `json:"id"`
	OwnerID   int32  `json:"ownerId"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	HasPhoto  bool   `json:"hasPhoto"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateProperty handles POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req PropertyRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	property, err := h.propertyService.CreateProperty(ownerID, service.CreatePropertyInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 255 characters or less"},
			})
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Msg("Failed to create property")
		return NewInternalError(c, "Failed to create property")
	}

	log.Info().Int32("owner_id", ownerID).Int32("property_id", property.ID).Str("name", property.Name).Msg("Property created")
	return c.JSON(http.StatusCreated, toPropertyResponse(property))
}

// GetProperties handles GET /api/v1/properties
func (h *PropertyHandler) GetProperties(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	properties, err := h.propertyService.ListProperties(ownerID)
	if err != nil {
		log.Error().Err(err).Int32("owner_id", ownerID).Msg("Failed to get properties")
		return NewInternalError(c, "Failed to get properties")
	}

	response := make([]PropertyResponse, len(properties))
	for i, property := range properties {
		response[i] = toPropertyResponse(property)
	}
	return c.JSON(http.StatusOK, response)
}

// GetProperty handles GET /api/v1/properties/:id
func (h *PropertyHandler) GetProperty(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid property ID", nil)
	}

	property, err := h.propertyService.GetProperty(ownerID, int32(id))
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Property not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("property_id", id).Msg("Failed to get property")
		return NewInternalError(c, "Failed to get property")
	}

	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// UpdateProperty handles PUT /api/v1/properties/:id
func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid property ID", nil)
	}

	var req PropertyRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	property, err := h.propertyService.UpdateProperty(ownerID, int32(id), service.CreatePropertyInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Property not found")
		}
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 255 characters or less"},
			})
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("property_id", id).Msg("Failed to update property")
		return NewInternalError(c, "Failed to update property")
	}

	log.Info().Int32("owner_id", ownerID).Int32("property_id", property.ID).Msg("Property updated")
	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// DeleteProperty handles DELETE /api/v1/properties/:id
func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid property ID", nil)
	}

	if err := h.propertyService.DeleteProperty(ownerID, int32(id)); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Property not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("property_id", id).Msg("Failed to delete property")
		return NewInternalError(c, "Failed to delete property")
	}

	log.Info().Int32("owner_id", ownerID).Int("property_id", id).Msg("Property deleted")
	return c.NoContent(http.StatusNoContent)
}

func toPropertyResponse(property *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:        property.ID,
		OwnerID:   property.OwnerID,
		Name:      property.Name,
		Address:   property.Address,
		HasPhoto:  property.PhotoPath != nil,
		CreatedAt: property.CreatedAt.Format(time.RFC3339),
		UpdatedAt: property.UpdatedAt.Format(time.RFC3339),
	}
}
