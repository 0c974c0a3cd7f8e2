package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/middleware"
	"github.com/yashalsharma/kirayadoor-backend/internal/service"
)

// UnitHandler handles unit-related HTTP requests
type UnitHandler struct {
	unitService *service.UnitService
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(unitService *service.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// UnitRequest represents the create/update unit request body
type UnitRequest struct {
	Label string  `json:"label"`
	Notes *string `json:"notes,omitempty"`
}

// CreateUnit handles POST /api/v1/properties/:id/units
func (h *UnitHandler) CreateUnit(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid property ID", nil)
	}

	var req UnitRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	unit, err := h.unitService.CreateUnit(ownerID, service.CreateUnitInput{
		PropertyID: int32(propertyID),
		Label:      req.Label,
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return NewNotFoundError(c, "Property not found")
		}
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "label", Message: "Label is required"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "label", Message: "Label must be 255 characters or less"},
			})
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("property_id", propertyID).Msg("Failed to create unit")
		return NewInternalError(c, "Failed to create unit")
	}

	log.Info().Int32("owner_id", ownerID).Int32("unit_id", unit.ID).Str("label", unit.Label).Msg("Unit created")
	return c.JSON(http.StatusCreated, unit)
}

// GetUnits handles GET /api/v1/properties/:id/units
func (h *UnitHandler) GetUnits(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	propertyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid property ID", nil)
	}

	units, err := h.unitService.ListUnits(ownerID, int32(propertyID))
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return NewNotFoundError(c, "Property not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("property_id", propertyID).Msg("Failed to get units")
		return NewInternalError(c, "Failed to get units")
	}

	return c.JSON(http.StatusOK, units)
}

// GetUnit handles GET /api/v1/units/:id
func (h *UnitHandler) GetUnit(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid unit ID", nil)
	}

	unit, err := h.unitService.GetUnit(ownerID, int32(id))
	if err != nil {
		if errors.Is(err, domain.ErrUnitNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Unit not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("unit_id", id).Msg("Failed to get unit")
		return NewInternalError(c, "Failed to get unit")
	}

	return c.JSON(http.StatusOK, unit)
}

// UpdateUnit handles PUT /api/v1/units/:id
func (h *UnitHandler) UpdateUnit(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid unit ID", nil)
	}

	var req UnitRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	unit, err := h.unitService.UpdateUnit(ownerID, int32(id), req.Label, req.Notes)
	if err != nil {
		if errors.Is(err, domain.ErrUnitNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Unit not found")
		}
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "label", Message: "Label is required"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "label", Message: "Label must be 255 characters or less"},
			})
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("unit_id", id).Msg("Failed to update unit")
		return NewInternalError(c, "Failed to update unit")
	}

	log.Info().Int32("owner_id", ownerID).Int32("unit_id", unit.ID).Msg("Unit updated")
	return c.JSON(http.StatusOK, unit)
}

// DeleteUnit handles DELETE /api/v1/units/:id
func (h *UnitHandler) DeleteUnit(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid unit ID", nil)
	}

	if err := h.unitService.DeleteUnit(ownerID, int32(id)); err != nil {
		if errors.Is(err, domain.ErrUnitNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Unit not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("unit_id", id).Msg("Failed to delete unit")
		return NewInternalError(c, "Failed to delete unit")
	}

	log.Info().Int32("owner_id", ownerID).Int("unit_id", id).Msg("Unit deleted")
	return c.NoContent(http.StatusNoContent)
}
