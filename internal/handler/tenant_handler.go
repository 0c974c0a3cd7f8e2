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

// TenantHandler handles tenant-related HTTP requests
type TenantHandler struct {
	tenantService *service.TenantService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// TenantRequest represents the create/update tenant request body.
// Dates use YYYY-MM-DD.
type TenantRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	MoveInDate  string  `json:"moveInDate"`
	MoveOutDate *string `json:"moveOutDate,omitempty"`
}

func (r *TenantRequest) toInput(unitID int32) (service.CreateTenantInput, error) {
	moveIn, err := time.Parse("2006-01-02", r.MoveInDate)
	if err != nil {
		return service.CreateTenantInput{}, errors.New("moveInDate")
	}

	var moveOut *time.Time
	if r.MoveOutDate != nil && *r.MoveOutDate != "" {
		d, err := time.Parse("2006-01-02", *r.MoveOutDate)
		if err != nil {
			return service.CreateTenantInput{}, errors.New("moveOutDate")
		}
		moveOut = &d
	}

	return service.CreateTenantInput{
		UnitID:      unitID,
		Name:        r.Name,
		Phone:       r.Phone,
		MoveInDate:  moveIn,
		MoveOutDate: moveOut,
	}, nil
}

func tenantErrorResponse(c echo.Context, err error, ownerID int32, action string) error {
	switch {
	case errors.Is(err, domain.ErrUnitNotFound):
		return NewNotFoundError(c, "Unit not found")
	case errors.Is(err, domain.ErrTenantNotFound), errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, "Tenant not found")
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidDateRange):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "moveOutDate", Message: "Move-out date must not be before move-in date"},
		})
	}
	log.Error().Err(err).Int32("owner_id", ownerID).Msg("Failed to " + action)
	return NewInternalError(c, "Failed to "+action)
}

// CreateTenant handles POST /api/v1/units/:id/tenants
func (h *TenantHandler) CreateTenant(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	unitID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid unit ID", nil)
	}

	var req TenantRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, err := req.toInput(int32(unitID))
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: err.Error(), Message: "Must be a valid date (YYYY-MM-DD)"},
		})
	}

	tenant, err := h.tenantService.CreateTenant(ownerID, input)
	if err != nil {
		return tenantErrorResponse(c, err, ownerID, "create tenant")
	}

	log.Info().Int32("owner_id", ownerID).Int32("tenant_id", tenant.ID).Str("name", tenant.Name).Msg("Tenant created")
	return c.JSON(http.StatusCreated, tenant)
}

// GetTenants handles GET /api/v1/units/:id/tenants
func (h *TenantHandler) GetTenants(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	unitID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid unit ID", nil)
	}

	tenants, err := h.tenantService.ListTenants(ownerID, int32(unitID))
	if err != nil {
		return tenantErrorResponse(c, err, ownerID, "get tenants")
	}

	return c.JSON(http.StatusOK, tenants)
}

// GetTenant handles GET /api/v1/tenants/:id
func (h *TenantHandler) GetTenant(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant ID", nil)
	}

	tenant, err := h.tenantService.GetTenant(ownerID, int32(id))
	if err != nil {
		return tenantErrorResponse(c, err, ownerID, "get tenant")
	}

	return c.JSON(http.StatusOK, tenant)
}

// UpdateTenant handles PUT /api/v1/tenants/:id
func (h *TenantHandler) UpdateTenant(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant ID", nil)
	}

	var req TenantRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, err := req.toInput(0)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: err.Error(), Message: "Must be a valid date (YYYY-MM-DD)"},
		})
	}

	tenant, err := h.tenantService.UpdateTenant(ownerID, int32(id), input)
	if err != nil {
		return tenantErrorResponse(c, err, ownerID, "update tenant")
	}

	log.Info().Int32("owner_id", ownerID).Int32("tenant_id", tenant.ID).Msg("Tenant updated")
	return c.JSON(http.StatusOK, tenant)
}

// DeleteTenant handles DELETE /api/v1/tenants/:id
func (h *TenantHandler) DeleteTenant(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant ID", nil)
	}

	if err := h.tenantService.DeleteTenant(ownerID, int32(id)); err != nil {
		return tenantErrorResponse(c, err, ownerID, "delete tenant")
	}

	log.Info().Int32("owner_id", ownerID).Int("tenant_id", id).Msg("Tenant deleted")
	return c.NoContent(http.StatusNoContent)
}
