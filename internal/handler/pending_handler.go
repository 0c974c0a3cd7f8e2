package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/middleware"
	"github.com/yashalsharma/kirayadoor-backend/internal/service"
)

// PendingHandler handles pending-amount HTTP requests
type PendingHandler struct {
	pendingService *service.PendingService
}

// NewPendingHandler creates a new PendingHandler
func NewPendingHandler(pendingService *service.PendingService) *PendingHandler {
	return &PendingHandler{pendingService: pendingService}
}

// PendingResponse represents a pending amount at some granularity
type PendingResponse struct {
	ID            int32  `json:"id"`
	AsOf          string `json:"asOf"`
	PendingAmount string `json:"pendingAmount"`
}

// asOfDate reads the optional asOf query param, defaulting to today
func asOfDate(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("asOf")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

func (h *PendingHandler) handle(c echo.Context, entity string, compute func(ownerID, id int32, asOf time.Time) (decimal.Decimal, error)) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid "+entity+" ID", nil)
	}

	asOf, err := asOfDate(c)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "asOf", Message: "Must be a valid date (YYYY-MM-DD)"},
		})
	}

	pending, err := compute(ownerID, int32(id), asOf)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) ||
			errors.Is(err, domain.ErrPropertyNotFound) ||
			errors.Is(err, domain.ErrUnitNotFound) ||
			errors.Is(err, domain.ErrTenantNotFound) ||
			errors.Is(err, domain.ErrTenantExpenseNotFound) {
			return NewNotFoundError(c, "Not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("id", id).Str("entity", entity).Msg("Failed to compute pending amount")
		return NewInternalError(c, "Failed to compute pending amount")
	}

	return c.JSON(http.StatusOK, PendingResponse{
		ID:            int32(id),
		AsOf:          asOf.Format("2006-01-02"),
		PendingAmount: pending.StringFixed(2),
	})
}

// GetExpensePending handles GET /api/v1/pending/expenses/:id
func (h *PendingHandler) GetExpensePending(c echo.Context) error {
	return h.handle(c, "tenant expense", h.pendingService.ForExpense)
}

// GetTenantPending handles GET /api/v1/pending/tenants/:id
func (h *PendingHandler) GetTenantPending(c echo.Context) error {
	return h.handle(c, "tenant", h.pendingService.ForTenant)
}

// GetUnitPending handles GET /api/v1/pending/units/:id
func (h *PendingHandler) GetUnitPending(c echo.Context) error {
	return h.handle(c, "unit", h.pendingService.ForUnit)
}

// GetPropertyPending handles GET /api/v1/pending/properties/:id
func (h *PendingHandler) GetPropertyPending(c echo.Context) error {
	return h.handle(c, "property", h.pendingService.ForProperty)
}
