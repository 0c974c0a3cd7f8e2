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

// ExpenseTypeHandler handles expense-type catalog HTTP requests
type ExpenseTypeHandler struct {
	expenseTypeService *service.ExpenseTypeService
}

// NewExpenseTypeHandler creates a new ExpenseTypeHandler
func NewExpenseTypeHandler(expenseTypeService *service.ExpenseTypeService) *ExpenseTypeHandler {
	return &ExpenseTypeHandler{expenseTypeService: expenseTypeService}
}

// ExpenseTypeRequest represents the create/update expense type body
type ExpenseTypeRequest struct {
	Name             string `json:"name"`
	PayableInAdvance bool   `json:"payableInAdvance"`
}

// CreateExpenseType handles POST /api/v1/expense-types
func (h *ExpenseTypeHandler) CreateExpenseType(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req ExpenseTypeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	expenseType, err := h.expenseTypeService.CreateExpenseType(ownerID, req.Name, req.PayableInAdvance)
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
		log.Error().Err(err).Int32("owner_id", ownerID).Msg("Failed to create expense type")
		return NewInternalError(c, "Failed to create expense type")
	}

	log.Info().Int32("owner_id", ownerID).Int32("expense_type_id", expenseType.ID).Str("name", expenseType.Name).Msg("Expense type created")
	return c.JSON(http.StatusCreated, expenseType)
}

// GetExpenseTypes handles GET /api/v1/expense-types
func (h *ExpenseTypeHandler) GetExpenseTypes(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	types, err := h.expenseTypeService.ListExpenseTypes(ownerID)
	if err != nil {
		log.Error().Err(err).Int32("owner_id", ownerID).Msg("Failed to get expense types")
		return NewInternalError(c, "Failed to get expense types")
	}

	return c.JSON(http.StatusOK, types)
}

// UpdateExpenseType handles PUT /api/v1/expense-types/:id
func (h *ExpenseTypeHandler) UpdateExpenseType(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid expense type ID", nil)
	}

	var req ExpenseTypeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	expenseType, err := h.expenseTypeService.UpdateExpenseType(ownerID, int32(id), req.Name, req.PayableInAdvance)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseTypeNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Expense type not found")
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
		log.Error().Err(err).Int32("owner_id", ownerID).Int("expense_type_id", id).Msg("Failed to update expense type")
		return NewInternalError(c, "Failed to update expense type")
	}

	log.Info().Int32("owner_id", ownerID).Int32("expense_type_id", expenseType.ID).Msg("Expense type updated")
	return c.JSON(http.StatusOK, expenseType)
}

// DeleteExpenseType handles DELETE /api/v1/expense-types/:id
func (h *ExpenseTypeHandler) DeleteExpenseType(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid expense type ID", nil)
	}

	if err := h.expenseTypeService.DeleteExpenseType(ownerID, int32(id)); err != nil {
		if errors.Is(err, domain.ErrExpenseTypeNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Expense type not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("expense_type_id", id).Msg("Failed to delete expense type")
		return NewInternalError(c, "Failed to delete expense type")
	}

	log.Info().Int32("owner_id", ownerID).Int("expense_type_id", id).Msg("Expense type deleted")
	return c.NoContent(http.StatusNoContent)
}
