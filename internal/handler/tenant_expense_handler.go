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

// TenantExpenseHandler handles recurring-obligation HTTP requests
type TenantExpenseHandler struct {
	expenseService *service.TenantExpenseService
}

// NewTenantExpenseHandler creates a new TenantExpenseHandler
func NewTenantExpenseHandler(expenseService *service.TenantExpenseService) *TenantExpenseHandler {
	return &TenantExpenseHandler{expenseService: expenseService}
}

// TenantExpenseRequest represents the create/update tenant expense body
type TenantExpenseRequest struct {
	ExpenseTypeID int32   `json:"expenseTypeId"`
	Cycle         string  `json:"cycle"`
	StartDate     string  `json:"startDate"`
	EndDate       *string `json:"endDate,omitempty"`
	Amount        string  `json:"amount"`
	Notes         *string `json:"notes,omitempty"`
}

// TenantExpenseResponse represents an obligation in API responses
type TenantExpenseResponse struct {
	ID               int32   `json:"id"`
	OwnerID          int32   `json:"ownerId"`
	TenantID         int32   `json:"tenantId"`
	ExpenseTypeID    int32   `json:"expenseTypeId"`
	Cycle            string  `json:"cycle"`
	StartDate        string  `json:"startDate"`
	EndDate          *string `json:"endDate,omitempty"`
	Amount           string  `json:"amount"`
	PayableInAdvance bool    `json:"payableInAdvance"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

func (r *TenantExpenseRequest) toInput(tenantID int32) (service.CreateTenantExpenseInput, []ValidationError) {
	cycle, err := domain.ParseBillingCycle(r.Cycle)
	if err != nil {
		return service.CreateTenantExpenseInput{}, []ValidationError{
			{Field: "cycle", Message: "Must be one of: onetime, monthly, quarterly, halfyearly, annual"},
		}
	}

	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return service.CreateTenantExpenseInput{}, []ValidationError{
			{Field: "startDate", Message: "Must be a valid date (YYYY-MM-DD)"},
		}
	}

	var end *time.Time
	if r.EndDate != nil && *r.EndDate != "" {
		d, err := time.Parse("2006-01-02", *r.EndDate)
		if err != nil {
			return service.CreateTenantExpenseInput{}, []ValidationError{
				{Field: "endDate", Message: "Must be a valid date (YYYY-MM-DD)"},
			}
		}
		end = &d
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return service.CreateTenantExpenseInput{}, []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		}
	}

	return service.CreateTenantExpenseInput{
		TenantID:      tenantID,
		ExpenseTypeID: r.ExpenseTypeID,
		Cycle:         cycle,
		StartDate:     start,
		EndDate:       end,
		Amount:        amount,
		Notes:         r.Notes,
	}, nil
}

func tenantExpenseErrorResponse(c echo.Context, err error, ownerID int32, action string) error {
	switch {
	case errors.Is(err, domain.ErrTenantNotFound):
		return NewNotFoundError(c, "Tenant not found")
	case errors.Is(err, domain.ErrExpenseTypeNotFound):
		return NewNotFoundError(c, "Expense type not found")
	case errors.Is(err, domain.ErrTenantExpenseNotFound), errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, "Tenant expense not found")
	case errors.Is(err, domain.ErrInvalidCycle):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "cycle", Message: "Must be one of: onetime, monthly, quarterly, halfyearly, annual"},
		})
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Must not be negative"},
		})
	case errors.Is(err, domain.ErrInvalidDateRange):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "endDate", Message: "End date must not be before start date"},
		})
	}
	log.Error().Err(err).Int32("owner_id", ownerID).Msg("Failed to " + action)
	return NewInternalError(c, "Failed to "+action)
}

// CreateTenantExpense handles POST /api/v1/tenants/:id/expenses
func (h *TenantExpenseHandler) CreateTenantExpense(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	tenantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant ID", nil)
	}

	var req TenantExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, validationErrs := req.toInput(int32(tenantID))
	if validationErrs != nil {
		return NewValidationError(c, "Validation failed", validationErrs)
	}

	expense, err := h.expenseService.CreateTenantExpense(ownerID, input)
	if err != nil {
		return tenantExpenseErrorResponse(c, err, ownerID, "create tenant expense")
	}

	log.Info().Int32("owner_id", ownerID).Int32("tenant_expense_id", expense.ID).Str("cycle", string(expense.Cycle)).Msg("Tenant expense created")
	return c.JSON(http.StatusCreated, toTenantExpenseResponse(expense))
}

// GetTenantExpenses handles GET /api/v1/tenants/:id/expenses
func (h *TenantExpenseHandler) GetTenantExpenses(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	tenantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant ID", nil)
	}

	expenses, err := h.expenseService.ListTenantExpenses(ownerID, int32(tenantID))
	if err != nil {
		return tenantExpenseErrorResponse(c, err, ownerID, "get tenant expenses")
	}

	response := make([]TenantExpenseResponse, len(expenses))
	for i, expense := range expenses {
		response[i] = toTenantExpenseResponse(expense)
	}
	return c.JSON(http.StatusOK, response)
}

// GetTenantExpense handles GET /api/v1/tenant-expenses/:id
func (h *TenantExpenseHandler) GetTenantExpense(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant expense ID", nil)
	}

	expense, err := h.expenseService.GetTenantExpense(ownerID, int32(id))
	if err != nil {
		return tenantExpenseErrorResponse(c, err, ownerID, "get tenant expense")
	}

	return c.JSON(http.StatusOK, toTenantExpenseResponse(expense))
}

// UpdateTenantExpense handles PUT /api/v1/tenant-expenses/:id
func (h *TenantExpenseHandler) UpdateTenantExpense(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant expense ID", nil)
	}

	var req TenantExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, validationErrs := req.toInput(0)
	if validationErrs != nil {
		return NewValidationError(c, "Validation failed", validationErrs)
	}

	expense, err := h.expenseService.UpdateTenantExpense(ownerID, int32(id), input)
	if err != nil {
		return tenantExpenseErrorResponse(c, err, ownerID, "update tenant expense")
	}

	log.Info().Int32("owner_id", ownerID).Int32("tenant_expense_id", expense.ID).Msg("Tenant expense updated")
	return c.JSON(http.StatusOK, toTenantExpenseResponse(expense))
}

// DeleteTenantExpense handles DELETE /api/v1/tenant-expenses/:id
func (h *TenantExpenseHandler) DeleteTenantExpense(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant expense ID", nil)
	}

	if err := h.expenseService.DeleteTenantExpense(ownerID, int32(id)); err != nil {
		return tenantExpenseErrorResponse(c, err, ownerID, "delete tenant expense")
	}

	log.Info().Int32("owner_id", ownerID).Int("tenant_expense_id", id).Msg("Tenant expense deleted")
	return c.NoContent(http.StatusNoContent)
}

func toTenantExpenseResponse(expense *domain.TenantExpense) TenantExpenseResponse {
	resp := TenantExpenseResponse{
		ID:               expense.ID,
		OwnerID:          expense.OwnerID,
		TenantID:         expense.TenantID,
		ExpenseTypeID:    expense.ExpenseTypeID,
		Cycle:            string(expense.Cycle),
		StartDate:        expense.StartDate.Format("2006-01-02"),
		Amount:           expense.Amount.StringFixed(2),
		PayableInAdvance: expense.PayableInAdvance,
		Notes:            expense.Notes,
		CreatedAt:        expense.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        expense.UpdatedAt.Format(time.RFC3339),
	}
	if expense.EndDate != nil {
		endDate := expense.EndDate.Format("2006-01-02")
		resp.EndDate = &endDate
	}
	return resp
}
