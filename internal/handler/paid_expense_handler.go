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

// PaidExpenseHandler handles payment-record HTTP requests
type PaidExpenseHandler struct {
	paymentService *service.PaidExpenseService
}

// NewPaidExpenseHandler creates a new PaidExpenseHandler
func NewPaidExpenseHandler(paymentService *service.PaidExpenseService) *PaidExpenseHandler {
	return &PaidExpenseHandler{paymentService: paymentService}
}

// RecordPaymentRequest represents the record payment body
type RecordPaymentRequest struct {
	ExpenseTypeID   int32   `json:"expenseTypeId"`
	TenantExpenseID *int32  `json:"tenantExpenseId,omitempty"`
	PaymentDate     string  `json:"paymentDate"`
	Amount          string  `json:"amount"`
	Notes           *string `json:"notes,omitempty"`
}

// PaidExpenseResponse represents a payment in API responses
type PaidExpenseResponse struct {
	ID              int32   `json:"id"`
	OwnerID         int32   `json:"ownerId"`
	TenantID        int32   `json:"tenantId"`
	ExpenseTypeID   int32   `json:"expenseTypeId"`
	TenantExpenseID *int32  `json:"tenantExpenseId,omitempty"`
	PaymentDate     string  `json:"paymentDate"`
	Amount          string  `json:"amount"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// RecordPayment handles POST /api/v1/tenants/:id/payments
func (h *PaidExpenseHandler) RecordPayment(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	tenantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant ID", nil)
	}

	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "paymentDate", Message: "Must be a valid date (YYYY-MM-DD)"},
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	payment, err := h.paymentService.RecordPayment(ownerID, service.RecordPaymentInput{
		TenantID:        int32(tenantID),
		ExpenseTypeID:   req.ExpenseTypeID,
		TenantExpenseID: req.TenantExpenseID,
		PaymentDate:     paymentDate,
		Amount:          amount,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTenantNotFound):
			return NewNotFoundError(c, "Tenant not found")
		case errors.Is(err, domain.ErrExpenseTypeNotFound):
			return NewNotFoundError(c, "Expense type not found")
		case errors.Is(err, domain.ErrTenantExpenseNotFound):
			return NewNotFoundError(c, "Tenant expense not found")
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Must not be negative"},
			})
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("tenant_id", tenantID).Msg("Failed to record payment")
		return NewInternalError(c, "Failed to record payment")
	}

	log.Info().Int32("owner_id", ownerID).Int32("paid_expense_id", payment.ID).Str("amount", payment.Amount.StringFixed(2)).Msg("Payment recorded")
	return c.JSON(http.StatusCreated, toPaidExpenseResponse(payment))
}

// GetPayments handles GET /api/v1/tenants/:id/payments
func (h *PaidExpenseHandler) GetPayments(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	tenantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant ID", nil)
	}

	payments, err := h.paymentService.ListPayments(ownerID, int32(tenantID))
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return NewNotFoundError(c, "Tenant not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("tenant_id", tenantID).Msg("Failed to get payments")
		return NewInternalError(c, "Failed to get payments")
	}

	response := make([]PaidExpenseResponse, len(payments))
	for i, payment := range payments {
		response[i] = toPaidExpenseResponse(payment)
	}
	return c.JSON(http.StatusOK, response)
}

// GetPayment handles GET /api/v1/payments/:id
func (h *PaidExpenseHandler) GetPayment(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid payment ID", nil)
	}

	payment, err := h.paymentService.GetPayment(ownerID, int32(id))
	if err != nil {
		if errors.Is(err, domain.ErrPaidExpenseNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Payment not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("paid_expense_id", id).Msg("Failed to get payment")
		return NewInternalError(c, "Failed to get payment")
	}

	return c.JSON(http.StatusOK, toPaidExpenseResponse(payment))
}

// DeletePayment handles DELETE /api/v1/payments/:id
func (h *PaidExpenseHandler) DeletePayment(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid payment ID", nil)
	}

	if err := h.paymentService.DeletePayment(ownerID, int32(id)); err != nil {
		if errors.Is(err, domain.ErrPaidExpenseNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Payment not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("paid_expense_id", id).Msg("Failed to delete payment")
		return NewInternalError(c, "Failed to delete payment")
	}

	log.Info().Int32("owner_id", ownerID).Int("paid_expense_id", id).Msg("Payment deleted")
	return c.NoContent(http.StatusNoContent)
}

func toPaidExpenseResponse(payment *domain.PaidExpense) PaidExpenseResponse {
	return PaidExpenseResponse{
		ID:              payment.ID,
		OwnerID:         payment.OwnerID,
		TenantID:        payment.TenantID,
		ExpenseTypeID:   payment.ExpenseTypeID,
		TenantExpenseID: payment.TenantExpenseID,
		PaymentDate:     payment.PaymentDate.Format("2006-01-02"),
		Amount:          payment.Amount.StringFixed(2),
		Notes:           payment.Notes,
		CreatedAt:       payment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       payment.UpdatedAt.Format(time.RFC3339),
	}
}
