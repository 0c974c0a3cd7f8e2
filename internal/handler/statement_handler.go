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

// StatementHandler handles monthly statement HTTP requests
type StatementHandler struct {
	statementService *service.StatementService
}

// NewStatementHandler creates a new StatementHandler
func NewStatementHandler(statementService *service.StatementService) *StatementHandler {
	return &StatementHandler{statementService: statementService}
}

// LedgerLineResponse represents one statement line in API responses
type LedgerLineResponse struct {
	Date            string  `json:"date"`
	Type            string  `json:"type"`
	Description     string  `json:"description"`
	Amount          string  `json:"amount"`
	LinkedExpenseID *int32  `json:"linkedExpenseId,omitempty"`
	PaidExpenseID   *int32  `json:"paidExpenseId,omitempty"`
	Comments        *string `json:"comments,omitempty"`
	RunningBalance  string  `json:"runningBalance"`
}

// StatementSummaryResponse represents the statement totals
type StatementSummaryResponse struct {
	TotalExpected       string `json:"totalExpected"`
	TotalPaid           string `json:"totalPaid"`
	PendingAmount       string `json:"pendingAmount"`
	TotalAllTimePending string `json:"totalAllTimePending"`
}

// StatementResponse represents a monthly statement in API responses
type StatementResponse struct {
	TenantID      int32                    `json:"tenantId"`
	Year          int                      `json:"year"`
	Month         int                      `json:"month"`
	TenantDetails *domain.Tenant           `json:"tenantDetails"`
	LineItems     []LedgerLineResponse     `json:"lineItems"`
	Summary       StatementSummaryResponse `json:"summary"`
}

// GetStatement handles GET /api/v1/tenants/:id/statements/:year/:month
func (h *StatementHandler) GetStatement(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)
	if ownerID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	tenantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid tenant ID", nil)
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "year", Message: "Must be between 2000 and 2100"},
		})
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "month", Message: "Must be between 1 and 12"},
		})
	}

	statement, err := h.statementService.BuildMonthlyStatement(ownerID, int32(tenantID), year, month)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) || errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Tenant not found")
		}
		log.Error().Err(err).Int32("owner_id", ownerID).Int("tenant_id", tenantID).Int("year", year).Int("month", month).Msg("Failed to build statement")
		return NewInternalError(c, "Failed to build statement")
	}

	return c.JSON(http.StatusOK, toStatementResponse(statement))
}

func toStatementResponse(statement *domain.MonthlyStatement) StatementResponse {
	lines := make([]LedgerLineResponse, len(statement.Lines))
	for i, line := range statement.Lines {
		lines[i] = LedgerLineResponse{
			Date:            line.Date.Format("2006-01-02"),
			Type:            string(line.Kind),
			Description:     line.Description,
			Amount:          line.Amount.StringFixed(2),
			LinkedExpenseID: line.TenantExpenseID,
			PaidExpenseID:   line.PaidExpenseID,
			Comments:        line.Notes,
			RunningBalance:  line.RunningBalance.StringFixed(2),
		}
	}

	return StatementResponse{
		TenantID:      statement.TenantID,
		Year:          statement.Year,
		Month:         statement.Month,
		TenantDetails: statement.Tenant,
		LineItems:     lines,
		Summary: StatementSummaryResponse{
			TotalExpected:       statement.Summary.TotalExpected.StringFixed(2),
			TotalPaid:           statement.Summary.TotalPaid.StringFixed(2),
			PendingAmount:       statement.Summary.PendingAmount.StringFixed(2),
			TotalAllTimePending: statement.Summary.TotalAllTimePending.StringFixed(2),
		},
	}
}
