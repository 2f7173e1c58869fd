package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/dto"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/errors"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// LedgerHandler handles the transaction collection endpoints
type LedgerHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService services.LedgerServiceInterface) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// AddTransaction records a new ledger entry
//
// Method: POST /api/v1/transactions
// Authentication: Required
//
// Success Response: 201 Created with the persisted transaction
//
// Error Responses:
//   - 400: Validation error - VALIDATION_001/002/003/004
//   - 401: Unauthorized - AUTH_002
//   - 502: Persist failed - LEDGER_002
func (h *LedgerHandler) AddTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.AddTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails("Amount is not a valid number"))
	}

	var occurredAt time.Time
	if req.OccurredAt != "" {
		occurredAt, err = time.Parse("2006-01-02", req.OccurredAt)
		if err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("occurred_at must be formatted as YYYY-MM-DD"))
		}
	}

	transaction, err := h.ledgerService.Add(userID, req.Description, amount, req.Kind, occurredAt)
	if err != nil {
		return h.mapLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    transaction,
		Message: "Transaction recorded",
	})
}

// ListTransactions returns the entries for the active month
//
// Method: GET /api/v1/transactions
// Authentication: Required
//
// Query parameters:
//   - scope: "all" returns the full collection instead of the month view
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var transactions []models.Transaction
	if c.QueryParam("scope") == "all" {
		transactions, err = h.ledgerService.All(userID)
	} else {
		transactions, err = h.ledgerService.Filtered(userID)
	}
	if err != nil {
		return h.mapLedgerError(c, err)
	}

	activeMonth, err := h.ledgerService.ActiveMonth(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		ActiveMonth:  activeMonth,
		Count:        len(transactions),
		Transactions: transactions,
	})
}

// RemoveTransaction deletes an entry by id. Removing an id that does not
// exist returns success, matching the idempotent service behavior.
//
// Method: DELETE /api/v1/transactions/:id
// Authentication: Required
func (h *LedgerHandler) RemoveTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid transaction id"))
	}

	if err := h.ledgerService.Remove(userID, id); err != nil {
		return h.mapLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction removed",
	})
}

// SetActiveMonth selects the month filter for subsequent list and dashboard
// requests
//
// Method: PUT /api/v1/ledger/month
// Authentication: Required
func (h *LedgerHandler) SetActiveMonth(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SetActiveMonthRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationMonthOutOfRange)
	}

	if err := h.ledgerService.SetActiveMonth(userID, *req.Month); err != nil {
		if stderrors.Is(err, services.ErrInvalidMonth) {
			return SendError(c, errors.ValidationMonthOutOfRange)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    map[string]int{"active_month": *req.Month},
		Message: "Active month updated",
	})
}

func (h *LedgerHandler) mapLedgerError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrEmptyDescription):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("Description must not be empty"))
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.ValidationInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidTransactionKind):
		return SendError(c, errors.ValidationInvalidKind)
	case stderrors.Is(err, services.ErrLoadFailed):
		return SendError(c, errors.LedgerLoadFailed)
	case stderrors.Is(err, services.ErrPersistFailed):
		return SendError(c, errors.LedgerPersistFailed)
	default:
		return SendSystemError(c, err)
	}
}
