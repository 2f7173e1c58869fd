package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/dto"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/errors"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GoalHandler manages the reserve goal and its progress view
type GoalHandler struct {
	ledgerService      services.LedgerServiceInterface
	aggregationService services.AggregationServiceInterface
	goalService        services.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(
	ledgerService services.LedgerServiceInterface,
	aggregationService services.AggregationServiceInterface,
	goalService services.GoalServiceInterface,
) *GoalHandler {
	return &GoalHandler{
		ledgerService:      ledgerService,
		aggregationService: aggregationService,
		goalService:        goalService,
	}
}

// GetGoal returns the effective goal and the active period's progress toward
// it. When no goal is stored the derived emergency-reserve target is used and
// flagged as derived.
//
// Method: GET /api/v1/goal
// Authentication: Required
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactions, err := h.ledgerService.Filtered(userID)
	if err != nil {
		if stderrors.Is(err, services.ErrLoadFailed) {
			return SendError(c, errors.LedgerLoadFailed)
		}
		return SendSystemError(c, err)
	}

	totals := h.aggregationService.Totals(transactions)

	goal, derived, err := h.goalService.GoalFor(userID, totals.Expense)
	if err != nil {
		return SendSystemError(c, err)
	}

	// A zero target has no meaningful progress; report 0 of 100.
	progress := 0
	if goal.Target.IsPositive() {
		progress, err = h.goalService.Progress(totals.Balance, goal.Target)
		if err != nil {
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.GoalResponse{
		Goal:      goal,
		Derived:   derived,
		Progress:  progress,
		Shortfall: h.goalService.Shortfall(totals.Balance, goal.Target),
	})
}

// SetGoal stores a new reserve target. A negative target is rejected and the
// prior goal kept.
//
// Method: PUT /api/v1/goal
// Authentication: Required
func (h *GoalHandler) SetGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.GoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	target, err := decimal.NewFromString(req.Target)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Target is not a valid number"))
	}

	label := req.Label
	if label == "" {
		label = models.GoalDefaultLabel
	}

	goal, err := h.goalService.SetGoal(userID, label, target)
	if err != nil {
		if stderrors.Is(err, models.ErrInvalidGoalTarget) {
			return SendError(c, errors.ValidationNegativeTarget)
		}
		if stderrors.Is(err, services.ErrPersistFailed) {
			return SendError(c, errors.LedgerPersistFailed)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    goal,
		Message: "Goal updated",
	})
}
