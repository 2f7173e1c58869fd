package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/dto"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/errors"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the aggregated period views: totals, the monthly
// trend, and the advisory verdict.
type DashboardHandler struct {
	ledgerService      services.LedgerServiceInterface
	aggregationService services.AggregationServiceInterface
	advisoryService    services.AdvisoryServiceInterface
	goalService        services.GoalServiceInterface
	metrics            services.MetricsRecorderInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	ledgerService services.LedgerServiceInterface,
	aggregationService services.AggregationServiceInterface,
	advisoryService services.AdvisoryServiceInterface,
	goalService services.GoalServiceInterface,
	metrics services.MetricsRecorderInterface,
) *DashboardHandler {
	return &DashboardHandler{
		ledgerService:      ledgerService,
		aggregationService: aggregationService,
		advisoryService:    advisoryService,
		goalService:        goalService,
		metrics:            metrics,
	}
}

// Summary returns the active month's totals and the advisory snapshot they
// produce
//
// Method: GET /api/v1/dashboard/summary
// Authentication: Required
func (h *DashboardHandler) Summary(c echo.Context) error {
	snapshot, activeMonth, err := h.buildSnapshot(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.SummaryResponse{
		ActiveMonth: activeMonth,
		Totals: models.Totals{
			Income:  snapshot.PeriodIncome,
			Expense: snapshot.PeriodExpense,
			Balance: snapshot.PeriodBalance,
		},
		Snapshot: *snapshot,
	})
}

// Series returns the twelve-point monthly trend over the full collection
//
// Method: GET /api/v1/dashboard/series
// Authentication: Required
func (h *DashboardHandler) Series(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactions, err := h.ledgerService.All(userID)
	if err != nil {
		return h.mapDashboardError(c, err)
	}

	start := time.Now()
	series := h.aggregationService.MonthlySeries(transactions)
	h.recordAggregation(start)

	return c.JSON(http.StatusOK, dto.SeriesResponse{
		Series: series,
	})
}

// Advice classifies the active month and renders the guidance copy
//
// Method: GET /api/v1/dashboard/advice
// Authentication: Required
func (h *DashboardHandler) Advice(c echo.Context) error {
	snapshot, _, err := h.buildSnapshot(c)
	if err != nil {
		return err
	}

	advice := h.advisoryService.Advise(*snapshot)

	return c.JSON(http.StatusOK, dto.AdviceResponse{
		Advice:  advice,
		Message: renderAdviceMessage(advice),
	})
}

// buildSnapshot assembles the advisory input for the caller's active month.
// Any error it returns has already been written to the response.
func (h *DashboardHandler) buildSnapshot(c echo.Context) (*models.AdvisorySnapshot, int, error) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return nil, 0, SendError(c, errors.AuthMissingToken)
	}

	transactions, err := h.ledgerService.Filtered(userID)
	if err != nil {
		return nil, 0, h.mapDashboardError(c, err)
	}

	activeMonth, err := h.ledgerService.ActiveMonth(userID)
	if err != nil {
		return nil, 0, SendSystemError(c, err)
	}

	start := time.Now()
	totals := h.aggregationService.Totals(transactions)

	goal, _, err := h.goalService.GoalFor(userID, totals.Expense)
	if err != nil {
		return nil, 0, h.mapDashboardError(c, err)
	}

	snapshot := h.aggregationService.Snapshot(totals, goal.Target)
	h.recordAggregation(start)

	return &snapshot, activeMonth, nil
}

func (h *DashboardHandler) recordAggregation(start time.Time) {
	if h.metrics != nil {
		h.metrics.RecordProcessingTime("dashboard.aggregation", time.Since(start))
	}
}

func (h *DashboardHandler) mapDashboardError(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrLoadFailed) {
		return SendError(c, errors.LedgerLoadFailed)
	}
	return SendSystemError(c, err)
}

// renderAdviceMessage maps the advisory category to user-facing copy.
// Presentation only; clients that localize can ignore it.
func renderAdviceMessage(advice models.Advice) string {
	switch advice.Category {
	case models.AdvisoryNoData:
		return "Adicione sua primeira movimentação para começar!"
	case models.AdvisoryNegativeOrZeroBalance:
		return "Foco total em quitar dívidas e reduzir custos fixos."
	case models.AdvisoryBuildingReserve:
		return fmt.Sprintf(
			"Sua prioridade é a Reserva de Emergência. Recomendo aplicar os R$ %s no Tesouro SELIC.",
			advice.Balance.StringFixed(2),
		)
	default:
		return "Reserva OK! Hora de diversificar em FIIs ou Ações."
	}
}
