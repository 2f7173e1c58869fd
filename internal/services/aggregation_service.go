package services

import (
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/shopspring/decimal"
)

// aggregationService implements AggregationServiceInterface. All methods are
// pure: no state, no side effects, deterministic for a given collection
// regardless of insertion order (decimal addition is exact).
type aggregationService struct{}

func NewAggregationService() AggregationServiceInterface {
	return &aggregationService{}
}

func (s *aggregationService) Totals(transactions []models.Transaction) models.Totals {
	totals := models.ZeroTotals()

	for i := range transactions {
		txn := &transactions[i]
		switch txn.Kind {
		case models.TransactionKindIncome:
			totals.Income = totals.Income.Add(txn.Amount)
		case models.TransactionKindExpense:
			totals.Expense = totals.Expense.Add(txn.Amount)
		}
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}

// MonthlySeries partitions the full collection by calendar month across all
// years present. The result always has twelve zero-filled points in fixed
// January..December order.
func (s *aggregationService) MonthlySeries(transactions []models.Transaction) []models.MonthlyPoint {
	series := make([]models.MonthlyPoint, 12)
	for i := range series {
		series[i] = models.MonthlyPoint{
			Month:        time.Month(i + 1),
			TotalIncome:  decimal.Zero,
			TotalExpense: decimal.Zero,
		}
	}

	for i := range transactions {
		txn := &transactions[i]
		point := &series[int(txn.OccurredAt.Month())-1]
		switch txn.Kind {
		case models.TransactionKindIncome:
			point.TotalIncome = point.TotalIncome.Add(txn.Amount)
		case models.TransactionKindExpense:
			point.TotalExpense = point.TotalExpense.Add(txn.Amount)
		}
	}

	return series
}

func (s *aggregationService) Snapshot(periodTotals models.Totals, goalTarget decimal.Decimal) models.AdvisorySnapshot {
	return models.AdvisorySnapshot{
		PeriodIncome:  periodTotals.Income,
		PeriodExpense: periodTotals.Expense,
		PeriodBalance: periodTotals.Balance,
		GoalTarget:    goalTarget,
	}
}
