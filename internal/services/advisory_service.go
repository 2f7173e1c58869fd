package services

import (
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/shopspring/decimal"
)

// advisoryRule is one row of the decision table. Rules are evaluated in
// declaration order; the first match wins, and the last rule always matches,
// so classification is total.
type advisoryRule struct {
	category models.AdvisoryCategory
	applies  func(models.AdvisorySnapshot) bool
}

type advisoryService struct {
	rules   []advisoryRule
	metrics MetricsRecorderInterface
}

func NewAdvisoryService(metrics MetricsRecorderInterface) AdvisoryServiceInterface {
	return &advisoryService{
		metrics: metrics,
		rules: []advisoryRule{
			{
				// Amounts are strictly positive at creation, so zero
				// income and zero expense means an empty period.
				category: models.AdvisoryNoData,
				applies: func(s models.AdvisorySnapshot) bool {
					return s.PeriodIncome.IsZero() && s.PeriodExpense.IsZero()
				},
			},
			{
				// A non-positive balance outranks any goal comparison.
				category: models.AdvisoryNegativeOrZeroBalance,
				applies: func(s models.AdvisorySnapshot) bool {
					return !s.PeriodBalance.IsPositive()
				},
			},
			{
				category: models.AdvisoryBuildingReserve,
				applies: func(s models.AdvisorySnapshot) bool {
					return s.PeriodBalance.LessThan(s.GoalTarget)
				},
			},
			{
				// Balance at or above the target, inclusive.
				category: models.AdvisoryReserveComplete,
				applies:  func(models.AdvisorySnapshot) bool { return true },
			},
		},
	}
}

// Advise classifies a snapshot into exactly one category. Stateless: each
// call re-evaluates the table from the snapshot alone.
func (s *advisoryService) Advise(snapshot models.AdvisorySnapshot) models.Advice {
	for _, rule := range s.rules {
		if rule.applies(snapshot) {
			return s.buildAdvice(rule.category, snapshot)
		}
	}

	// Unreachable: the final rule is a catch-all.
	return s.buildAdvice(models.AdvisoryReserveComplete, snapshot)
}

func (s *advisoryService) buildAdvice(category models.AdvisoryCategory, snapshot models.AdvisorySnapshot) models.Advice {
	shortfall := snapshot.GoalTarget.Sub(snapshot.PeriodBalance)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("advisory_categories_total", map[string]string{
			"category": string(category),
		})
	}

	return models.Advice{
		Category:  category,
		Balance:   snapshot.PeriodBalance,
		Target:    snapshot.GoalTarget,
		Shortfall: shortfall,
	}
}
