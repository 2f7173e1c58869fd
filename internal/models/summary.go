package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals is the aggregate of a transaction collection.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// ZeroTotals returns an all-zero aggregate.
func ZeroTotals() Totals {
	return Totals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Balance: decimal.Zero,
	}
}

// MonthlyPoint is one calendar month of the trend series. The series always
// carries twelve points, January through December, so chart consumers never
// have to special-case absent months.
type MonthlyPoint struct {
	Month        time.Month      `json:"month"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// AdvisoryCategory classifies the financial health of a period.
type AdvisoryCategory string

const (
	AdvisoryNoData                AdvisoryCategory = "no_data"
	AdvisoryNegativeOrZeroBalance AdvisoryCategory = "negative_or_zero_balance"
	AdvisoryBuildingReserve       AdvisoryCategory = "building_reserve"
	AdvisoryReserveComplete       AdvisoryCategory = "reserve_complete"
)

// AdvisorySnapshot is the sole input of the advisory classification. Amounts
// are strictly positive at creation, so a period with zero income and zero
// expense is exactly a period with no entries.
type AdvisorySnapshot struct {
	PeriodIncome  decimal.Decimal `json:"period_income"`
	PeriodExpense decimal.Decimal `json:"period_expense"`
	PeriodBalance decimal.Decimal `json:"period_balance"`
	GoalTarget    decimal.Decimal `json:"goal_target"`
}

// Advice is the advisory verdict: one category plus the numeric facts any
// presentation layer needs to render a message. Copywriting stays out of the
// engine.
type Advice struct {
	Category  AdvisoryCategory `json:"category"`
	Balance   decimal.Decimal  `json:"balance"`
	Target    decimal.Decimal  `json:"target"`
	Shortfall decimal.Decimal  `json:"shortfall"`
}
