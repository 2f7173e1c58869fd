package dto

import (
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/shopspring/decimal"
)

// SummaryResponse is the period dashboard: totals for the active month plus
// the advisory snapshot they were computed from.
type SummaryResponse struct {
	ActiveMonth int                     `json:"active_month"`
	Totals      models.Totals           `json:"totals"`
	Snapshot    models.AdvisorySnapshot `json:"snapshot"`
}

// SeriesResponse is the twelve-point monthly trend
type SeriesResponse struct {
	Series []models.MonthlyPoint `json:"series"`
}

// AdviceResponse pairs the advisory verdict with rendered message copy.
// The message is presentation-layer text; clients may localize instead.
type AdviceResponse struct {
	Advice  models.Advice `json:"advice"`
	Message string        `json:"message"`
}

// GoalRequest is the payload for setting the reserve goal
type GoalRequest struct {
	Label  string `json:"label" validate:"max=100"`
	Target string `json:"target" validate:"required,money_target"`
}

// GoalResponse reports the goal plus progress toward it for the active period
type GoalResponse struct {
	Goal      *models.Goal    `json:"goal"`
	Derived   bool            `json:"derived"`
	Progress  int             `json:"progress"`
	Shortfall decimal.Decimal `json:"shortfall"`
}
