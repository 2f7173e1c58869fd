package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// GoalDefaultLabel is used when the owner never named their goal.
	GoalDefaultLabel = "Emergency reserve"

	// ReserveMultiplier is the emergency-reserve heuristic: six months of
	// the current period's expenses.
	ReserveMultiplier = 6
)

var ErrInvalidGoalTarget = errors.New("goal target must not be negative")

// Goal is the per-owner reserve target. At most one row exists per owner;
// when none is stored the target is derived from the period's expenses.
type Goal struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"owner_id"`
	Label     string          `gorm:"type:varchar(100);not null" json:"label"`
	Target    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Goal
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Label == "" {
		g.Label = GoalDefaultLabel
	}

	now := time.Now().UTC()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// BeforeUpdate hook for Goal
func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now().UTC()
	return g.Validate()
}

// Validate validates the goal fields
func (g *Goal) Validate() error {
	if g.OwnerID == uuid.Nil {
		return ErrMissingOwner
	}
	if g.Target.IsNegative() {
		return ErrInvalidGoalTarget
	}
	return nil
}

// TableName returns the table name for Goal
func (g *Goal) TableName() string {
	return "goals"
}

// DerivedGoal builds the fallback goal for owners without a stored target.
func DerivedGoal(ownerID uuid.UUID, periodExpense decimal.Decimal) *Goal {
	return &Goal{
		OwnerID: ownerID,
		Label:   GoalDefaultLabel,
		Target:  periodExpense.Mul(decimal.NewFromInt(ReserveMultiplier)),
	}
}
