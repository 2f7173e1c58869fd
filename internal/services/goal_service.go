package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveTarget = errors.New("goal target must be positive for progress calculation")
)

var oneHundred = decimal.NewFromInt(100)

type goalService struct {
	goalRepo repositories.GoalRepositoryInterface
	derived  bool
}

// NewGoalService creates a goal service. When derived is true, owners without
// a stored goal get the emergency-reserve heuristic (six months of the
// current period's expenses) instead of a zero target.
func NewGoalService(goalRepo repositories.GoalRepositoryInterface, derived bool) GoalServiceInterface {
	return &goalService{
		goalRepo: goalRepo,
		derived:  derived,
	}
}

func (s *goalService) Progress(balance, target decimal.Decimal) (int, error) {
	if !target.IsPositive() {
		return 0, ErrNonPositiveTarget
	}
	if !balance.IsPositive() {
		return 0, nil
	}

	percent := balance.Div(target).Mul(oneHundred).Round(0)
	if percent.GreaterThan(oneHundred) {
		return 100, nil
	}
	return int(percent.IntPart()), nil
}

func (s *goalService) Shortfall(balance, target decimal.Decimal) decimal.Decimal {
	shortfall := target.Sub(balance)
	if shortfall.IsNegative() {
		return decimal.Zero
	}
	return shortfall
}

func (s *goalService) SetGoal(ownerID uuid.UUID, label string, target decimal.Decimal) (*models.Goal, error) {
	if target.IsNegative() {
		// Rejected edits keep the prior goal; nothing is written.
		return nil, models.ErrInvalidGoalTarget
	}

	goal := &models.Goal{
		OwnerID: ownerID,
		Label:   label,
		Target:  target,
	}

	if err := s.goalRepo.Upsert(goal); err != nil {
		slog.Error("goal persist failed", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("%w: %s", ErrPersistFailed, err)
	}

	slog.Info("goal updated",
		"owner_id", ownerID,
		"label", goal.Label,
		"target", target.String())

	return goal, nil
}

func (s *goalService) GoalFor(ownerID uuid.UUID, periodExpense decimal.Decimal) (*models.Goal, bool, error) {
	goal, err := s.goalRepo.GetByOwner(ownerID)
	if err == nil {
		return goal, false, nil
	}

	if !errors.Is(err, repositories.ErrGoalNotFound) {
		slog.Error("goal lookup failed", "owner_id", ownerID, "error", err)
		return nil, false, fmt.Errorf("%w: %s", ErrLoadFailed, err)
	}

	if !s.derived {
		return &models.Goal{
			OwnerID: ownerID,
			Label:   models.GoalDefaultLabel,
			Target:  decimal.Zero,
		}, false, nil
	}

	return models.DerivedGoal(ownerID, periodExpense), true, nil
}
