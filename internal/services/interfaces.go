package services

import (
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/dto"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerServiceInterface owns the in-memory transaction collection per owner
// and mediates every mutation through the transaction repository. Mutations
// on one owner's ledger are serialized; reads return defensive copies.
type LedgerServiceInterface interface {
	// Load replaces the in-memory state with the durable state. On failure
	// the in-memory collection is left empty.
	Load(ownerID uuid.UUID) error

	// Add validates and persists a new entry, then appends the
	// store-confirmed transaction. A zero occurredAt defaults to the
	// creation time. Validation failures and persistence failures leave
	// the collection untouched.
	Add(ownerID uuid.UUID, description string, amount decimal.Decimal, kind string, occurredAt time.Time) (*models.Transaction, error)

	// Remove deletes by id. Removing an id that does not exist is an
	// idempotent no-op, not an error.
	Remove(ownerID, id uuid.UUID) error

	// SetActiveMonth selects the month filter, 0 (January) to 11 (December).
	SetActiveMonth(ownerID uuid.UUID, month int) error

	// ActiveMonth reports the currently selected month filter.
	ActiveMonth(ownerID uuid.UUID) (int, error)

	// Filtered returns the entries whose occurrence month matches the
	// active month, any year, in original order.
	Filtered(ownerID uuid.UUID) ([]models.Transaction, error)

	// All returns the full unfiltered collection in original order.
	All(ownerID uuid.UUID) ([]models.Transaction, error)

	// Reset drops the in-memory state for an owner (e.g. on logout).
	Reset(ownerID uuid.UUID)
}

// AggregationServiceInterface provides pure aggregate computations over a
// transaction collection. Safe for unsynchronized concurrent use.
type AggregationServiceInterface interface {
	// Totals sums income and expense; Balance is always Income - Expense.
	Totals(transactions []models.Transaction) models.Totals

	// MonthlySeries returns exactly twelve points, January through
	// December, zero-filled, summed across all years present.
	MonthlySeries(transactions []models.Transaction) []models.MonthlyPoint

	// Snapshot builds the advisory input from period totals and a goal.
	Snapshot(periodTotals models.Totals, goalTarget decimal.Decimal) models.AdvisorySnapshot
}

// AdvisoryServiceInterface classifies a period snapshot into exactly one
// advisory category via an ordered rule table.
type AdvisoryServiceInterface interface {
	Advise(snapshot models.AdvisorySnapshot) models.Advice
}

// GoalServiceInterface manages the reserve goal and its progress math.
type GoalServiceInterface interface {
	// Progress is clamp(round(100 * balance / target), 0, 100) for a
	// positive balance, 0 otherwise. A non-positive target is rejected.
	Progress(balance, target decimal.Decimal) (int, error)

	// Shortfall is max(target - balance, 0).
	Shortfall(balance, target decimal.Decimal) decimal.Decimal

	// SetGoal stores a new target; a negative target is rejected and the
	// prior goal kept.
	SetGoal(ownerID uuid.UUID, label string, target decimal.Decimal) (*models.Goal, error)

	// GoalFor resolves the effective goal: the stored one, or the derived
	// emergency-reserve target when none is stored and derivation is on.
	GoalFor(ownerID uuid.UUID, periodExpense decimal.Decimal) (goal *models.Goal, derived bool, err error)
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// SampleDataGeneratorInterface produces plausible transactions for local
// development seeding.
type SampleDataGeneratorInterface interface {
	GenerateTransactions(ownerID uuid.UUID, count int) []models.Transaction
}
