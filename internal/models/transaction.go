package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionKindIncome  = "income"
	TransactionKindExpense = "expense"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrEmptyDescription       = errors.New("transaction description is required")
	ErrMissingOwner           = errors.New("owner ID is required")
)

// Transaction represents a single ledger entry. Entries are immutable once
// created: the only supported mutations are create and delete, so historical
// aggregates never change underneath a running aggregation.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Kind        string          `gorm:"type:varchar(10);not null" json:"kind"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction.
//
// When no OccurredAt is supplied the creation time is used as the entry date.
// Month filtering and the monthly series depend on this fallback, so it is a
// documented rule rather than an accident of the client.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.OccurredAt.IsZero() {
		t.OccurredAt = t.CreatedAt
	}

	t.Description = strings.TrimSpace(t.Description)

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.OwnerID == uuid.Nil {
		return ErrMissingOwner
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}

	if !IsValidTransactionKind(t.Kind) {
		return ErrInvalidTransactionKind
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// IsIncome returns true if the entry adds to the balance
func (t *Transaction) IsIncome() bool {
	return t.Kind == TransactionKindIncome
}

// IsExpense returns true if the entry subtracts from the balance
func (t *Transaction) IsExpense() bool {
	return t.Kind == TransactionKindExpense
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionKind checks if the transaction kind is valid
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindIncome, TransactionKindExpense:
		return true
	default:
		return false
	}
}
