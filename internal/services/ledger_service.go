package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrLoadFailed    = errors.New("failed to load ledger from store")
	ErrPersistFailed = errors.New("failed to persist ledger change")
	ErrInvalidMonth  = errors.New("month must be between 0 and 11")
)

// ledgerState is one owner's in-memory ledger: the ordered transaction
// collection plus the active month filter. The mutex serializes mutations so
// an add and a remove can never interleave on the same collection.
type ledgerState struct {
	mu           sync.Mutex
	transactions []models.Transaction
	activeMonth  int
	loaded       bool
}

type ledgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface

	mu      sync.Mutex
	ledgers map[uuid.UUID]*ledgerState
}

func NewLedgerService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) LedgerServiceInterface {
	return &ledgerService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		ledgers:         make(map[uuid.UUID]*ledgerState),
	}
}

// stateFor returns the owner's ledger state, creating it on first touch.
func (s *ledgerService) stateFor(ownerID uuid.UUID) *ledgerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.ledgers[ownerID]
	if !ok {
		state = &ledgerState{activeMonth: int(time.Now().UTC().Month()) - 1}
		s.ledgers[ownerID] = state
	}
	return state
}

// ensureLoaded pulls the durable state on first access. The store is the
// source of truth on (re)load; callers already hold state.mu.
func (s *ledgerService) ensureLoaded(ownerID uuid.UUID, state *ledgerState) error {
	if state.loaded {
		return nil
	}
	return s.reload(ownerID, state)
}

func (s *ledgerService) reload(ownerID uuid.UUID, state *ledgerState) error {
	start := time.Now()
	transactions, err := s.transactionRepo.ListByOwner(ownerID)
	if err != nil {
		state.transactions = nil
		state.loaded = false
		slog.Error("ledger load failed", "owner_id", ownerID, "error", err)
		return fmt.Errorf("%w: %s", ErrLoadFailed, err)
	}

	state.transactions = transactions
	state.loaded = true

	if s.metrics != nil {
		s.metrics.RecordProcessingTime("ledger.load", time.Since(start))
	}

	slog.Info("ledger loaded",
		"owner_id", ownerID,
		"transaction_count", len(transactions))

	return nil
}

func (s *ledgerService) Load(ownerID uuid.UUID) error {
	state := s.stateFor(ownerID)
	state.mu.Lock()
	defer state.mu.Unlock()

	return s.reload(ownerID, state)
}

func (s *ledgerService) Add(ownerID uuid.UUID, description string, amount decimal.Decimal, kind string, occurredAt time.Time) (*models.Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, models.ErrEmptyDescription
	}
	if !amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}
	if !models.IsValidTransactionKind(kind) {
		return nil, models.ErrInvalidTransactionKind
	}

	state := s.stateFor(ownerID)
	state.mu.Lock()
	defer state.mu.Unlock()

	if err := s.ensureLoaded(ownerID, state); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		OwnerID:     ownerID,
		Description: description,
		Amount:      amount,
		Kind:        kind,
		OccurredAt:  occurredAt,
	}

	// Persist first; the in-memory collection only ever reflects
	// store-confirmed state. No optimistic insert.
	if err := s.transactionRepo.Insert(transaction); err != nil {
		slog.Error("transaction persist failed",
			"owner_id", ownerID,
			"kind", kind,
			"error", err)
		s.recordCommand("add", "error")
		return nil, fmt.Errorf("%w: %s", ErrPersistFailed, err)
	}

	state.transactions = append(state.transactions, *transaction)
	s.recordCommand("add", "ok")

	slog.Info("transaction added",
		"owner_id", ownerID,
		"transaction_id", transaction.ID,
		"kind", kind,
		"amount", amount.String())

	return transaction, nil
}

func (s *ledgerService) Remove(ownerID, id uuid.UUID) error {
	state := s.stateFor(ownerID)
	state.mu.Lock()
	defer state.mu.Unlock()

	if err := s.ensureLoaded(ownerID, state); err != nil {
		return err
	}

	if err := s.transactionRepo.DeleteByID(ownerID, id); err != nil {
		// Deleting an id that is already gone is an idempotent no-op.
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil
		}
		slog.Error("transaction delete failed",
			"owner_id", ownerID,
			"transaction_id", id,
			"error", err)
		s.recordCommand("remove", "error")
		return fmt.Errorf("%w: %s", ErrPersistFailed, err)
	}

	for i := range state.transactions {
		if state.transactions[i].ID == id {
			state.transactions = append(state.transactions[:i], state.transactions[i+1:]...)
			break
		}
	}
	s.recordCommand("remove", "ok")

	slog.Info("transaction removed",
		"owner_id", ownerID,
		"transaction_id", id)

	return nil
}

func (s *ledgerService) SetActiveMonth(ownerID uuid.UUID, month int) error {
	if month < 0 || month > 11 {
		return ErrInvalidMonth
	}

	state := s.stateFor(ownerID)
	state.mu.Lock()
	defer state.mu.Unlock()

	state.activeMonth = month
	return nil
}

func (s *ledgerService) ActiveMonth(ownerID uuid.UUID) (int, error) {
	state := s.stateFor(ownerID)
	state.mu.Lock()
	defer state.mu.Unlock()

	return state.activeMonth, nil
}

// Filtered returns the entries whose occurrence falls in the active month of
// any year, preserving the collection's order.
func (s *ledgerService) Filtered(ownerID uuid.UUID) ([]models.Transaction, error) {
	state := s.stateFor(ownerID)
	state.mu.Lock()
	defer state.mu.Unlock()

	if err := s.ensureLoaded(ownerID, state); err != nil {
		return nil, err
	}

	month := time.Month(state.activeMonth + 1)
	filtered := make([]models.Transaction, 0, len(state.transactions))
	for i := range state.transactions {
		if state.transactions[i].OccurredAt.Month() == month {
			filtered = append(filtered, state.transactions[i])
		}
	}
	return filtered, nil
}

func (s *ledgerService) All(ownerID uuid.UUID) ([]models.Transaction, error) {
	state := s.stateFor(ownerID)
	state.mu.Lock()
	defer state.mu.Unlock()

	if err := s.ensureLoaded(ownerID, state); err != nil {
		return nil, err
	}

	all := make([]models.Transaction, len(state.transactions))
	copy(all, state.transactions)
	return all, nil
}

func (s *ledgerService) Reset(ownerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ledgers, ownerID)
}

func (s *ledgerService) recordCommand(command, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("ledger_commands_total", map[string]string{
		"command": command,
		"status":  status,
	})
}
