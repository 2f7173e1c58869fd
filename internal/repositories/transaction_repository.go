package repositories

import (
	"errors"
	"fmt"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// ListByOwner retrieves all transactions for an owner ordered by occurrence
// time ascending, with the ID as the tie-break so reloads are stable.
func (r *transactionRepository) ListByOwner(ownerID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("occurred_at ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Insert persists a new transaction. The BeforeCreate hook assigns the ID and
// falls back to the creation time when OccurredAt is absent.
func (r *transactionRepository) Insert(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// DeleteByID removes a transaction scoped to its owner. Deleting an id that
// does not exist returns ErrTransactionNotFound; callers that treat deletion
// as idempotent ignore it.
func (r *transactionRepository) DeleteByID(ownerID, id uuid.UUID) error {
	result := r.db.Where("owner_id = ?", ownerID).Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// CountByOwner returns the number of stored transactions for an owner
func (r *transactionRepository) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}
