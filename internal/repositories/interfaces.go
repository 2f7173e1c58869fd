package repositories

import (
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface is the store adapter contract the ledger
// depends on. Implementations assign IDs and timestamp defaults at insert;
// callers never build those fields themselves.
type TransactionRepositoryInterface interface {
	ListByOwner(ownerID uuid.UUID) ([]models.Transaction, error)
	Insert(transaction *models.Transaction) error
	DeleteByID(ownerID, id uuid.UUID) error
	CountByOwner(ownerID uuid.UUID) (int64, error)
}

// GoalRepositoryInterface defines the contract for goal persistence
type GoalRepositoryInterface interface {
	GetByOwner(ownerID uuid.UUID) (*models.Goal, error)
	Upsert(goal *models.Goal) error
}

// UserRepositoryInterface defines the contract for user persistence
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateLastLogin(userID uuid.UUID) error
}
