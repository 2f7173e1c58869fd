package repositories

import (
	"testing"
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/database"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositoryTestSuite is the test suite for the transaction repository
type TransactionRepositoryTestSuite struct {
	suite.Suite
	db      *database.DB
	repo    TransactionRepositoryInterface
	ownerID uuid.UUID
}

// SetupTest runs before each test
func (s *TransactionRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	owner := database.CreateTestUser(s.T(), s.db, gofakeit.Email())

	s.repo = NewTransactionRepository(s.db.DB)
	s.ownerID = owner.ID
}

// TearDownTest runs after each test
func (s *TransactionRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

// TestTransactionRepositoryTestSuite runs the test suite
func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) insert(occurredAt time.Time) *models.Transaction {
	txn := &models.Transaction{
		OwnerID:     s.ownerID,
		Description: gofakeit.ProductName(),
		Amount:      decimal.NewFromFloat(gofakeit.Float64Range(1, 1000)).Round(2),
		Kind:        models.TransactionKindExpense,
		OccurredAt:  occurredAt,
	}
	require.NoError(s.T(), s.repo.Insert(txn))
	return txn
}

// TestInsert assigns an id and timestamps via the model hook
func (s *TransactionRepositoryTestSuite) TestInsert() {
	txn := s.insert(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))

	s.NotEqual(uuid.Nil, txn.ID)
	s.False(txn.CreatedAt.IsZero())
}

// TestInsert_DefaultsOccurredAt falls back to the creation time when no
// occurrence date is given
func (s *TransactionRepositoryTestSuite) TestInsert_DefaultsOccurredAt() {
	txn := &models.Transaction{
		OwnerID:     s.ownerID,
		Description: "Sem data",
		Amount:      decimal.NewFromInt(10),
		Kind:        models.TransactionKindIncome,
	}
	require.NoError(s.T(), s.repo.Insert(txn))

	s.False(txn.OccurredAt.IsZero())
	s.Equal(txn.CreatedAt, txn.OccurredAt)
}

// TestListByOwner returns only the owner's rows, ordered by occurrence
func (s *TransactionRepositoryTestSuite) TestListByOwner_OrderedAndScoped() {
	later := s.insert(time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC))
	earlier := s.insert(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC))

	// Another owner's row must not leak in.
	other := &models.Transaction{
		OwnerID:     uuid.New(),
		Description: "Outro dono",
		Amount:      decimal.NewFromInt(99),
		Kind:        models.TransactionKindExpense,
		OccurredAt:  time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(s.T(), s.repo.Insert(other))

	transactions, err := s.repo.ListByOwner(s.ownerID)
	s.NoError(err)
	s.Len(transactions, 2)
	s.Equal(earlier.ID, transactions[0].ID)
	s.Equal(later.ID, transactions[1].ID)
}

func (s *TransactionRepositoryTestSuite) TestListByOwner_Empty() {
	transactions, err := s.repo.ListByOwner(s.ownerID)
	s.NoError(err)
	s.Empty(transactions)
}

// TestDeleteByID removes the row for the right owner only
func (s *TransactionRepositoryTestSuite) TestDeleteByID() {
	txn := s.insert(time.Now().UTC())

	s.NoError(s.repo.DeleteByID(s.ownerID, txn.ID))

	transactions, err := s.repo.ListByOwner(s.ownerID)
	s.NoError(err)
	s.Empty(transactions)
}

func (s *TransactionRepositoryTestSuite) TestDeleteByID_MissingRow() {
	err := s.repo.DeleteByID(s.ownerID, uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

// Deleting with the wrong owner must not touch the row
func (s *TransactionRepositoryTestSuite) TestDeleteByID_WrongOwner() {
	txn := s.insert(time.Now().UTC())

	err := s.repo.DeleteByID(uuid.New(), txn.ID)
	s.ErrorIs(err, ErrTransactionNotFound)

	transactions, err := s.repo.ListByOwner(s.ownerID)
	s.NoError(err)
	s.Len(transactions, 1)
}

func (s *TransactionRepositoryTestSuite) TestCountByOwner() {
	now := time.Now().UTC()
	database.CreateTestTransaction(s.T(), s.db, s.ownerID, "Mercado", 52.30, models.TransactionKindExpense, now)
	database.CreateTestTransaction(s.T(), s.db, s.ownerID, "Salário", 3200, models.TransactionKindIncome, now)

	count, err := s.repo.CountByOwner(s.ownerID)
	s.NoError(err)
	s.Equal(int64(2), count)
}
