package models

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) validTransaction() *Transaction {
	return &Transaction{
		OwnerID:     uuid.New(),
		Description: gofakeit.ProductName(),
		Amount:      decimal.NewFromFloat(42.50),
		Kind:        TransactionKindExpense,
	}
}

func (s *TransactionTestSuite) TestValidate_Valid() {
	s.NoError(s.validTransaction().Validate())
}

func (s *TransactionTestSuite) TestValidate_MissingOwner() {
	txn := s.validTransaction()
	txn.OwnerID = uuid.Nil
	s.ErrorIs(txn.Validate(), ErrMissingOwner)
}

func (s *TransactionTestSuite) TestValidate_EmptyDescription() {
	txn := s.validTransaction()
	txn.Description = "   "
	s.ErrorIs(txn.Validate(), ErrEmptyDescription)
}

func (s *TransactionTestSuite) TestValidate_InvalidKind() {
	txn := s.validTransaction()
	txn.Kind = "transfer"
	s.ErrorIs(txn.Validate(), ErrInvalidTransactionKind)
}

func (s *TransactionTestSuite) TestValidate_NonPositiveAmount() {
	txn := s.validTransaction()

	txn.Amount = decimal.Zero
	s.ErrorIs(txn.Validate(), ErrInvalidAmount)

	txn.Amount = decimal.NewFromInt(-1)
	s.ErrorIs(txn.Validate(), ErrInvalidAmount)
}

func (s *TransactionTestSuite) TestKindHelpers() {
	income := s.validTransaction()
	income.Kind = TransactionKindIncome
	s.True(income.IsIncome())
	s.False(income.IsExpense())

	expense := s.validTransaction()
	s.True(expense.IsExpense())
	s.False(expense.IsIncome())
}

func (s *TransactionTestSuite) TestIsValidTransactionKind() {
	s.True(IsValidTransactionKind(TransactionKindIncome))
	s.True(IsValidTransactionKind(TransactionKindExpense))
	s.False(IsValidTransactionKind(""))
	s.False(IsValidTransactionKind("INCOME"))
	s.False(IsValidTransactionKind("transfer"))
}
