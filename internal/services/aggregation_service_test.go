package services

import (
	"testing"
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AggregationServiceTestSuite struct {
	suite.Suite
	service AggregationServiceInterface
}

func TestAggregationServiceSuite(t *testing.T) {
	suite.Run(t, new(AggregationServiceTestSuite))
}

func (s *AggregationServiceTestSuite) SetupTest() {
	s.service = NewAggregationService()
}

func transactionAt(kind string, amount string, month time.Month) models.Transaction {
	value, _ := decimal.NewFromString(amount)
	return models.Transaction{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Amount:     value,
		Kind:       kind,
		OccurredAt: time.Date(2025, month, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (s *AggregationServiceTestSuite) TestTotals_EmptyCollection() {
	totals := s.service.Totals(nil)

	s.True(totals.Income.IsZero())
	s.True(totals.Expense.IsZero())
	s.True(totals.Balance.IsZero())
}

func (s *AggregationServiceTestSuite) TestTotals_BalanceIsIncomeMinusExpense() {
	transactions := []models.Transaction{
		transactionAt(models.TransactionKindIncome, "1000.00", time.January),
		transactionAt(models.TransactionKindExpense, "200.00", time.January),
		transactionAt(models.TransactionKindExpense, "99.90", time.January),
	}

	totals := s.service.Totals(transactions)

	s.True(totals.Income.Equal(decimal.RequireFromString("1000.00")))
	s.True(totals.Expense.Equal(decimal.RequireFromString("299.90")))
	s.True(totals.Balance.Equal(decimal.RequireFromString("700.10")))
}

func (s *AggregationServiceTestSuite) TestTotals_OrderIndependent() {
	a := transactionAt(models.TransactionKindIncome, "0.10", time.March)
	b := transactionAt(models.TransactionKindIncome, "0.20", time.March)
	c := transactionAt(models.TransactionKindExpense, "0.15", time.March)

	forward := s.service.Totals([]models.Transaction{a, b, c})
	backward := s.service.Totals([]models.Transaction{c, b, a})

	s.True(forward.Balance.Equal(backward.Balance))
	s.True(forward.Balance.Equal(decimal.RequireFromString("0.15")))
}

func (s *AggregationServiceTestSuite) TestMonthlySeries_AlwaysTwelvePoints() {
	series := s.service.MonthlySeries(nil)

	s.Len(series, 12)
	s.Equal(time.January, series[0].Month)
	s.Equal(time.December, series[11].Month)
	for _, point := range series {
		s.True(point.TotalIncome.IsZero())
		s.True(point.TotalExpense.IsZero())
	}
}

func (s *AggregationServiceTestSuite) TestMonthlySeries_SumsAcrossYears() {
	jan2024 := transactionAt(models.TransactionKindExpense, "100.00", time.January)
	jan2024.OccurredAt = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	jan2025 := transactionAt(models.TransactionKindExpense, "50.00", time.January)
	june := transactionAt(models.TransactionKindIncome, "3000.00", time.June)

	series := s.service.MonthlySeries([]models.Transaction{jan2024, jan2025, june})

	s.True(series[0].TotalExpense.Equal(decimal.RequireFromString("150.00")))
	s.True(series[5].TotalIncome.Equal(decimal.RequireFromString("3000.00")))
	s.True(series[11].TotalIncome.IsZero())
}

// The twelve points partition the collection: summing the series columns
// must reproduce the collection totals exactly, whatever the mix of months,
// years and kinds.
func (s *AggregationServiceTestSuite) TestMonthlySeries_ColumnSumsMatchTotals() {
	var transactions []models.Transaction
	amounts := []string{"1234.56", "0.01", "789.90", "52.30", "3000.00", "17.25", "640.00"}
	for i, amount := range amounts {
		kind := models.TransactionKindIncome
		if i%2 == 1 {
			kind = models.TransactionKindExpense
		}
		tx := transactionAt(kind, amount, time.Month(i%12+1))
		tx.OccurredAt = tx.OccurredAt.AddDate(i%3, 0, 0)
		transactions = append(transactions, tx)
	}

	totals := s.service.Totals(transactions)
	series := s.service.MonthlySeries(transactions)

	incomeSum := decimal.Zero
	expenseSum := decimal.Zero
	for _, point := range series {
		incomeSum = incomeSum.Add(point.TotalIncome)
		expenseSum = expenseSum.Add(point.TotalExpense)
	}

	s.True(incomeSum.Equal(totals.Income))
	s.True(expenseSum.Equal(totals.Expense))
	s.True(incomeSum.Sub(expenseSum).Equal(totals.Balance))
}

func (s *AggregationServiceTestSuite) TestSnapshot() {
	totals := models.Totals{
		Income:  decimal.NewFromInt(1000),
		Expense: decimal.NewFromInt(200),
		Balance: decimal.NewFromInt(800),
	}

	snapshot := s.service.Snapshot(totals, decimal.NewFromInt(1000))

	s.True(snapshot.PeriodIncome.Equal(totals.Income))
	s.True(snapshot.PeriodExpense.Equal(totals.Expense))
	s.True(snapshot.PeriodBalance.Equal(totals.Balance))
	s.True(snapshot.GoalTarget.Equal(decimal.NewFromInt(1000)))
}
