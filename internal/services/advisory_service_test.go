package services

import (
	"testing"
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AdvisoryServiceTestSuite struct {
	suite.Suite
	service AdvisoryServiceInterface
}

func TestAdvisoryServiceSuite(t *testing.T) {
	suite.Run(t, new(AdvisoryServiceTestSuite))
}

func (s *AdvisoryServiceTestSuite) SetupTest() {
	s.service = NewAdvisoryService(nil)
}

func snapshotOf(income, expense, target string) models.AdvisorySnapshot {
	in := decimal.RequireFromString(income)
	out := decimal.RequireFromString(expense)
	return models.AdvisorySnapshot{
		PeriodIncome:  in,
		PeriodExpense: out,
		PeriodBalance: in.Sub(out),
		GoalTarget:    decimal.RequireFromString(target),
	}
}

func (s *AdvisoryServiceTestSuite) TestAdvise_NoData() {
	advice := s.service.Advise(snapshotOf("0", "0", "1000"))
	s.Equal(models.AdvisoryNoData, advice.Category)
}

func (s *AdvisoryServiceTestSuite) TestAdvise_NegativeBalance() {
	advice := s.service.Advise(snapshotOf("100", "300", "1000"))
	s.Equal(models.AdvisoryNegativeOrZeroBalance, advice.Category)
}

// A balance of exactly zero with activity in the period is still the
// debt-focused category, not no-data.
func (s *AdvisoryServiceTestSuite) TestAdvise_ZeroBalanceWithActivity() {
	advice := s.service.Advise(snapshotOf("300", "300", "1000"))
	s.Equal(models.AdvisoryNegativeOrZeroBalance, advice.Category)
}

func (s *AdvisoryServiceTestSuite) TestAdvise_BuildingReserve() {
	advice := s.service.Advise(snapshotOf("1000", "200", "1000"))

	s.Equal(models.AdvisoryBuildingReserve, advice.Category)
	s.True(advice.Shortfall.Equal(decimal.NewFromInt(200)))
}

// A balance exactly at the target counts as complete
func (s *AdvisoryServiceTestSuite) TestAdvise_BalanceEqualsTarget() {
	advice := s.service.Advise(snapshotOf("1000", "0", "1000"))

	s.Equal(models.AdvisoryReserveComplete, advice.Category)
	s.True(advice.Shortfall.IsZero())
}

func (s *AdvisoryServiceTestSuite) TestAdvise_AboveTarget() {
	advice := s.service.Advise(snapshotOf("5000", "500", "1000"))

	s.Equal(models.AdvisoryReserveComplete, advice.Category)
	s.True(advice.Shortfall.IsZero())
}

// The classification is stateless: repeated calls with the same snapshot
// agree, and interleaved snapshots do not bleed into each other.
func (s *AdvisoryServiceTestSuite) TestAdvise_Stateless() {
	building := snapshotOf("1000", "200", "1000")
	complete := snapshotOf("2000", "0", "1000")

	first := s.service.Advise(building)
	s.service.Advise(complete)
	second := s.service.Advise(building)

	s.Equal(first.Category, second.Category)
	s.True(first.Shortfall.Equal(second.Shortfall))
}

// End to end: two January entries, totals, goal, verdict
func TestMonthlyAdvisoryFlow(t *testing.T) {
	ownerID := uuid.New()
	january := func(day int) time.Time {
		return time.Date(2025, time.January, day, 10, 0, 0, 0, time.UTC)
	}

	transactions := []models.Transaction{
		{ID: uuid.New(), OwnerID: ownerID, Description: "Salary", Amount: decimal.NewFromInt(1000), Kind: models.TransactionKindIncome, OccurredAt: january(5)},
		{ID: uuid.New(), OwnerID: ownerID, Description: "Rent", Amount: decimal.NewFromInt(200), Kind: models.TransactionKindExpense, OccurredAt: january(10)},
	}

	aggregation := NewAggregationService()
	advisory := NewAdvisoryService(nil)

	totals := aggregation.Totals(transactions)
	if !totals.Balance.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("expected balance 800, got %s", totals.Balance)
	}

	snapshot := aggregation.Snapshot(totals, decimal.NewFromInt(1000))
	advice := advisory.Advise(snapshot)

	if advice.Category != models.AdvisoryBuildingReserve {
		t.Fatalf("expected building_reserve, got %s", advice.Category)
	}
	if !advice.Shortfall.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected shortfall 200, got %s", advice.Shortfall)
	}
}
