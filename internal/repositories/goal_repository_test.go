package repositories

import (
	"testing"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/database"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// GoalRepositoryTestSuite is the test suite for the goal repository
type GoalRepositoryTestSuite struct {
	suite.Suite
	db      *database.DB
	repo    GoalRepositoryInterface
	ownerID uuid.UUID
}

func (s *GoalRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewGoalRepository(s.db.DB)
	s.ownerID = uuid.New()
}

func (s *GoalRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestGoalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GoalRepositoryTestSuite))
}

func (s *GoalRepositoryTestSuite) TestGetByOwner_NotFound() {
	_, err := s.repo.GetByOwner(s.ownerID)
	s.ErrorIs(err, ErrGoalNotFound)
}

func (s *GoalRepositoryTestSuite) TestUpsert_CreatesThenUpdates() {
	first := &models.Goal{
		OwnerID: s.ownerID,
		Label:   "Reserva de Emergência",
		Target:  decimal.NewFromInt(10000),
	}
	s.NoError(s.repo.Upsert(first))
	s.NotEqual(uuid.Nil, first.ID)

	// A second upsert for the same owner replaces the target, it does not
	// create a second row.
	second := &models.Goal{
		OwnerID: s.ownerID,
		Label:   "Viagem",
		Target:  decimal.NewFromInt(5000),
	}
	s.NoError(s.repo.Upsert(second))

	stored, err := s.repo.GetByOwner(s.ownerID)
	s.NoError(err)
	s.Equal("Viagem", stored.Label)
	s.True(stored.Target.Equal(decimal.NewFromInt(5000)))

	var count int64
	s.NoError(s.db.Model(&models.Goal{}).Where("owner_id = ?", s.ownerID).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *GoalRepositoryTestSuite) TestUpsert_IsolatedPerOwner() {
	s.NoError(s.repo.Upsert(&models.Goal{
		OwnerID: s.ownerID,
		Label:   "Reserva",
		Target:  decimal.NewFromInt(1000),
	}))

	otherOwner := uuid.New()
	s.NoError(s.repo.Upsert(&models.Goal{
		OwnerID: otherOwner,
		Label:   "Reserva",
		Target:  decimal.NewFromInt(2000),
	}))

	mine, err := s.repo.GetByOwner(s.ownerID)
	s.NoError(err)
	s.True(mine.Target.Equal(decimal.NewFromInt(1000)))

	theirs, err := s.repo.GetByOwner(otherOwner)
	s.NoError(err)
	s.True(theirs.Target.Equal(decimal.NewFromInt(2000)))
}
