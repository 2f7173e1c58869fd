package repositories

import (
	"testing"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/database"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// UserRepositoryTestSuite is the test suite for the user repository
type UserRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) createTestUser() *models.User {
	user := &models.User{
		Email:        gofakeit.Email(),
		Name:         gofakeit.Name(),
		PasswordHash: "hashed_password",
	}
	require.NoError(s.T(), s.repo.Create(user))
	return user
}

func (s *UserRepositoryTestSuite) TestCreate() {
	user := s.createTestUser()

	s.NotEqual(uuid.Nil, user.ID)
	s.False(user.CreatedAt.IsZero())
}

func (s *UserRepositoryTestSuite) TestCreate_DuplicateEmail() {
	user := s.createTestUser()

	err := s.repo.Create(&models.User{
		Email:        user.Email,
		Name:         gofakeit.Name(),
		PasswordHash: "hashed_password",
	})
	s.Error(err)
}

func (s *UserRepositoryTestSuite) TestGetByEmail() {
	user := s.createTestUser()

	found, err := s.repo.GetByEmail(user.Email)
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail("nobody@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestGetByID() {
	user := s.createTestUser()

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(user.Email, found.Email)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestUpdateLastLogin() {
	user := s.createTestUser()
	s.Nil(user.LastLoginAt)

	s.NoError(s.repo.UpdateLastLogin(user.ID))

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.NotNil(found.LastLoginAt)

	s.ErrorIs(s.repo.UpdateLastLogin(uuid.New()), ErrUserNotFound)
}
