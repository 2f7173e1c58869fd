package services

import (
	"testing"
	"time"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/config"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	service        TokenServiceInterface
	issuer         string
	accessDuration time.Duration
}

// SetupTest runs before each test
func (s *TokenServiceTestSuite) SetupTest() {
	s.issuer = "test-issuer"
	s.accessDuration = 24 * time.Hour

	s.service = NewTokenService(&config.JWTConfig{
		Secret:              "test-secret-for-signing",
		Issuer:              s.issuer,
		AccessTokenDuration: s.accessDuration,
	})
}

// TestTokenServiceSuite runs the test suite
func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

// Test GenerateAccessToken
func (s *TokenServiceTestSuite) TestGenerateAccessToken() {
	user := &models.User{
		ID:    uuid.New(),
		Email: "test@example.com",
	}

	token, expiresAt, err := s.service.GenerateAccessToken(user)
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(25 * time.Hour)))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_NilUser() {
	token, _, err := s.service.GenerateAccessToken(nil)
	s.Error(err)
	s.Empty(token)
}

// Test ValidateAccessToken with valid token
func (s *TokenServiceTestSuite) TestValidateAccessToken_Success() {
	user := &models.User{
		ID:    uuid.New(),
		Email: "test@example.com",
	}

	token, _, err := s.service.GenerateAccessToken(user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.NoError(err)
	s.NotNil(claims)
	s.Equal(user.ID.String(), claims.UserID)
	s.Equal(user.Email, claims.Email)
	s.Equal(s.issuer, claims.Issuer)
}

// Test ValidateAccessToken with empty token
func (s *TokenServiceTestSuite) TestValidateAccessToken_EmptyToken() {
	claims, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)
	s.Nil(claims)
}

// Test ValidateAccessToken with invalid format
func (s *TokenServiceTestSuite) TestValidateAccessToken_InvalidFormat() {
	claims, err := s.service.ValidateAccessToken("invalid.token.format")
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

// Test ValidateAccessToken rejects tokens signed with another secret
func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongSecret() {
	other := NewTokenService(&config.JWTConfig{
		Secret:              "a-different-secret",
		Issuer:              s.issuer,
		AccessTokenDuration: s.accessDuration,
	})

	user := &models.User{ID: uuid.New(), Email: "test@example.com"}
	token, _, err := other.GenerateAccessToken(user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

// Test ValidateAccessToken with expired token
func (s *TokenServiceTestSuite) TestValidateAccessToken_Expired() {
	expired := NewTokenService(&config.JWTConfig{
		Secret:              "test-secret-for-signing",
		Issuer:              s.issuer,
		AccessTokenDuration: -time.Hour,
	})

	user := &models.User{ID: uuid.New(), Email: "test@example.com"}
	token, _, err := expired.GenerateAccessToken(user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

// Test ValidateAccessToken rejects a foreign issuer
func (s *TokenServiceTestSuite) TestValidateAccessToken_WrongIssuer() {
	foreign := NewTokenService(&config.JWTConfig{
		Secret:              "test-secret-for-signing",
		Issuer:              "another-issuer",
		AccessTokenDuration: s.accessDuration,
	})

	user := &models.User{ID: uuid.New(), Email: "test@example.com"}
	token, _, err := foreign.GenerateAccessToken(user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
	s.Nil(claims)
}

// Test ExtractTokenFromHeader
func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	token, err := s.service.ExtractTokenFromHeader("Bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)

	token, err = s.service.ExtractTokenFromHeader("bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)

	_, err = s.service.ExtractTokenFromHeader("")
	s.ErrorIs(err, ErrEmptyToken)

	_, err = s.service.ExtractTokenFromHeader("Basic abc")
	s.ErrorIs(err, ErrInvalidAuthHeader)

	_, err = s.service.ExtractTokenFromHeader("Bearer ")
	s.ErrorIs(err, ErrEmptyToken)
}
