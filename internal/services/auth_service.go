package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/dto"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

type authService struct {
	userRepo     repositories.UserRepositoryInterface
	tokenService TokenServiceInterface
	metrics      MetricsRecorderInterface
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
) AuthServiceInterface {
	return &authService{
		userRepo:     userRepo,
		tokenService: tokenService,
		metrics:      metrics,
	}
}

func (s *authService) recordEvent(eventType string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("authentication_events_total", map[string]string{
		"event_type": eventType,
	})
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(user); err != nil {
		slog.Error("user create failed", "email", req.Email, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.recordEvent("register")
	slog.Info("user registered", "user_id", user.ID, "email", user.Email)

	return s.issueToken(user)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordEvent("login_failed")
		slog.Warn("login rejected", "email", req.Email)
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		// Non-fatal: the login itself succeeded.
		slog.Warn("failed to stamp last login", "user_id", user.ID, "error", err)
	}

	s.recordEvent("login")
	slog.Info("user logged in", "user_id", user.ID)

	return s.issueToken(user)
}

func (s *authService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	token, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
