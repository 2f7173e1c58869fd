package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/dto"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/errors"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService   services.AuthServiceInterface
	ledgerService services.LedgerServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(
	authService services.AuthServiceInterface,
	ledgerService services.LedgerServiceInterface,
) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		ledgerService: ledgerService,
	}
}

// Register handles user registration
//
// Method: POST /api/v1/auth/register
//
// Success Response: 201 Created with dto.TokenResponse
//
// Error Responses:
//   - 400: Validation error - VALIDATION_001
//   - 422: Email already registered - AUTH_005
//   - 500: System error - SYSTEM_001
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Register(&req)
	if err != nil {
		if err == services.ErrEmailTaken {
			return SendError(c, errors.AuthEmailTaken)
		}
		return SendSystemError(c, err)
	}

	slog.Info("registration completed", "ip", getClientIP(c), "email", req.Email)

	return c.JSON(http.StatusCreated, tokens)
}

// Login handles user authentication
//
// Method: POST /api/v1/auth/login
//
// Success Response: 200 OK with dto.TokenResponse
//
// Error Responses:
//   - 400: Validation error - VALIDATION_001
//   - 401: Invalid credentials - AUTH_001
//   - 500: System error - SYSTEM_001
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	// Warm the in-memory ledger so the first dashboard request is served
	// from already-loaded state. A load failure is not a login failure.
	if err := h.ledgerService.Load(tokens.User.ID); err != nil {
		slog.Warn("ledger warm-up failed", "user_id", tokens.User.ID, "error", err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout drops the caller's in-memory ledger state
//
// Method: POST /api/v1/auth/logout
// Authentication: Required
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	h.ledgerService.Reset(userID)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logout successful",
	})
}
