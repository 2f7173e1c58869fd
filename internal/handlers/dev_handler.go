package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/errors"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/repositories"
	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedCount = 100
	maxSeedCount     = 1000
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	ledgerService   services.LedgerServiceInterface
	generator       services.SampleDataGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	ledgerService services.LedgerServiceInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		ledgerService:   ledgerService,
		generator:       services.NewSampleDataGenerator(),
	}
}

// Seed fills the caller's ledger with generated sample entries
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 100, max: 1000)
func (h *DevHandler) Seed(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := getIntParam(c, "count", defaultSeedCount)
	if count < 1 || count > maxSeedCount {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("count must be between 1 and 1000"))
	}

	transactions := h.generator.GenerateTransactions(userID, count)

	created := 0
	for i := range transactions {
		if err := h.transactionRepo.Insert(&transactions[i]); err != nil {
			return SendError(c, errors.LedgerPersistFailed)
		}
		created++
	}

	// Reload so the in-memory state picks up the seeded rows.
	if err := h.ledgerService.Load(userID); err != nil {
		if stderrors.Is(err, services.ErrLoadFailed) {
			return SendError(c, errors.LedgerLoadFailed)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    map[string]int{"transactions_created": created},
		Message: "Sample data generated",
	})
}
