package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthEmailTaken         ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidAmount   ErrorCode = "VALIDATION_003"
	ValidationInvalidKind     ErrorCode = "VALIDATION_004"
	ValidationMonthOutOfRange ErrorCode = "VALIDATION_005"
	ValidationNegativeTarget  ErrorCode = "VALIDATION_006"
	ValidationNonPositiveGoal ErrorCode = "VALIDATION_007"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerLoadFailed    ErrorCode = "LEDGER_001"
	LedgerPersistFailed ErrorCode = "LEDGER_002"
	LedgerNotLoaded     ErrorCode = "LEDGER_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthEmailTaken:         "An account with this email already exists",

	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidAmount:   "Amount must be a positive number",
	ValidationInvalidKind:     "Kind must be either 'income' or 'expense'",
	ValidationMonthOutOfRange: "Month must be between 0 and 11",
	ValidationNegativeTarget:  "Goal target must not be negative",
	ValidationNonPositiveGoal: "Goal target must be positive for progress calculation",

	// Ledger errors
	LedgerLoadFailed:    "Failed to load transactions from the store",
	LedgerPersistFailed: "Failed to persist the ledger change",
	LedgerNotLoaded:     "No ledger loaded for this user",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
