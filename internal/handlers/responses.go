package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/errors"

	"github.com/labstack/echo/v4"
)

// Every error leaving a handler goes through SendError or SendSystemError so
// clients always see the same envelope: a code from the registry, its
// message, optional details, and the request's trace ID. SendError is for
// rejected commands that already map to a code (validation, auth, store
// failures); SendSystemError is for everything unexpected and never echoes
// the underlying error text to the caller. Handlers do not call
// echo.NewHTTPError or c.JSON with ad hoc error bodies.

// SuccessResponse is the envelope for 2xx payloads.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse mirrors the registry's envelope so handler tests can decode
// error bodies without importing the errors package everywhere.
type ErrorResponse = errors.ErrorResponse

// getTraceID reads the trace ID set by the trace middleware. The key value
// is shared with that middleware by convention; importing it here would
// cycle, since the middleware package already depends on this one.
func getTraceID(c echo.Context) string {
	traceID, _ := c.Get("trace_id").(string)
	return traceID
}

// SendError writes the envelope for a known error code. The HTTP status
// comes from the registry, not the call site.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError reports an unexpected failure as SYSTEM_001. The cause is
// logged here with the trace ID; the client only gets the ID to quote.
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	response, cause := errors.WrapSystemError(err, traceID)

	slog.Error("unhandled handler error",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", cause.Error(),
	)

	return c.JSON(http.StatusInternalServerError, response)
}
