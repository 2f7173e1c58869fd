package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceHeader carries the trace ID on requests and responses.
	TraceHeader = "X-Carteira-Trace"

	// traceContextKey is where handlers look the trace ID up. The handlers
	// package reads the same key by its literal value.
	traceContextKey = "trace_id"
)

// TraceID tags every request with a trace ID so a ledger command can be
// followed from access log to error envelope. An inbound header value is
// honored only when it is a well-formed UUID; anything else is replaced,
// so clients cannot inject arbitrary strings into the logs.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}

			c.Set(traceContextKey, traceID)
			c.Response().Header().Set(TraceHeader, traceID)

			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "" when the trace
// middleware has not run.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(traceContextKey).(string)
	return traceID
}
