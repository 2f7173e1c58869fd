package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Dev-BrunoOliveira/CARTEIRA/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a panic anywhere below it in the chain into a
// SYSTEM_001 envelope so one bad ledger command cannot take the server down.
// The stack goes to the log, never to the client.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				slog.Error("panic recovered",
					"trace_id", GetTraceID(c),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)

				if c.Response().Committed {
					return
				}

				response := errors.NewErrorResponse(errors.SystemInternalError, GetTraceID(c))
				err = c.JSON(http.StatusInternalServerError, response)
			}()

			return next(c)
		}
	}
}
