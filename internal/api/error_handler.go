package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for API errors other than
// authorization denials.
type errorResponse struct {
	Error string `json:"error"`
}

// denyResponse mirrors the 401/403 envelope the frontend expects.
type denyResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders authorization denials in the frontend's {error,message} envelope.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Authorization denials use the fixed deny envelope.
		if errors.Is(err, domain.ErrUnauthenticated) {
			_ = c.JSON(http.StatusUnauthorized, denyResponse{Error: true, Message: "unauthorized access"})
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			_ = c.JSON(http.StatusForbidden, denyResponse{Error: true, Message: "forbidden message"})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "account not found"
	case errors.Is(err, domain.ErrClassNotFound):
		return http.StatusNotFound, "class not found"
	case errors.Is(err, domain.ErrSelectionNotFound):
		return http.StatusNotFound, "selection not found"
	case errors.Is(err, domain.ErrInstructorNotFound):
		return http.StatusNotFound, "instructor not found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
