package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Validation messages are user-facing as written.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve.Message
	}

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrNoResults):
		return http.StatusNotFound, "No test results available to download"
	case errors.Is(err, domain.ErrInvalidStep):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrRunInProgress):
		return http.StatusConflict, "a stress test is already running"
	case errors.Is(err, domain.ErrCheckoutInProgress):
		return http.StatusConflict, "a checkout is already in progress"
	case errors.Is(err, domain.ErrProfileExists):
		return http.StatusConflict, "profile already exists"
	case errors.Is(err, domain.ErrPaymentIncomplete):
		return http.StatusPaymentRequired, "payment not completed"
	case errors.Is(err, domain.ErrCheckoutResponse):
		log.Warn().Err(err).Str("path", c.Path()).Msg("malformed checkout response")
		return http.StatusBadGateway, "Failed to create checkout session. Please try again."
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, "backend not available"
	}

	// Backend rejections carry their own message.
	var be *domain.BackendError
	if errors.As(err, &be) {
		log.Warn().Err(err).Str("op", be.Op).Str("path", c.Path()).Msg("backend rejected call")
		return http.StatusBadGateway, be.Message
	}
	if errors.Is(err, domain.ErrBackend) {
		return http.StatusBadGateway, "backend call failed"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
