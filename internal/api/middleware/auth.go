package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

// Identify resolves the caller from a bearer token or the session cookie
// and injects the principal into the context. A request without a token
// stays anonymous; a token that fails verification is rejected.
func Identify(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
				}
				token = parts[1]
			} else if cookie, err := c.Cookie(cookieName); err == nil {
				token = cookie.Value
			}

			if token == "" {
				return next(c)
			}

			id, err := sessions.Authenticate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set("principal", id.Principal)

			return next(c)
		}
	}
}

// RequireIdentity rejects anonymous callers.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if principal, _ := c.Get("principal").(string); principal == "" {
				return domain.ErrNotAuthenticated
			}
			return next(c)
		}
	}
}
