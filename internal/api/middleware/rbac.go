package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

// RequireAdmin asks the backend whether the caller is an admin. The cached
// role is never used for authorization.
func RequireAdmin(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get("principal").(string)
			if principal == "" {
				return domain.ErrNotAuthenticated
			}
			ok, err := sessions.IsAdmin(c.Request().Context(), domain.Identity{Principal: principal})
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
