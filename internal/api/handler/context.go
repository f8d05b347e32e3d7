package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// identity returns the caller resolved by the Identify middleware. A
// request without a session yields the anonymous identity.
func identity(c echo.Context) domain.Identity {
	principal, _ := c.Get("principal").(string)
	return domain.Identity{Principal: principal}
}

// bindAndValidate decodes the request body and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Invalid("invalid payload")
	}
	return c.Validate(req)
}
