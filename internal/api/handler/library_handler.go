package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

type LibraryHandler struct {
	shell    *Shell
	library  ports.LibraryService
	checkout ports.CheckoutService
}

func NewLibraryHandler(shell *Shell, library ports.LibraryService, checkout ports.CheckoutService) *LibraryHandler {
	return &LibraryHandler{shell: shell, library: library, checkout: checkout}
}

type goalRequest struct {
	GoalName string `json:"goalName" validate:"required,notblank"`
	UseCase  string `json:"useCase"  validate:"required,notblank"`
	Example  string `json:"example"  validate:"required,notblank"`
}

func (r goalRequest) goal() domain.ImplementationGoal {
	return domain.ImplementationGoal{GoalName: r.GoalName, UseCase: r.UseCase, Example: r.Example}
}

type stripeConfigRequest struct {
	SecretKey        string   `json:"secretKey"        validate:"required,notblank"`
	AllowedCountries []string `json:"allowedCountries"`
}

// Library renders the implementation library.
//
// @Summary      Implementation library
// @Tags         implementation-library
// @Produce      json
// @Success      200  {object}  PageResponse
// @Failure      503  {object}  map[string]string
// @Router       /implementation-library [get]
func (h *LibraryHandler) Library(c echo.Context) error {
	v, err := h.library.Library(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, v)
}

// AddGoal appends a current goal. Admin only.
//
// @Summary      Add implementation goal
// @Tags         implementation-library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      goalRequest  true  "Goal"
// @Success      201   {object}  PageResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /implementation-library/goals [post]
func (h *LibraryHandler) AddGoal(c echo.Context) error {
	var req goalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.library.AddGoal(c.Request().Context(), identity(c), req.goal()); err != nil {
		return err
	}
	return h.render(c, http.StatusCreated, success("Goal added"))
}

// AddFutureGoal appends a future goal. Admin only.
//
// @Summary      Add future implementation goal
// @Tags         implementation-library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      goalRequest  true  "Goal"
// @Success      201   {object}  PageResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /implementation-library/future-goals [post]
func (h *LibraryHandler) AddFutureGoal(c echo.Context) error {
	var req goalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.library.AddFutureGoal(c.Request().Context(), identity(c), req.goal()); err != nil {
		return err
	}
	return h.render(c, http.StatusCreated, success("Future goal added"))
}

// RemoveGoal deletes goals by name. Admin only.
//
// @Summary      Remove implementation goal
// @Tags         implementation-library
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Goal name"
// @Success      200   {object}  PageResponse
// @Failure      403   {object}  map[string]string
// @Router       /implementation-library/goals/{name} [delete]
func (h *LibraryHandler) RemoveGoal(c echo.Context) error {
	if err := h.library.RemoveGoal(c.Request().Context(), identity(c), c.Param("name")); err != nil {
		return err
	}
	return h.render(c, http.StatusOK, success("Goal removed"))
}

// Defaults lists the backend's default goals.
//
// @Summary      Default implementation goals
// @Tags         implementation-library
// @Produce      json
// @Success      200  {array}  domain.ImplementationGoal
// @Router       /implementation-library/defaults [get]
func (h *LibraryHandler) Defaults(c echo.Context) error {
	goals, err := h.library.Defaults(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goals)
}

// ConfigureStripe stores the payment provider setup. Admin only.
//
// @Summary      Configure payments
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  stripeConfigRequest  true  "Payment provider configuration"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /admin/stripe-configuration [put]
func (h *LibraryHandler) ConfigureStripe(c echo.Context) error {
	var req stripeConfigRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cfg := domain.StripeConfiguration{SecretKey: req.SecretKey, AllowedCountries: req.AllowedCountries}
	if cfg.AllowedCountries == nil {
		cfg.AllowedCountries = []string{}
	}
	if err := h.checkout.Configure(c.Request().Context(), identity(c), cfg); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LibraryHandler) render(c echo.Context, status int, note Notification) error {
	v, err := h.library.Library(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return h.shell.Render(c, status, v, note)
}
