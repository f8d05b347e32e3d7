package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type profileResponse struct {
	State   domain.SetupState   `json:"state"`
	Profile *domain.UserProfile `json:"profile"`
}

type setupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type saveProfileRequest struct {
	Name               string                     `json:"name"`
	Email              string                     `json:"email"`
	Credits            uint64                     `json:"credits"`
	SubscriptionStatus *domain.SubscriptionStatus `json:"subscriptionStatus"`
}

// Get returns the caller profile and the profile-setup state.
//
// @Summary      Current profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	st := h.profiles.Current(c.Request().Context(), identity(c))
	if st.Err != nil {
		return st.Err
	}
	return c.JSON(http.StatusOK, profileResponse{State: st.State, Profile: st.Profile})
}

// Setup creates the first profile of the caller.
//
// @Summary      Profile setup
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setupRequest  true  "Name and email"
// @Success      201   {object}  profileResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /profile/setup [post]
func (h *ProfileHandler) Setup(c echo.Context) error {
	var req setupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.profiles.Setup(c.Request().Context(), identity(c), req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profileResponse{State: domain.StateHasProfile, Profile: p})
}

// Save replaces the caller profile wholesale.
//
// @Summary      Replace profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveProfileRequest  true  "Full profile"
// @Success      200   {object}  profileResponse
// @Failure      422   {object}  map[string]string
// @Router       /profile [put]
func (h *ProfileHandler) Save(c echo.Context) error {
	var req saveProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := domain.UserProfile{
		Name:               req.Name,
		Email:              req.Email,
		Credits:            req.Credits,
		SubscriptionStatus: req.SubscriptionStatus,
	}.Normalize()
	if err != nil {
		return err
	}
	if err := h.profiles.Save(c.Request().Context(), identity(c), p); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{State: domain.StateHasProfile, Profile: &p})
}
