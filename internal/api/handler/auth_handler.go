package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

// SessionCookie carries the session token for browser clients.
const SessionCookie = "portal_session"

type AuthHandler struct {
	sessions     ports.SessionService
	secureCookie bool
}

func NewAuthHandler(sessions ports.SessionService, secureCookie bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, secureCookie: secureCookie}
}

type loginRequest struct {
	Principal string `json:"principal" validate:"required,notblank"`
}

type authResponse struct {
	Token     string          `json:"token"`
	Principal string          `json:"principal"`
	Role      domain.UserRole `json:"role,omitempty"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// Login starts a session for the asserted principal.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Principal asserted by the identity provider"
// @Success      200   {object}  authResponse
// @Failure      422   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	session, err := h.sessions.Login(ctx, req.Principal)
	if err != nil {
		return err
	}

	resp := authResponse{Token: session.Token, Principal: session.Principal, ExpiresAt: session.ExpiresAt}
	if role, err := h.sessions.Role(ctx, domain.Identity{Principal: session.Principal}); err == nil {
		resp.Role = role
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, resp)
}

// Logout clears the caller's cached data and wizards and ends the session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      303
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if id := identity(c); id.Authenticated() {
		if err := h.sessions.Logout(c.Request().Context(), id); err != nil {
			return err
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}

type roleResponse struct {
	Principal string          `json:"principal"`
	Role      domain.UserRole `json:"role"`
	IsAdmin   bool            `json:"isAdmin"`
}

// Me reports the caller's role.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  roleResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id := identity(c)
	ctx := c.Request().Context()
	role, err := h.sessions.Role(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Principal: id.Principal, Role: role, IsAdmin: role == domain.RoleAdmin})
}
