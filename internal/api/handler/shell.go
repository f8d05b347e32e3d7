package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

const brand = "PETERBUILTWL"

type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var (
	headerNavigation = []NavItem{
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Apps", Path: "/apps"},
		{Label: "Payments", Path: "/payments"},
		{Label: "Donations", Path: "/donations"},
	}
	menuExtras = []NavItem{
		{Label: "Implementation Library", Path: "/implementation-library"},
		{Label: "About", Path: "/about"},
		{Label: "Stress Test", Path: "/stress-test"},
	}
	routeTable = []string{
		"/", "/dashboard", "/apps", "/payments", "/donations", "/app-wizard", "/blog-generator",
		"/payment-success", "/payment-failure", "/about", "/implementation-library", "/stress-test",
	}
)

type Footer struct {
	Copyright string `json:"copyright"`
	Tagline   string `json:"tagline"`
}

var footer = Footer{Copyright: "© 2025. Built with love using caffeine.ai", Tagline: "PETERBUILTWL + $DSWENTWORTH"}

// ProfileSetup drives the blocking profile-setup modal.
type ProfileSetup struct {
	Open    bool                   `json:"open"`
	Founder *domain.FounderProfile `json:"founder,omitempty"`
}

type Layout struct {
	Brand         string       `json:"brand"`
	Authenticated bool         `json:"authenticated"`
	UserInitials  string       `json:"userInitials"`
	UserName      string       `json:"userName,omitempty"`
	UserEmail     string       `json:"userEmail,omitempty"`
	Navigation    []NavItem    `json:"navigation"`
	Menu          []NavItem    `json:"menu"`
	Routes        []string     `json:"routes"`
	Footer        Footer       `json:"footer"`
	ProfileSetup  ProfileSetup `json:"profileSetup"`
}

// Notification is a toast shown by the page.
type Notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func success(msg string) Notification { return Notification{Type: "success", Message: msg} }
func failure(msg string) Notification { return Notification{Type: "error", Message: msg} }

// PageResponse is the envelope of every page.
type PageResponse struct {
	Layout        Layout         `json:"layout"`
	Page          any            `json:"page"`
	Notifications []Notification `json:"notifications"`
}

// Shell renders the header, footer and profile-setup modal around pages.
type Shell struct {
	profiles ports.ProfileService
	catalog  ports.CatalogService
	logger   zerolog.Logger
}

func NewShell(profiles ports.ProfileService, catalog ports.CatalogService, logger zerolog.Logger) *Shell {
	return &Shell{profiles: profiles, catalog: catalog, logger: logger}
}

// Layout builds the shell for the caller. Profile and founder failures
// degrade the shell; they never fail the page.
func (s *Shell) Layout(ctx context.Context, id domain.Identity) Layout {
	l := Layout{
		Brand:         brand,
		Authenticated: id.Authenticated(),
		UserInitials:  "U",
		Navigation:    []NavItem{},
		Menu:          []NavItem{},
		Routes:        routeTable,
		Footer:        footer,
	}
	if !id.Authenticated() {
		return l
	}

	l.Navigation = headerNavigation
	l.Menu = append(append([]NavItem{}, headerNavigation...), menuExtras...)

	st := s.profiles.Current(ctx, id)
	if st.Err != nil {
		s.logger.Warn().Err(st.Err).Str("principal", id.Principal).Msg("profile unavailable for layout")
	}
	l.UserInitials = st.Profile.Initials()
	if st.Profile != nil {
		l.UserName = st.Profile.Name
		l.UserEmail = st.Profile.Email
	}
	if st.State == domain.StateNeedsProfile {
		l.ProfileSetup.Open = true
		if f, err := s.catalog.Founder(ctx, id); err == nil {
			l.ProfileSetup.Founder = f
		}
	}
	return l
}

// Render writes page wrapped in the shell.
func (s *Shell) Render(c echo.Context, status int, page any, notes ...Notification) error {
	if notes == nil {
		notes = []Notification{}
	}
	return c.JSON(status, PageResponse{
		Layout:        s.Layout(c.Request().Context(), identity(c)),
		Page:          page,
		Notifications: notes,
	})
}

// authRequired is the page shown to anonymous callers of protected pages.
type authRequired struct {
	AuthenticationRequired bool   `json:"authenticationRequired"`
	Title                  string `json:"title"`
	Message                string `json:"message"`
}

func (s *Shell) RenderAuthRequired(c echo.Context, message string) error {
	return s.Render(c, http.StatusOK, authRequired{
		AuthenticationRequired: true,
		Title:                  "Authentication Required",
		Message:                message,
	})
}
