package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

type stubSessions struct {
	tokens  map[string]string
	admins  map[string]bool
	isAdmin error
}

func (s *stubSessions) Login(context.Context, string) (*ports.Session, error) { return nil, nil }

func (s *stubSessions) Authenticate(token string) (domain.Identity, error) {
	p, ok := s.tokens[token]
	if !ok {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}
	return domain.Identity{Principal: p}, nil
}

func (s *stubSessions) Logout(context.Context, domain.Identity) error { return nil }

func (s *stubSessions) Role(context.Context, domain.Identity) (domain.UserRole, error) {
	return domain.RoleUser, nil
}

func (s *stubSessions) IsAdmin(_ context.Context, id domain.Identity) (bool, error) {
	if s.isAdmin != nil {
		return false, s.isAdmin
	}
	return s.admins[id.Principal], nil
}

func newStubSessions() *stubSessions {
	return &stubSessions{tokens: map[string]string{"good": "alice"}, admins: map[string]bool{"alice": true}}
}

func runIdentify(t *testing.T, req *http.Request) (principal string, reached bool, code int) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Identify(newStubSessions(), "portal_session")(func(c echo.Context) error {
		reached = true
		principal, _ = c.Get("principal").(string)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return principal, reached, rec.Code
}

func TestIdentify_BearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")

	principal, reached, code := runIdentify(t, req)
	if !reached || principal != "alice" || code != http.StatusOK {
		t.Fatalf("got principal=%q reached=%v code=%d", principal, reached, code)
	}
}

func TestIdentify_Cookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "good"})

	principal, reached, _ := runIdentify(t, req)
	if !reached || principal != "alice" {
		t.Fatalf("got principal=%q reached=%v", principal, reached)
	}
}

func TestIdentify_AnonymousPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	principal, reached, code := runIdentify(t, req)
	if !reached || principal != "" || code != http.StatusOK {
		t.Fatalf("got principal=%q reached=%v code=%d", principal, reached, code)
	}
}

func TestIdentify_Rejects(t *testing.T) {
	tests := map[string]string{
		"wrong scheme":  "Token good",
		"empty bearer":  "Bearer ",
		"unknown token": "Bearer nope",
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", header)

			_, reached, code := runIdentify(t, req)
			if reached {
				t.Fatal("should not reach next")
			}
			if code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", code)
			}
		})
	}
}

func TestRequireIdentity(t *testing.T) {
	e := echo.New()
	mw := RequireIdentity()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	if err := mw(next)(c); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("anonymous: err = %v", err)
	}

	rec := httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	c.Set("principal", "alice")
	if err := mw(next)(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
