package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

type stubSessionService struct {
	loginFn   func(ctx context.Context, principal string) (*ports.Session, error)
	roleFn    func(ctx context.Context, id domain.Identity) (domain.UserRole, error)
	loggedOut []string
}

func (s *stubSessionService) Login(ctx context.Context, principal string) (*ports.Session, error) {
	return s.loginFn(ctx, principal)
}

func (s *stubSessionService) Authenticate(string) (domain.Identity, error) {
	return domain.Identity{}, domain.ErrNotAuthenticated
}

func (s *stubSessionService) Logout(_ context.Context, id domain.Identity) error {
	s.loggedOut = append(s.loggedOut, id.Principal)
	return nil
}

func (s *stubSessionService) Role(ctx context.Context, id domain.Identity) (domain.UserRole, error) {
	return s.roleFn(ctx, id)
}

func (s *stubSessionService) IsAdmin(ctx context.Context, id domain.Identity) (bool, error) {
	role, err := s.roleFn(ctx, id)
	return role == domain.RoleAdmin, err
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	expires := time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)
	stub := &stubSessionService{
		loginFn: func(_ context.Context, principal string) (*ports.Session, error) {
			if principal != "alice" {
				t.Fatalf("unexpected principal: %s", principal)
			}
			return &ports.Session{Token: "tok", Principal: principal, ExpiresAt: expires}, nil
		},
		roleFn: func(context.Context, domain.Identity) (domain.UserRole, error) {
			return domain.RoleUser, nil
		},
	}
	h := NewAuthHandler(stub, true)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"principal":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok" || resp["principal"] != "alice" || resp["role"] != "user" {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie || cookies[0].Value != "tok" {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
	if !cookies[0].HttpOnly || !cookies[0].Secure {
		t.Fatalf("expected HttpOnly secure cookie, got %+v", cookies[0])
	}
}

func TestAuthHandler_Login_MissingPrincipal(t *testing.T) {
	e := newTestEcho()
	stub := &stubSessionService{
		loginFn: func(context.Context, string) (*ports.Session, error) {
			t.Fatal("login must not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Login(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthHandler_Login_BackendRoleFailureStillLogsIn(t *testing.T) {
	e := newTestEcho()
	stub := &stubSessionService{
		loginFn: func(_ context.Context, principal string) (*ports.Session, error) {
			return &ports.Session{Token: "tok", Principal: principal}, nil
		},
		roleFn: func(context.Context, domain.Identity) (domain.UserRole, error) {
			return "", domain.ErrBackendUnavailable
		},
	}
	h := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"principal":"bob"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if _, ok := resp["role"]; ok {
		t.Fatalf("expected role to be omitted, got %+v", resp)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	stub := &stubSessionService{}
	h := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("principal", "alice")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
	if len(stub.loggedOut) != 1 || stub.loggedOut[0] != "alice" {
		t.Fatalf("expected alice to be logged out, got %v", stub.loggedOut)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
}

func TestAuthHandler_Logout_Anonymous(t *testing.T) {
	e := newTestEcho()
	stub := &stubSessionService{}
	h := NewAuthHandler(stub, false)

	rec := httptest.NewRecorder()
	if err := h.Logout(e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(stub.loggedOut) != 0 {
		t.Fatalf("anonymous logout must not reach the session service")
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	stub := &stubSessionService{
		roleFn: func(_ context.Context, id domain.Identity) (domain.UserRole, error) {
			if id.Principal != "alice" {
				t.Fatalf("unexpected identity: %+v", id)
			}
			return domain.RoleAdmin, nil
		},
	}
	h := NewAuthHandler(stub, false)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/me", nil), rec)
	c.Set("principal", "alice")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp roleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Principal != "alice" || resp.Role != domain.RoleAdmin || !resp.IsAdmin {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
