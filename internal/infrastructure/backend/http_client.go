// Package backend adapts the backend actor to ports.BackendClient.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/pkg/metrics"
)

const (
	callerHeader = "X-Caller-Principal"
	maxBodyBytes = 4 << 20
)

// Config captures the settings of the RPC endpoint.
type Config struct {
	BaseURL string
	APIKey  string
	// HTTPClient defaults to http.DefaultClient. It should carry no timeout:
	// callers bound each call with their context.
	HTTPClient *http.Client
}

// HTTPClient calls the backend over POST {BaseURL}/rpc/{op}.
type HTTPClient struct {
	base   string
	apiKey string
	http   *http.Client
}

func NewHTTPClient(cfg Config) *HTTPClient {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey: cfg.APIKey,
		http:   hc,
	}
}

func (c *HTTPClient) Ready() bool { return c.base != "" }

// call sends the positional args and decodes the "ok" payload into out.
// An "err" payload becomes a *domain.BackendError.
func (c *HTTPClient) call(ctx context.Context, caller domain.Identity, op string, out any, args ...any) (err error) {
	start := time.Now()
	defer func() {
		metrics.BackendCallDuration.WithLabelValues(op, outcome(err)).Observe(time.Since(start).Seconds())
	}()

	if !c.Ready() {
		return fmt.Errorf("%s: %w", op, domain.ErrBackendUnavailable)
	}
	if args == nil {
		args = []any{}
	}
	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("%s: encode args: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/rpc/"+op, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if caller.Authenticated() {
		req.Header.Set(callerHeader, caller.Principal)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %w: status %d", op, domain.ErrBackendUnavailable, resp.StatusCode)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%s: invalid response body", op)
	}

	if e := gjson.GetBytes(data, "err"); e.Exists() {
		return &domain.BackendError{Op: op, Message: e.String()}
	}
	ok := gjson.GetBytes(data, "ok")
	if !ok.Exists() {
		return fmt.Errorf("%s: response has neither ok nor err", op)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(ok.Raw), out); err != nil {
		return fmt.Errorf("%s: decode result: %w", op, err)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrBackend):
		return "rejected"
	default:
		return "unavailable"
	}
}

func (c *HTTPClient) InitializeAccessControl(ctx context.Context, caller domain.Identity) error {
	return c.call(ctx, caller, "initializeAccessControl", nil)
}

func (c *HTTPClient) GetCallerUserRole(ctx context.Context, caller domain.Identity) (domain.UserRole, error) {
	var role domain.UserRole
	err := c.call(ctx, caller, "getCallerUserRole", &role)
	return role, err
}

func (c *HTTPClient) IsCallerAdmin(ctx context.Context, caller domain.Identity) (bool, error) {
	var ok bool
	err := c.call(ctx, caller, "isCallerAdmin", &ok)
	return ok, err
}

func (c *HTTPClient) AssignCallerUserRole(ctx context.Context, caller domain.Identity, principal string, role domain.UserRole) error {
	return c.call(ctx, caller, "assignCallerUserRole", nil, principal, role)
}

func (c *HTTPClient) GetCallerUserProfile(ctx context.Context, caller domain.Identity) (*domain.UserProfile, error) {
	var p *domain.UserProfile
	err := c.call(ctx, caller, "getCallerUserProfile", &p)
	return p, err
}

func (c *HTTPClient) GetUserProfile(ctx context.Context, caller domain.Identity, principal string) (*domain.UserProfile, error) {
	var p *domain.UserProfile
	err := c.call(ctx, caller, "getUserProfile", &p, principal)
	return p, err
}

func (c *HTTPClient) SaveCallerUserProfile(ctx context.Context, caller domain.Identity, profile domain.UserProfile) error {
	return c.call(ctx, caller, "saveCallerUserProfile", nil, profile)
}

func (c *HTTPClient) GetApps(ctx context.Context, caller domain.Identity) ([]domain.AppInfo, error) {
	var apps []domain.AppInfo
	err := c.call(ctx, caller, "getApps", &apps)
	return apps, err
}

func (c *HTTPClient) GetFounderProfile(ctx context.Context, caller domain.Identity) (domain.FounderProfile, error) {
	var f domain.FounderProfile
	err := c.call(ctx, caller, "getFounderProfile", &f)
	return f, err
}

func (c *HTTPClient) CreateCheckoutSession(ctx context.Context, caller domain.Identity, items []domain.ShoppingItem, successURL, cancelURL string) (string, error) {
	var raw string
	err := c.call(ctx, caller, "createCheckoutSession", &raw, items, successURL, cancelURL)
	return raw, err
}

func (c *HTTPClient) GetStripeSessionStatus(ctx context.Context, caller domain.Identity, sessionID string) (domain.StripeSessionStatus, error) {
	var raw json.RawMessage
	if err := c.call(ctx, caller, "getStripeSessionStatus", &raw, sessionID); err != nil {
		return nil, err
	}
	status, err := domain.UnmarshalSessionStatus(raw)
	if err != nil {
		return nil, fmt.Errorf("getStripeSessionStatus: %w", err)
	}
	return status, nil
}

func (c *HTTPClient) IsStripeConfigured(ctx context.Context, caller domain.Identity) (bool, error) {
	var ok bool
	err := c.call(ctx, caller, "isStripeConfigured", &ok)
	return ok, err
}

func (c *HTTPClient) SetStripeConfiguration(ctx context.Context, caller domain.Identity, cfg domain.StripeConfiguration) error {
	return c.call(ctx, caller, "setStripeConfiguration", nil, cfg)
}

func (c *HTTPClient) RunStressTest(ctx context.Context, caller domain.Identity) (domain.StressTestMetrics, error) {
	var m domain.StressTestMetrics
	err := c.call(ctx, caller, "runStressTest", &m)
	return m, err
}

func (c *HTTPClient) GetLastStressTestResults(ctx context.Context, caller domain.Identity) (*domain.StressTestMetrics, error) {
	var m *domain.StressTestMetrics
	err := c.call(ctx, caller, "getLastStressTestResults", &m)
	return m, err
}

func (c *HTTPClient) GetStressTestMetricsHistory(ctx context.Context, caller domain.Identity) ([]domain.StressTestMetrics, error) {
	var h []domain.StressTestMetrics
	err := c.call(ctx, caller, "getStressTestMetricsHistory", &h)
	return h, err
}

func (c *HTTPClient) GetDefaultStressTestMetrics(ctx context.Context, caller domain.Identity) (domain.StressTestMetrics, error) {
	var m domain.StressTestMetrics
	err := c.call(ctx, caller, "getDefaultStressTestMetrics", &m)
	return m, err
}

func (c *HTTPClient) GetImplementationLibrary(ctx context.Context, caller domain.Identity) (domain.ImplementationLibrary, error) {
	var lib domain.ImplementationLibrary
	err := c.call(ctx, caller, "getImplementationLibrary", &lib)
	return lib, err
}

func (c *HTTPClient) GetImplementationGoals(ctx context.Context, caller domain.Identity) ([]domain.ImplementationGoal, error) {
	var goals []domain.ImplementationGoal
	err := c.call(ctx, caller, "getImplementationGoals", &goals)
	return goals, err
}

func (c *HTTPClient) GetDefaultImplementationGoals(ctx context.Context, caller domain.Identity) ([]domain.ImplementationGoal, error) {
	var goals []domain.ImplementationGoal
	err := c.call(ctx, caller, "getDefaultImplementationGoals", &goals)
	return goals, err
}

func (c *HTTPClient) AddImplementationGoal(ctx context.Context, caller domain.Identity, goal domain.ImplementationGoal) error {
	return c.call(ctx, caller, "addImplementationGoal", nil, goal)
}

func (c *HTTPClient) AddFutureImplementationGoal(ctx context.Context, caller domain.Identity, goal domain.ImplementationGoal) error {
	return c.call(ctx, caller, "addFutureImplementationGoal", nil, goal)
}

func (c *HTTPClient) RemoveImplementationGoal(ctx context.Context, caller domain.Identity, goalName string) error {
	return c.call(ctx, caller, "removeImplementationGoal", nil, goalName)
}

func (c *HTTPClient) GetCallerGeneratedContent(ctx context.Context, caller domain.Identity) ([]domain.GeneratedContent, error) {
	var content []domain.GeneratedContent
	err := c.call(ctx, caller, "getCallerGeneratedContent", &content)
	return content, err
}

func (c *HTTPClient) SaveGeneratedContent(ctx context.Context, caller domain.Identity, content domain.GeneratedContent) error {
	return c.call(ctx, caller, "saveGeneratedContent", nil, content)
}
