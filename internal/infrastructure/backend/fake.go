package backend

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// Fake is an in-process backend actor with the production catalog. It
// enforces the same access rules: anonymous callers are guests, the first
// principal to initialise access control becomes admin.
type Fake struct {
	checkoutBase string

	mu        sync.Mutex
	roles     map[string]domain.UserRole
	hasAdmin  bool
	profiles  map[string]domain.UserProfile
	apps      []domain.AppInfo
	founder   domain.FounderProfile
	library   domain.ImplementationLibrary
	stripe    *domain.StripeConfiguration
	sessions  map[string]domain.StripeSessionStatus
	last      map[string]domain.StressTestMetrics
	history   map[string][]domain.StressTestMetrics
	generated map[string][]domain.GeneratedContent

	// RunErr, when set, is returned by RunStressTest.
	RunErr error
}

// NewFake returns a Fake whose checkout URLs live under checkoutBase.
func NewFake(checkoutBase string) *Fake {
	return &Fake{
		checkoutBase: strings.TrimRight(checkoutBase, "/"),
		roles:        make(map[string]domain.UserRole),
		profiles:     make(map[string]domain.UserProfile),
		apps:         slices.Clone(catalog),
		founder:      founder,
		library:      domain.ImplementationLibrary{Goals: slices.Clone(defaultGoals), FutureGoals: []domain.ImplementationGoal{}},
		sessions:     make(map[string]domain.StripeSessionStatus),
		last:         make(map[string]domain.StressTestMetrics),
		history:      make(map[string][]domain.StressTestMetrics),
		generated:    make(map[string][]domain.GeneratedContent),
	}
}

func (f *Fake) Ready() bool { return true }

func unauthorized(op, msg string) error {
	return &domain.BackendError{Op: op, Message: "Unauthorized: " + msg}
}

func (f *Fake) roleLocked(caller domain.Identity) domain.UserRole {
	if !caller.Authenticated() {
		return domain.RoleGuest
	}
	if r, ok := f.roles[caller.Principal]; ok {
		return r
	}
	return domain.RoleGuest
}

func (f *Fake) requireUser(op string, caller domain.Identity) error {
	if !caller.Authenticated() {
		return unauthorized(op, "Only users can perform this action")
	}
	return nil
}

func (f *Fake) requireAdmin(op string, caller domain.Identity) error {
	if f.roleLocked(caller) != domain.RoleAdmin {
		return unauthorized(op, "Only admins can perform this action")
	}
	return nil
}

func (f *Fake) InitializeAccessControl(_ context.Context, caller domain.Identity) error {
	if !caller.Authenticated() {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.roles[caller.Principal]; ok {
		return nil
	}
	if !f.hasAdmin {
		f.roles[caller.Principal] = domain.RoleAdmin
		f.hasAdmin = true
		return nil
	}
	f.roles[caller.Principal] = domain.RoleUser
	return nil
}

func (f *Fake) GetCallerUserRole(_ context.Context, caller domain.Identity) (domain.UserRole, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roleLocked(caller), nil
}

func (f *Fake) IsCallerAdmin(_ context.Context, caller domain.Identity) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roleLocked(caller) == domain.RoleAdmin, nil
}

func (f *Fake) AssignCallerUserRole(_ context.Context, caller domain.Identity, principal string, role domain.UserRole) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireAdmin("assignCallerUserRole", caller); err != nil {
		return err
	}
	f.roles[principal] = role
	return nil
}

func (f *Fake) GetCallerUserProfile(_ context.Context, caller domain.Identity) (*domain.UserProfile, error) {
	if err := f.requireUser("getCallerUserProfile", caller); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[caller.Principal]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *Fake) GetUserProfile(_ context.Context, caller domain.Identity, principal string) (*domain.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if caller.Principal != principal {
		if err := f.requireAdmin("getUserProfile", caller); err != nil {
			return nil, err
		}
	}
	p, ok := f.profiles[principal]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *Fake) SaveCallerUserProfile(_ context.Context, caller domain.Identity, profile domain.UserProfile) error {
	if err := f.requireUser("saveCallerUserProfile", caller); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[caller.Principal] = profile
	return nil
}

func (f *Fake) GetApps(context.Context, domain.Identity) ([]domain.AppInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.apps), nil
}

func (f *Fake) GetFounderProfile(context.Context, domain.Identity) (domain.FounderProfile, error) {
	return f.founder, nil
}

// CreateCheckoutSession answers the JSON document the payment provider
// returns, as a string. Sessions of the fake complete immediately.
func (f *Fake) CreateCheckoutSession(_ context.Context, caller domain.Identity, items []domain.ShoppingItem, _, _ string) (string, error) {
	const op = "createCheckoutSession"
	if err := f.requireUser(op, caller); err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", &domain.BackendError{Op: op, Message: "No items to check out"}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stripe == nil {
		return "", &domain.BackendError{Op: op, Message: "Stripe needs to be first configured"}
	}

	id := "cs_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	principal := caller.Principal
	f.sessions[id] = domain.SessionComplete{UserPrincipal: &principal, Response: `{"payment_status":"paid"}`}

	b, err := json.Marshal(domain.CheckoutSession{ID: id, URL: f.checkoutBase + "/session/" + id})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FailSession makes a session report the failed variant.
func (f *Fake) FailSession(sessionID, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sessionID] = domain.SessionFailure{Error: msg}
}

func (f *Fake) GetStripeSessionStatus(_ context.Context, _ domain.Identity, sessionID string) (domain.StripeSessionStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionID]
	if !ok {
		return domain.SessionFailure{Error: "Session not found"}, nil
	}
	return s, nil
}

func (f *Fake) IsStripeConfigured(context.Context, domain.Identity) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stripe != nil, nil
}

func (f *Fake) SetStripeConfiguration(_ context.Context, caller domain.Identity, cfg domain.StripeConfiguration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireAdmin("setStripeConfiguration", caller); err != nil {
		return err
	}
	f.stripe = &cfg
	return nil
}

func (f *Fake) RunStressTest(_ context.Context, caller domain.Identity) (domain.StressTestMetrics, error) {
	if err := f.requireUser("runStressTest", caller); err != nil {
		return domain.StressTestMetrics{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RunErr != nil {
		return domain.StressTestMetrics{}, f.RunErr
	}
	m := stressTestResult
	f.last[caller.Principal] = m
	f.history[caller.Principal] = append(f.history[caller.Principal], m)
	return m, nil
}

func (f *Fake) GetLastStressTestResults(_ context.Context, caller domain.Identity) (*domain.StressTestMetrics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.last[caller.Principal]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *Fake) GetStressTestMetricsHistory(_ context.Context, caller domain.Identity) ([]domain.StressTestMetrics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.history[caller.Principal]), nil
}

func (f *Fake) GetDefaultStressTestMetrics(context.Context, domain.Identity) (domain.StressTestMetrics, error) {
	return defaultStressTestMetrics, nil
}

func (f *Fake) GetImplementationLibrary(context.Context, domain.Identity) (domain.ImplementationLibrary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.ImplementationLibrary{
		Goals:       slices.Clone(f.library.Goals),
		FutureGoals: slices.Clone(f.library.FutureGoals),
	}, nil
}

func (f *Fake) GetImplementationGoals(context.Context, domain.Identity) ([]domain.ImplementationGoal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.library.Goals), nil
}

func (f *Fake) GetDefaultImplementationGoals(context.Context, domain.Identity) ([]domain.ImplementationGoal, error) {
	return slices.Clone(defaultGoals), nil
}

func (f *Fake) AddImplementationGoal(_ context.Context, caller domain.Identity, goal domain.ImplementationGoal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireAdmin("addImplementationGoal", caller); err != nil {
		return err
	}
	f.library.Goals = append(f.library.Goals, goal)
	return nil
}

func (f *Fake) AddFutureImplementationGoal(_ context.Context, caller domain.Identity, goal domain.ImplementationGoal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireAdmin("addFutureImplementationGoal", caller); err != nil {
		return err
	}
	f.library.FutureGoals = append(f.library.FutureGoals, goal)
	return nil
}

func (f *Fake) RemoveImplementationGoal(_ context.Context, caller domain.Identity, goalName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireAdmin("removeImplementationGoal", caller); err != nil {
		return err
	}
	match := func(g domain.ImplementationGoal) bool { return g.GoalName == goalName }
	f.library.Goals = slices.DeleteFunc(f.library.Goals, match)
	f.library.FutureGoals = slices.DeleteFunc(f.library.FutureGoals, match)
	return nil
}

func (f *Fake) GetCallerGeneratedContent(_ context.Context, caller domain.Identity) ([]domain.GeneratedContent, error) {
	if err := f.requireUser("getCallerGeneratedContent", caller); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.generated[caller.Principal]), nil
}

func (f *Fake) SaveGeneratedContent(_ context.Context, caller domain.Identity, content domain.GeneratedContent) error {
	if err := f.requireUser("saveGeneratedContent", caller); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generated[caller.Principal] = append(f.generated[caller.Principal], content)
	return nil
}
