package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/core/query"
	"github.com/peterbuiltwl/portal/internal/infrastructure/backend"
	"github.com/peterbuiltwl/portal/internal/infrastructure/memory"
)

var discardLogger = zerolog.Nop()

var (
	alice     = domain.Identity{Principal: "alice"}
	bob       = domain.Identity{Principal: "bob"}
	anonymous = domain.Identity{}
)

// stubBackend wraps the in-process fake and lets a test override or count
// single operations.
type stubBackend struct {
	*backend.Fake

	mu    sync.Mutex
	calls map[string]int

	getProfileErr  error
	saveProfileErr error
	checkoutRaw    *string
	runFn          func(ctx context.Context) (domain.StressTestMetrics, error)
	lastFn         func() *domain.StressTestMetrics
	saveContentErr error
}

func newStubBackend() *stubBackend {
	return &stubBackend{Fake: backend.NewFake("https://checkout.test"), calls: make(map[string]int)}
}

func (b *stubBackend) count(op string) {
	b.mu.Lock()
	b.calls[op]++
	b.mu.Unlock()
}

func (b *stubBackend) Calls(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

func (b *stubBackend) GetCallerUserProfile(ctx context.Context, caller domain.Identity) (*domain.UserProfile, error) {
	b.count("getCallerUserProfile")
	if b.getProfileErr != nil {
		return nil, b.getProfileErr
	}
	return b.Fake.GetCallerUserProfile(ctx, caller)
}

func (b *stubBackend) SaveCallerUserProfile(ctx context.Context, caller domain.Identity, p domain.UserProfile) error {
	b.count("saveCallerUserProfile")
	if b.saveProfileErr != nil {
		return b.saveProfileErr
	}
	return b.Fake.SaveCallerUserProfile(ctx, caller, p)
}

func (b *stubBackend) CreateCheckoutSession(ctx context.Context, caller domain.Identity, items []domain.ShoppingItem, successURL, cancelURL string) (string, error) {
	b.count("createCheckoutSession")
	if b.checkoutRaw != nil {
		return *b.checkoutRaw, nil
	}
	return b.Fake.CreateCheckoutSession(ctx, caller, items, successURL, cancelURL)
}

func (b *stubBackend) RunStressTest(ctx context.Context, caller domain.Identity) (domain.StressTestMetrics, error) {
	b.count("runStressTest")
	if b.runFn != nil {
		return b.runFn(ctx)
	}
	return b.Fake.RunStressTest(ctx, caller)
}

func (b *stubBackend) GetLastStressTestResults(ctx context.Context, caller domain.Identity) (*domain.StressTestMetrics, error) {
	b.count("getLastStressTestResults")
	if b.lastFn != nil {
		return b.lastFn(), nil
	}
	return b.Fake.GetLastStressTestResults(ctx, caller)
}

func (b *stubBackend) SaveGeneratedContent(ctx context.Context, caller domain.Identity, c domain.GeneratedContent) error {
	b.count("saveGeneratedContent")
	if b.saveContentErr != nil {
		return b.saveContentErr
	}
	return b.Fake.SaveGeneratedContent(ctx, caller, c)
}

func (b *stubBackend) GetCallerGeneratedContent(ctx context.Context, caller domain.Identity) ([]domain.GeneratedContent, error) {
	b.count("getCallerGeneratedContent")
	return b.Fake.GetCallerGeneratedContent(ctx, caller)
}

func (b *stubBackend) GetApps(ctx context.Context, caller domain.Identity) ([]domain.AppInfo, error) {
	b.count("getApps")
	return b.Fake.GetApps(ctx, caller)
}

type harness struct {
	backend  *stubBackend
	queries  *query.Client
	wizards  *memory.WizardRepository
	reports  *memory.ReportRepository
	lock     *memory.CheckoutLock
	profiles *ProfileService
	checkout *CheckoutService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	b := newStubBackend()
	q := query.NewClient(memory.NewQueryStore(), b, time.Minute, discardLogger).WithBackoff(0)
	h := &harness{
		backend: b,
		queries: q,
		wizards: memory.NewWizardRepository(),
		reports: memory.NewReportRepository(),
		lock:    memory.NewCheckoutLock(),
	}
	h.profiles = NewProfileService(b, q, discardLogger)
	h.checkout = NewCheckoutService(b, q, h.lock, discardLogger)
	return h
}

// configureStripe makes alice admin and configures payments.
func (h *harness) configureStripe(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	if err := h.backend.InitializeAccessControl(ctx, alice); err != nil {
		t.Fatal(err)
	}
	if err := h.checkout.Configure(ctx, alice, domain.StripeConfiguration{SecretKey: "sk_test", AllowedCountries: []string{"US"}}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
}

// syncScheduler records jobs instead of running them.
type syncScheduler struct {
	jobs []ports.StressTestJob
	err  error
}

func (s *syncScheduler) Enqueue(job ports.StressTestJob) error {
	if s.err != nil {
		return s.err
	}
	s.jobs = append(s.jobs, job)
	return nil
}
