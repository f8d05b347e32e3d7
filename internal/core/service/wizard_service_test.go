package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

func newWizardService(h *harness) *WizardService {
	return NewWizardService(h.wizards, h.backend, h.queries, h.checkout, "https://portal.test/", discardLogger)
}

func TestWizardService_AppWizardFlow(t *testing.T) {
	h := newHarness(t)
	svc := newWizardService(h)
	ctx := context.Background()

	v, err := svc.Get(ctx, alice, domain.WizardApp)
	if err != nil {
		t.Fatal(err)
	}
	if v.Step != 1 || v.TotalSteps != 4 || v.StepTitle != "Basic Information" || v.CanGoBack {
		t.Errorf("initial view = %+v", v)
	}

	if _, err := svc.Update(ctx, alice, domain.WizardApp, map[string]string{"name": "Recipe Bot", "paymentModel": "free"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SubmitApp(ctx, alice); !errors.Is(err, domain.ErrInvalidStep) {
		t.Fatalf("early submit: err = %v", err)
	}

	for i := 0; i < 5; i++ {
		v, _ = svc.Next(ctx, alice, domain.WizardApp)
	}
	if v.Step != 4 || !v.CanSubmit || v.Fields["name"] != "Recipe Bot" {
		t.Fatalf("after next: %+v", v)
	}

	route, err := svc.SubmitApp(ctx, alice)
	if err != nil || route != "/apps" {
		t.Fatalf("SubmitApp = %q, %v", route, err)
	}
	v, _ = svc.Get(ctx, alice, domain.WizardApp)
	if v.Step != 1 || v.Fields["name"] != "" {
		t.Errorf("wizard not cleared: %+v", v)
	}
}

func TestWizardService_UpdateRejectsBadOption(t *testing.T) {
	h := newHarness(t)
	svc := newWizardService(h)
	ctx := context.Background()

	_, err := svc.Update(ctx, alice, domain.WizardApp, map[string]string{"name": "x", "outputType": "video"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v", err)
	}
	v, _ := svc.Get(ctx, alice, domain.WizardApp)
	if v.Fields["name"] != "" {
		t.Error("rejected update was partially applied")
	}
}

func TestWizardService_RequiresIdentity(t *testing.T) {
	svc := newWizardService(newHarness(t))
	if _, err := svc.Get(context.Background(), anonymous, domain.WizardApp); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("err = %v", err)
	}
}

func TestWizardService_BlogInputValidation(t *testing.T) {
	h := newHarness(t)
	svc := newWizardService(h)
	ctx := context.Background()

	_, err := svc.SubmitBlogInput(ctx, alice, map[string]string{"topic": "Go", "tone": "", "targetAudience": "devs"})
	if !errors.Is(err, domain.ErrValidation) || err.Error() != "Please fill in all fields" {
		t.Fatalf("err = %v", err)
	}
	if _, err := svc.Next(ctx, alice, domain.WizardBlog); !errors.Is(err, domain.ErrInvalidStep) {
		t.Errorf("generic next on blog generator: err = %v", err)
	}
	if _, err := svc.CheckoutBlog(ctx, alice); !errors.Is(err, domain.ErrInvalidStep) {
		t.Errorf("checkout from input: err = %v", err)
	}
}

func TestWizardService_BlogGeneratorFlow(t *testing.T) {
	h := newHarness(t)
	h.configureStripe(t)
	svc := newWizardService(h)
	catalog := NewCatalogService(h.backend, h.queries, discardLogger)
	ctx := context.Background()

	if content, _ := catalog.GeneratedContent(ctx, alice); len(content) != 0 {
		t.Fatalf("content = %v", content)
	}

	v, err := svc.SubmitBlogInput(ctx, alice, map[string]string{"topic": "Edge Caching", "tone": "casual", "targetAudience": "indie hackers"})
	if err != nil {
		t.Fatal(err)
	}
	if v.StepName != "payment" {
		t.Fatalf("step = %s", v.StepName)
	}

	session, err := svc.CheckoutBlog(ctx, alice)
	if err != nil {
		t.Fatalf("CheckoutBlog: %v", err)
	}

	v, err = svc.GenerateBlog(ctx, alice, session.ID)
	if err != nil {
		t.Fatalf("GenerateBlog: %v", err)
	}
	if v.StepName != "output" || v.Output == nil || !strings.Contains(v.Output.Article, "Edge Caching") || v.Output.WordCount == 0 {
		t.Fatalf("output view = %+v", v)
	}

	content, err := catalog.GeneratedContent(ctx, alice)
	if err != nil || len(content) != 1 {
		t.Fatalf("generated content = %v, %v", content, err)
	}
	if content[0].AppID != "blog-newsletter" || content[0].Input.TargetAudience != "indie hackers" {
		t.Errorf("content = %+v", content[0])
	}
	if n := h.backend.Calls("getCallerGeneratedContent"); n != 2 {
		t.Errorf("generated content fetches = %d, want 2", n)
	}
}

func TestWizardService_BlogGenerate_UnpaidSession(t *testing.T) {
	h := newHarness(t)
	h.configureStripe(t)
	svc := newWizardService(h)
	ctx := context.Background()

	_, _ = svc.SubmitBlogInput(ctx, alice, map[string]string{"topic": "Go", "tone": "friendly", "targetAudience": "devs"})
	session, _ := svc.CheckoutBlog(ctx, alice)
	h.backend.FailSession(session.ID, "card declined")

	_, err := svc.GenerateBlog(ctx, alice, session.ID)
	if !errors.Is(err, domain.ErrPaymentIncomplete) {
		t.Fatalf("err = %v", err)
	}
	v, _ := svc.Get(ctx, alice, domain.WizardBlog)
	if v.StepName != "payment" || v.Output != nil {
		t.Errorf("view = %+v", v)
	}
	if h.backend.Calls("saveGeneratedContent") != 0 {
		t.Error("content saved for an unpaid session")
	}
}

func TestWizardService_BlogGenerate_SaveFailureRollsBack(t *testing.T) {
	h := newHarness(t)
	h.configureStripe(t)
	svc := newWizardService(h)
	ctx := context.Background()

	_, _ = svc.SubmitBlogInput(ctx, alice, map[string]string{"topic": "Go", "tone": "friendly", "targetAudience": "devs"})
	session, _ := svc.CheckoutBlog(ctx, alice)
	h.backend.saveContentErr = errors.New("backend down")

	if _, err := svc.GenerateBlog(ctx, alice, session.ID); err == nil {
		t.Fatal("expected error")
	}
	v, _ := svc.Get(ctx, alice, domain.WizardBlog)
	if v.StepName != "payment" {
		t.Errorf("step = %s, want payment", v.StepName)
	}
}

func TestWizardService_BlogBack(t *testing.T) {
	h := newHarness(t)
	svc := newWizardService(h)
	ctx := context.Background()

	if _, err := svc.Back(ctx, alice, domain.WizardBlog); !errors.Is(err, domain.ErrInvalidStep) {
		t.Errorf("back from input: err = %v", err)
	}
	_, _ = svc.SubmitBlogInput(ctx, alice, map[string]string{"topic": "Go", "tone": "friendly", "targetAudience": "devs"})
	v, err := svc.Back(ctx, alice, domain.WizardBlog)
	if err != nil || v.StepName != "input" || v.Fields["topic"] != "Go" {
		t.Errorf("back from payment = %+v, %v", v, err)
	}

	v, _ = svc.Reset(ctx, alice, domain.WizardBlog)
	if v.Step != 1 || v.Fields["topic"] != "" {
		t.Errorf("reset = %+v", v)
	}
}
