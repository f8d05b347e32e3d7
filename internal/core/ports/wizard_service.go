package ports

import (
	"context"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// WizardView is the rendering of a wizard for its page.
type WizardView struct {
	Kind       domain.WizardKind           `json:"kind"`
	Step       int                         `json:"step"`
	TotalSteps int                         `json:"totalSteps"`
	StepName   string                      `json:"stepName"`
	StepTitle  string                      `json:"stepTitle"`
	Steps      []domain.WizardStep         `json:"steps"`
	Fields     map[string]string           `json:"fields"`
	Options    map[string][]string         `json:"options,omitempty"`
	CanGoBack  bool                        `json:"canGoBack"`
	CanSubmit  bool                        `json:"canSubmit"`
	Output     *domain.BlogGeneratorOutput `json:"output,omitempty"`
}

type WizardService interface {
	Get(ctx context.Context, id domain.Identity, kind domain.WizardKind) (*WizardView, error)
	Update(ctx context.Context, id domain.Identity, kind domain.WizardKind, fields map[string]string) (*WizardView, error)
	Next(ctx context.Context, id domain.Identity, kind domain.WizardKind) (*WizardView, error)
	Back(ctx context.Context, id domain.Identity, kind domain.WizardKind) (*WizardView, error)
	Reset(ctx context.Context, id domain.Identity, kind domain.WizardKind) (*WizardView, error)

	// SubmitApp finishes the app wizard and returns the route to navigate to.
	SubmitApp(ctx context.Context, id domain.Identity) (string, error)

	// SubmitBlogInput validates the input step and advances to payment.
	SubmitBlogInput(ctx context.Context, id domain.Identity, fields map[string]string) (*WizardView, error)
	// CheckoutBlog opens the payment session for the blog generator.
	CheckoutBlog(ctx context.Context, id domain.Identity) (*domain.CheckoutSession, error)
	// GenerateBlog verifies the payment session and produces the article.
	GenerateBlog(ctx context.Context, id domain.Identity, sessionID string) (*WizardView, error)
}
