package service

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/core/query"
	"github.com/peterbuiltwl/portal/internal/pkg/metrics"
)

const blogGeneratorAppID = "blog-newsletter"

// WizardService drives the app-creation and blog-generator wizards. Wizard
// state is kept per principal so it survives page reloads.
type WizardService struct {
	repo      ports.WizardRepository
	backend   ports.BackendClient
	queries   *query.Client
	checkout  ports.CheckoutService
	publicURL string
	logger    zerolog.Logger
	now       func() time.Time
}

func NewWizardService(
	repo ports.WizardRepository,
	backend ports.BackendClient,
	queries *query.Client,
	checkout ports.CheckoutService,
	publicURL string,
	logger zerolog.Logger,
) *WizardService {
	return &WizardService{
		repo:      repo,
		backend:   backend,
		queries:   queries,
		checkout:  checkout,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
		now:       time.Now,
	}
}

func (s *WizardService) load(ctx context.Context, id domain.Identity, kind domain.WizardKind) (*domain.Wizard, domain.WizardDefinition, error) {
	if err := requireIdentity(id); err != nil {
		return nil, domain.WizardDefinition{}, err
	}
	def, err := domain.DefinitionFor(kind)
	if err != nil {
		return nil, def, err
	}
	w, err := s.repo.Load(ctx, id.Principal, kind)
	if err != nil {
		return nil, def, err
	}
	if w == nil {
		w = domain.NewWizard(def)
	}
	return w, def, nil
}

func (s *WizardService) save(ctx context.Context, id domain.Identity, w *domain.Wizard, def domain.WizardDefinition, action string) (*ports.WizardView, error) {
	if err := s.repo.Save(ctx, id.Principal, w); err != nil {
		return nil, fmt.Errorf("save wizard: %w", err)
	}
	metrics.WizardTransitionsTotal.WithLabelValues(string(w.Kind), action).Inc()
	return view(w, def), nil
}

func view(w *domain.Wizard, def domain.WizardDefinition) *ports.WizardView {
	step := def.Steps[w.Step-1]
	return &ports.WizardView{
		Kind:       w.Kind,
		Step:       w.Step,
		TotalSteps: w.TotalSteps,
		StepName:   step.Name,
		StepTitle:  step.Title,
		Steps:      def.Steps,
		Fields:     maps.Clone(w.Fields),
		Options:    def.Options,
		CanGoBack:  w.Step > 1,
		CanSubmit:  w.IsFinal(),
		Output:     w.Output,
	}
}

func (s *WizardService) Get(ctx context.Context, id domain.Identity, kind domain.WizardKind) (*ports.WizardView, error) {
	w, def, err := s.load(ctx, id, kind)
	if err != nil {
		return nil, err
	}
	return view(w, def), nil
}

func (s *WizardService) Update(ctx context.Context, id domain.Identity, kind domain.WizardKind, fields map[string]string) (*ports.WizardView, error) {
	w, def, err := s.load(ctx, id, kind)
	if err != nil {
		return nil, err
	}
	if err := w.Set(def, fields); err != nil {
		return nil, err
	}
	return s.save(ctx, id, w, def, "update")
}

// Next is only offered by the app wizard; the blog generator advances
// through its input and payment actions.
func (s *WizardService) Next(ctx context.Context, id domain.Identity, kind domain.WizardKind) (*ports.WizardView, error) {
	if kind == domain.WizardBlog {
		return nil, fmt.Errorf("%w: blog generator advances through its actions", domain.ErrInvalidStep)
	}
	w, def, err := s.load(ctx, id, kind)
	if err != nil {
		return nil, err
	}
	w.Next()
	return s.save(ctx, id, w, def, "next")
}

func (s *WizardService) Back(ctx context.Context, id domain.Identity, kind domain.WizardKind) (*ports.WizardView, error) {
	w, def, err := s.load(ctx, id, kind)
	if err != nil {
		return nil, err
	}
	// The blog generator only steps back from payment to input; later
	// steps are left through Reset.
	if name := w.StepName(def); kind == domain.WizardBlog && name != "payment" {
		return nil, fmt.Errorf("%w: cannot go back from %q", domain.ErrInvalidStep, name)
	}
	w.Back()
	return s.save(ctx, id, w, def, "back")
}

func (s *WizardService) Reset(ctx context.Context, id domain.Identity, kind domain.WizardKind) (*ports.WizardView, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}
	def, err := domain.DefinitionFor(kind)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id.Principal, kind); err != nil {
		return nil, fmt.Errorf("reset wizard: %w", err)
	}
	metrics.WizardTransitionsTotal.WithLabelValues(string(kind), "reset").Inc()
	return view(domain.NewWizard(def), def), nil
}

// SubmitApp finishes the app wizard. Creating the app has no backend
// operation yet, so the wizard is cleared and the caller sent to the catalog.
func (s *WizardService) SubmitApp(ctx context.Context, id domain.Identity) (string, error) {
	w, _, err := s.load(ctx, id, domain.WizardApp)
	if err != nil {
		return "", err
	}
	if err := w.Submit(); err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, id.Principal, domain.WizardApp); err != nil {
		return "", fmt.Errorf("clear wizard: %w", err)
	}
	metrics.WizardTransitionsTotal.WithLabelValues(string(domain.WizardApp), "submit").Inc()
	s.logger.Info().Str("principal", id.Principal).Str("app_name", w.Fields["name"]).Msg("app wizard submitted")
	return "/apps", nil
}

func (s *WizardService) SubmitBlogInput(ctx context.Context, id domain.Identity, fields map[string]string) (*ports.WizardView, error) {
	w, def, err := s.load(ctx, id, domain.WizardBlog)
	if err != nil {
		return nil, err
	}
	if name := w.StepName(def); name != "input" {
		return nil, fmt.Errorf("%w: input submitted at step %q", domain.ErrInvalidStep, name)
	}
	if err := w.Set(def, fields); err != nil {
		return nil, err
	}
	if err := w.ValidateStep(def); err != nil {
		return nil, err
	}
	if err := w.GoTo(def, "payment"); err != nil {
		return nil, err
	}
	return s.save(ctx, id, w, def, "input")
}

func (s *WizardService) CheckoutBlog(ctx context.Context, id domain.Identity) (*domain.CheckoutSession, error) {
	w, def, err := s.load(ctx, id, domain.WizardBlog)
	if err != nil {
		return nil, err
	}
	if name := w.StepName(def); name != "payment" {
		return nil, fmt.Errorf("%w: checkout at step %q", domain.ErrInvalidStep, name)
	}
	return s.checkout.CreateSession(ctx, id,
		[]domain.ShoppingItem{domain.BlogGeneratorItem()},
		s.publicURL+"/payment-success",
		s.publicURL+"/payment-failure",
	)
}

// GenerateBlog checks that the payment session completed, produces the
// article and stores it with the caller's generated content.
func (s *WizardService) GenerateBlog(ctx context.Context, id domain.Identity, sessionID string) (*ports.WizardView, error) {
	w, def, err := s.load(ctx, id, domain.WizardBlog)
	if err != nil {
		return nil, err
	}
	if name := w.StepName(def); name != "payment" {
		return nil, fmt.Errorf("%w: generate at step %q", domain.ErrInvalidStep, name)
	}

	status, err := s.checkout.SessionStatus(ctx, id, sessionID)
	if err != nil {
		return nil, err
	}
	switch st := status.(type) {
	case domain.SessionComplete:
	case domain.SessionFailure:
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentIncomplete, st.Error)
	default:
		return nil, fmt.Errorf("%w: unexpected session status", domain.ErrPaymentIncomplete)
	}

	if err := w.GoTo(def, "generating"); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, id.Principal, w); err != nil {
		return nil, fmt.Errorf("save wizard: %w", err)
	}

	input := domain.BlogGeneratorInput{
		Topic:          strings.TrimSpace(w.Fields["topic"]),
		Tone:           w.Fields["tone"],
		TargetAudience: strings.TrimSpace(w.Fields["targetAudience"]),
	}
	output := domain.ComposeArticle(input)
	content := domain.GeneratedContent{
		AppID:     blogGeneratorAppID,
		Input:     input,
		Output:    output,
		Timestamp: s.now().UnixNano(),
	}

	_, err = query.Mutate(ctx, s.queries,
		query.MutationOptions{Scope: query.CallerScope(id), Invalidates: []string{query.KeyGeneratedContent}},
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.backend.SaveGeneratedContent(ctx, id, content)
		})
	if err != nil {
		// Paid but not generated: return to payment so generation can be retried.
		_ = w.GoTo(def, "payment")
		if saveErr := s.repo.Save(context.WithoutCancel(ctx), id.Principal, w); saveErr != nil {
			s.logger.Error().Err(saveErr).Str("principal", id.Principal).Msg("wizard rollback failed")
		}
		return nil, wrap("save generated content", err)
	}

	w.Output = &output
	if err := w.GoTo(def, "output"); err != nil {
		return nil, err
	}
	s.logger.Info().Str("principal", id.Principal).Uint64("word_count", output.WordCount).Msg("blog generated")
	return s.save(ctx, id, w, def, "generate")
}
