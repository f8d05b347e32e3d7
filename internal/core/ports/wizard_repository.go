package ports

import (
	"context"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

// WizardRepository keeps the in-progress wizard state of each principal.
type WizardRepository interface {
	// Load returns nil, nil when the principal has no wizard of this kind.
	Load(ctx context.Context, principal string, kind domain.WizardKind) (*domain.Wizard, error)
	Save(ctx context.Context, principal string, w *domain.Wizard) error
	Delete(ctx context.Context, principal string, kinds ...domain.WizardKind) error
}
