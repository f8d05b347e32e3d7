package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

const wizardTTL = 24 * time.Hour

// WizardRepository persists in-progress wizards.
// Key format: wizard:<principal>:<kind>
type WizardRepository struct {
	client *redis.Client
}

func NewWizardRepository(client *redis.Client) *WizardRepository {
	return &WizardRepository{client: client}
}

func (r *WizardRepository) Load(ctx context.Context, principal string, kind domain.WizardKind) (*domain.Wizard, error) {
	b, err := r.client.Get(ctx, r.key(principal, kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load wizard: %w", err)
	}

	var w domain.Wizard
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("decode wizard: %w", err)
	}
	return &w, nil
}

func (r *WizardRepository) Save(ctx context.Context, principal string, w *domain.Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode wizard: %w", err)
	}
	return r.client.Set(ctx, r.key(principal, w.Kind), b, wizardTTL).Err()
}

func (r *WizardRepository) Delete(ctx context.Context, principal string, kinds ...domain.WizardKind) error {
	if len(kinds) == 0 {
		return nil
	}
	keys := make([]string, len(kinds))
	for i, k := range kinds {
		keys[i] = r.key(principal, k)
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *WizardRepository) key(principal string, kind domain.WizardKind) string {
	return fmt.Sprintf("wizard:%s:%s", principal, kind)
}
