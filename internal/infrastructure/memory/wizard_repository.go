package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/peterbuiltwl/portal/internal/core/domain"
)

type WizardRepository struct {
	mu      sync.Mutex
	wizards map[string][]byte
}

func NewWizardRepository() *WizardRepository {
	return &WizardRepository{wizards: make(map[string][]byte)}
}

func (r *WizardRepository) Load(_ context.Context, principal string, kind domain.WizardKind) (*domain.Wizard, error) {
	r.mu.Lock()
	b, ok := r.wizards[key(principal, kind)]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var w domain.Wizard
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("decode wizard: %w", err)
	}
	return &w, nil
}

func (r *WizardRepository) Save(_ context.Context, principal string, w *domain.Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode wizard: %w", err)
	}
	r.mu.Lock()
	r.wizards[key(principal, w.Kind)] = b
	r.mu.Unlock()
	return nil
}

func (r *WizardRepository) Delete(_ context.Context, principal string, kinds ...domain.WizardKind) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range kinds {
		delete(r.wizards, key(principal, k))
	}
	return nil
}

func key(principal string, kind domain.WizardKind) string {
	return principal + ":" + string(kind)
}
