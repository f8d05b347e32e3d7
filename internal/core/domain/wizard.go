package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// WizardKind names a wizard definition.
type WizardKind string

const (
	WizardApp  WizardKind = "app-wizard"
	WizardBlog WizardKind = "blog-generator"
)

// WizardStep describes one step; Required fields must be non-empty to leave it forward.
type WizardStep struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Required []string `json:"required,omitempty"`
}

// WizardDefinition is the fixed, linear shape of a wizard.
type WizardDefinition struct {
	Kind    WizardKind          `json:"kind"`
	Steps   []WizardStep        `json:"steps"`
	Fields  []string            `json:"fields"`
	Options map[string][]string `json:"options,omitempty"`
}

var AppWizardDefinition = WizardDefinition{
	Kind: WizardApp,
	Steps: []WizardStep{
		{Name: "basic", Title: "Basic Information"},
		{Name: "input", Title: "Input Configuration"},
		{Name: "payment", Title: "Payment Setup"},
		{Name: "output", Title: "Output & Review"},
	},
	Fields: []string{"name", "description", "icon", "inputFields", "paymentModel", "price", "outputType"},
	Options: map[string][]string{
		"paymentModel": {"subscription", "one-time", "per-use", "free"},
		"outputType":   {"text", "pdf", "both"},
	},
}

var BlogGeneratorDefinition = WizardDefinition{
	Kind: WizardBlog,
	Steps: []WizardStep{
		{Name: "input", Title: "Input", Required: []string{"topic", "tone", "targetAudience"}},
		{Name: "payment", Title: "Payment"},
		{Name: "generating", Title: "AI Processing"},
		{Name: "output", Title: "Output"},
	},
	Fields: []string{"topic", "tone", "targetAudience"},
	Options: map[string][]string{
		"tone": {"professional", "casual", "friendly", "authoritative", "conversational", "inspirational"},
	},
}

// DefinitionFor returns the definition of a wizard kind.
func DefinitionFor(kind WizardKind) (WizardDefinition, error) {
	switch kind {
	case WizardApp:
		return AppWizardDefinition, nil
	case WizardBlog:
		return BlogGeneratorDefinition, nil
	default:
		return WizardDefinition{}, fmt.Errorf("%w: unknown wizard %q", ErrNotFound, kind)
	}
}

// Wizard is the state of a linear step-indexed form: Step is 1-based and
// always within [1, TotalSteps].
type Wizard struct {
	Kind       WizardKind           `json:"kind"`
	Step       int                  `json:"step"`
	TotalSteps int                  `json:"totalSteps"`
	Fields     map[string]string    `json:"fields"`
	Output     *BlogGeneratorOutput `json:"output,omitempty"`
}

// NewWizard starts a wizard at step 1 with empty fields.
func NewWizard(def WizardDefinition) *Wizard {
	fields := make(map[string]string, len(def.Fields))
	for _, f := range def.Fields {
		fields[f] = ""
	}
	return &Wizard{Kind: def.Kind, Step: 1, TotalSteps: len(def.Steps), Fields: fields}
}

// Next moves one step forward, saturating at the final step.
func (w *Wizard) Next() int {
	w.Step = clampStep(w.Step+1, w.TotalSteps)
	return w.Step
}

// Back moves one step backward, saturating at step 1.
func (w *Wizard) Back() int {
	w.Step = clampStep(w.Step-1, w.TotalSteps)
	return w.Step
}

// GoTo jumps to a step by name.
func (w *Wizard) GoTo(def WizardDefinition, name string) error {
	for i, s := range def.Steps {
		if s.Name == name {
			w.Step = i + 1
			return nil
		}
	}
	return fmt.Errorf("%w: no step %q", ErrInvalidStep, name)
}

func (w *Wizard) IsFinal() bool { return w.Step == w.TotalSteps }

// StepName returns the name of the current step.
func (w *Wizard) StepName(def WizardDefinition) string {
	return def.Steps[clampStep(w.Step, len(def.Steps))-1].Name
}

// Set merges field values. Unknown fields and values outside a field's
// option list are rejected without modifying the wizard.
func (w *Wizard) Set(def WizardDefinition, values map[string]string) error {
	for k, v := range values {
		if !slices.Contains(def.Fields, k) {
			return Invalid(fmt.Sprintf("unknown field %q", k))
		}
		if opts, ok := def.Options[k]; ok && v != "" && !slices.Contains(opts, v) {
			return Invalid(fmt.Sprintf("%s must be one of: %s", k, strings.Join(opts, ", ")))
		}
	}
	if w.Fields == nil {
		w.Fields = make(map[string]string, len(values))
	}
	maps.Copy(w.Fields, values)
	return nil
}

// ValidateStep checks the required fields of the current step.
func (w *Wizard) ValidateStep(def WizardDefinition) error {
	step := def.Steps[clampStep(w.Step, len(def.Steps))-1]
	for _, f := range step.Required {
		if strings.TrimSpace(w.Fields[f]) == "" {
			return Invalid("Please fill in all fields")
		}
	}
	return nil
}

// Submit is only reachable from the final step.
func (w *Wizard) Submit() error {
	if !w.IsFinal() {
		return fmt.Errorf("%w: submit from step %d of %d", ErrInvalidStep, w.Step, w.TotalSteps)
	}
	return nil
}

func clampStep(step, total int) int {
	return max(1, min(step, total))
}
