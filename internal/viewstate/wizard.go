package viewstate

import (
	"encoding/json"
	"errors"
	"fmt"
)

// WizardStep is a stage of the marketplace upload wizard.
type WizardStep string

const (
	StepUpload       WizardStep = "upload"
	StepAIProcessing WizardStep = "ai-processing"
	StepPreview      WizardStep = "preview"
)

// ErrInvalidTransition is returned when a wizard move is not allowed from the current step.
var ErrInvalidTransition = errors.New("invalid wizard transition")

// Wizard is the three-step product upload flow. Every move is triggered by the
// user; nothing advances on its own and no product is ever stored.
type Wizard struct {
	step WizardStep
}

// NewWizard returns a wizard at the upload step.
func NewWizard() *Wizard {
	return &Wizard{step: StepUpload}
}

// Step returns the current stage.
func (w *Wizard) Step() WizardStep { return w.step }

// Continue moves upload -> ai-processing.
func (w *Wizard) Continue() error {
	return w.move(StepUpload, StepAIProcessing)
}

// Preview moves ai-processing -> preview.
func (w *Wizard) Preview() error {
	return w.move(StepAIProcessing, StepPreview)
}

// Back moves preview -> upload.
func (w *Wizard) Back() error {
	return w.move(StepPreview, StepUpload)
}

// CanPublish reports whether the wizard is at the preview step.
func (w *Wizard) CanPublish() bool { return w.step == StepPreview }

func (w *Wizard) move(from, to WizardStep) error {
	if w.step != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.step, to)
	}
	w.step = to
	return nil
}

func (w *Wizard) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Step WizardStep `json:"step"`
	}{w.step})
}
