// Package workflow drives a single audit session through its lifecycle:
// editing the seven form parts in order, collecting both signatures, and
// finalizing into an immutable result. All transitions are explicit named
// operations with preconditions; there is no path from editing straight to
// completed.
package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/Techy233/FSE1/internal/checklist"
	"github.com/Techy233/FSE1/internal/models"
	"github.com/Techy233/FSE1/internal/scoring"
)

// Session phases.
const (
	PhaseEditing            = "EDITING"
	PhaseAwaitingSignatures = "AWAITING_SIGNATURES"
	PhaseCompleted          = "COMPLETED"
)

var (
	// ErrInvalidTransition is returned when an operation is called from the
	// wrong phase.
	ErrInvalidTransition = errors.New("workflow: invalid transition")
	// ErrPreconditionNotMet is returned by Finalize when either signature is
	// missing. Surfaced to the inspector as "both signatures required".
	ErrPreconditionNotMet = errors.New("workflow: both signatures required")
)

// Step identifies one part of the audit form in traversal order. The
// background step is unscored; the remaining steps are the scored checklist
// sections.
type Step string

// StepBackground is Part 1 of the form. The scored steps reuse the
// checklist section identifiers.
const StepBackground Step = "background"

// Steps returns the fixed traversal order: background first, then the six
// scored sections.
func Steps() []Step {
	steps := make([]Step, 0, 1+len(checklist.Definitions()))
	steps = append(steps, StepBackground)
	for _, def := range checklist.Definitions() {
		steps = append(steps, Step(def.Section))
	}
	return steps
}

// Section returns the checklist section a step corresponds to, or false for
// the background step.
func (s Step) Section() (checklist.Section, bool) {
	if s == StepBackground {
		return "", false
	}
	return checklist.Section(s), true
}

// Notifier delivers the completion summary after a successful finalize.
// Implementations must be non-blocking; delivery failure must never be
// reported as a finalize error.
type Notifier interface {
	Notify(result *models.Result)
}

// Controller is the section-traversal state machine for one audit session.
// It owns the assessment model and, once completed, the result.
type Controller struct {
	model    *models.Assessment
	steps    []Step
	index    int
	phase    string
	result   *models.Result
	notifier Notifier
}

// NewController starts a session at the background step with a fresh, empty
// assessment. notifier may be nil.
func NewController(notifier Notifier) *Controller {
	return &Controller{
		model:    models.NewAssessment(),
		steps:    Steps(),
		phase:    PhaseEditing,
		notifier: notifier,
	}
}

// Model returns the assessment being edited.
func (c *Controller) Model() *models.Assessment {
	return c.model
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() string {
	return c.phase
}

// Result returns the finalized result, or nil before completion.
func (c *Controller) Result() *models.Result {
	return c.result
}

// Current returns the step being edited and its index.
func (c *Controller) Current() (Step, int) {
	return c.steps[c.index], c.index
}

// Next advances to the following step. At the last step it is a no-op, not
// an error.
func (c *Controller) Next() error {
	if c.phase != PhaseEditing {
		return fmt.Errorf("%w: next is only valid while editing", ErrInvalidTransition)
	}
	if c.index < len(c.steps)-1 {
		c.index++
	}
	return nil
}

// Previous moves back one step, clamping at the background step.
func (c *Controller) Previous() error {
	if c.phase != PhaseEditing {
		return fmt.Errorf("%w: previous is only valid while editing", ErrInvalidTransition)
	}
	if c.index > 0 {
		c.index--
	}
	return nil
}

// Select jumps directly to a named step, mirroring the form's tab bar.
func (c *Controller) Select(step Step) error {
	if c.phase != PhaseEditing {
		return fmt.Errorf("%w: select is only valid while editing", ErrInvalidTransition)
	}
	for i, s := range c.steps {
		if s == step {
			c.index = i
			return nil
		}
	}
	return fmt.Errorf("%w: unknown step %q", ErrInvalidTransition, step)
}

// AtLastStep reports whether the session is on the final form part.
func (c *Controller) AtLastStep() bool {
	return c.index == len(c.steps)-1
}

// RequestSignatures moves from the last editing step to signature
// collection.
func (c *Controller) RequestSignatures() error {
	if c.phase != PhaseEditing || !c.AtLastStep() {
		return fmt.Errorf("%w: signatures can only be requested from the last section", ErrInvalidTransition)
	}
	c.phase = PhaseAwaitingSignatures
	return nil
}

// CancelSignatures abandons signature collection and returns to the last
// editing step. No data is discarded; captured signatures are kept.
func (c *Controller) CancelSignatures() error {
	if c.phase != PhaseAwaitingSignatures {
		return fmt.Errorf("%w: no signature collection in progress", ErrInvalidTransition)
	}
	c.phase = PhaseEditing
	c.index = len(c.steps) - 1
	return nil
}

// Finalize scores all six sections, classifies the total, freezes the model,
// and produces the immutable result. It either fully succeeds or leaves the
// session untouched. The notifier is invoked after the state transition;
// its outcome cannot undo completion.
func (c *Controller) Finalize() (*models.Result, error) {
	if c.phase != PhaseAwaitingSignatures {
		return nil, fmt.Errorf("%w: finalize requires signature collection", ErrInvalidTransition)
	}
	if !c.model.ReadyToFinalize() {
		return nil, ErrPreconditionNotMet
	}

	sections := make([]models.SectionScore, 0, len(checklist.Definitions()))
	total := 0
	for _, def := range checklist.Definitions() {
		earned, err := scoring.Section(def, c.model.BooleanAnswers(def.Section), c.model.Ratings(def.Section))
		if err != nil {
			return nil, fmt.Errorf("scoring section %s: %w", def.Section, err)
		}
		sections = append(sections, models.SectionScore{
			Section: def.Section,
			Title:   def.Title,
			Earned:  earned,
			Max:     def.Max(),
		})
		total += earned
	}

	cls, err := scoring.Classify(total)
	if err != nil {
		return nil, fmt.Errorf("classifying total: %w", err)
	}

	result := &models.Result{
		AssessmentID: c.model.ID,
		CompletedAt:  time.Now(),
		Background:   c.model.Background(),
		Signatures:   c.model.Signatures(),
		Sections:     sections,
		Total:        total,
		Stars:        cls.Stars,
		Tier:         cls.Tier,
	}

	c.model.Freeze()
	c.result = result
	c.phase = PhaseCompleted

	if c.notifier != nil {
		c.notifier.Notify(result)
	}

	return result, nil
}

// Reset discards the completed assessment and its result and starts a fresh
// session at the background step. Only valid after completion.
func (c *Controller) Reset() error {
	if c.phase != PhaseCompleted {
		return fmt.Errorf("%w: reset is only valid after completion", ErrInvalidTransition)
	}
	c.model = models.NewAssessment()
	c.result = nil
	c.index = 0
	c.phase = PhaseEditing
	return nil
}
