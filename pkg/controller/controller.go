package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

type session struct {
	id        string
	step      model.StepIndex
	values    model.FieldValues
	errors    model.ErrorMap
	submitted bool
}

// Controller drives one session through the steps of a definition.
type Controller struct {
	def            model.Definition
	validator      validation.Validator
	machine        *fsm.FSM
	states         map[string]model.StepIndex
	session        session
	observers      []Observer
	submitHandlers []SubmitHandler
	logger         *zap.SugaredLogger
}

// New starts a session on the first step with every field empty.
func New(def model.Definition, options ...Option) (*Controller, error) {
	count := def.StepCount()
	if count == 0 {
		return nil, ErrNoSteps
	}

	c := &Controller{
		def:    def,
		states: stepStates(count),
		logger: zap.NewNop().Sugar(),
		session: session{
			id:     uuid.NewString(),
			step:   model.FirstStep,
			values: def.EmptyValues(),
			errors: make(model.ErrorMap),
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.validator == nil {
		rs, err := validation.Compile(def)
		if err != nil {
			return nil, fmt.Errorf("controller: %w", err)
		}
		c.validator = rs
	}

	c.logger = c.logger.With("session", c.session.id, "form", def.ID)
	c.machine = newMachine(count, c.enter)
	return c, nil
}

// Definition returns the definition the session follows.
func (c *Controller) Definition() model.Definition {
	return c.def
}

// Snapshot returns the current observable state.
func (c *Controller) Snapshot() model.Snapshot {
	return model.Snapshot{
		SessionID: c.session.id,
		Step:      c.session.step,
		StepCount: c.def.StepCount(),
		Values:    c.session.values.Clone(),
		Errors:    c.session.errors.Clone(),
		Submitted: c.session.submitted,
	}
}

// UpdateField stores value for name without validating it.
func (c *Controller) UpdateField(name, value string) (model.Snapshot, error) {
	if c.session.submitted {
		return c.Snapshot(), ErrSubmitted
	}
	if _, ok := c.session.values[name]; !ok {
		return c.Snapshot(), fmt.Errorf("%w %q", ErrUnknownField, name)
	}
	c.session.values[name] = value
	return c.notify(), nil
}

// Advance moves to the next step when the active step validates. On failure
// the step is kept and Errors holds the validator output. On the last step
// Advance does nothing; the session ends through Submit instead.
func (c *Controller) Advance() model.Snapshot {
	if c.session.submitted || !c.machine.Can(eventAdvance) {
		return c.Snapshot()
	}

	errs := c.validate()
	if len(errs) > 0 {
		c.refuse(eventAdvance, errs)
		return c.notify()
	}

	c.session.errors = make(model.ErrorMap)
	c.fire(eventAdvance)
	return c.notify()
}

// Retreat moves to the previous step and clears Errors. It never validates.
// On the first step it does nothing.
func (c *Controller) Retreat() model.Snapshot {
	if c.session.submitted || !c.machine.Can(eventRetreat) {
		return c.Snapshot()
	}

	c.session.errors = make(model.ErrorMap)
	c.fire(eventRetreat)
	return c.notify()
}

// Submit validates the active step and, on the last step, ends the session
// with a Submission. A nil Submission means nothing was submitted; the
// returned snapshot carries the reasons.
func (c *Controller) Submit() (model.Snapshot, *model.Submission) {
	if c.session.submitted {
		return c.Snapshot(), nil
	}

	errs := c.validate()
	if len(errs) > 0 {
		c.refuse(eventSubmit, errs)
		return c.notify(), nil
	}

	c.session.errors = make(model.ErrorMap)
	if !c.machine.Can(eventSubmit) {
		c.logger.Debugw("submit refused before final step", "step", c.session.step)
		return c.notify(), nil
	}
	if !c.fire(eventSubmit) {
		return c.notify(), nil
	}

	submission := model.Submission{
		SessionID: c.session.id,
		Values:    c.session.values.Clone(),
	}
	c.logger.Infow("form submitted", "fields", submission.Values.Names())
	for _, handler := range c.submitHandlers {
		handler(model.Submission{SessionID: submission.SessionID, Values: submission.Values.Clone()})
	}
	return c.notify(), &submission
}

func (c *Controller) validate() model.ErrorMap {
	return c.validator.Validate(c.session.step, c.session.values.Clone())
}

func (c *Controller) refuse(event string, errs model.ErrorMap) {
	c.session.errors = errs.Clone()
	c.logger.Debugw("transition refused", "event", event, "step", c.session.step, "fields", errs.Fields())
}

func (c *Controller) fire(event string) bool {
	if err := c.machine.Event(context.Background(), event); err != nil {
		c.logger.Errorw("transition failed", "event", event, "state", c.machine.Current(), "error", err)
		return false
	}
	return true
}

func (c *Controller) enter(dst string) {
	if dst == stateSubmitted {
		c.session.submitted = true
		c.logger.Debugw("entered state", "state", dst)
		return
	}
	if step, ok := c.states[dst]; ok {
		c.session.step = step
	}
	c.logger.Debugw("entered state", "state", dst, "step", c.session.step)
}

func (c *Controller) notify() model.Snapshot {
	snap := c.Snapshot()
	for _, fn := range c.observers {
		fn(snap)
	}
	return snap
}
