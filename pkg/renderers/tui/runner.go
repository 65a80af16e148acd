// Package tui drives a form session from a terminal. The Runner prompts for
// the fields of the active step, shows validation messages inline and lets
// the user move back, forward or submit until the session produces a
// submission.
package tui

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/definition"
	"github.com/goliatone/go-formwizard/pkg/model"
)

const (
	actionBack   = "Back"
	actionNext   = "Next"
	actionSubmit = "Submit"
)

// Session is the subset of the form controller the runner drives.
type Session interface {
	Definition() model.Definition
	Snapshot() model.Snapshot
	UpdateField(name, value string) (model.Snapshot, error)
	Advance() model.Snapshot
	Retreat() model.Snapshot
	Submit() (model.Snapshot, *model.Submission)
}

// Runner implements the interactive step loop.
type Runner struct {
	driver        PromptDriver
	theme         Theme
	confirmSubmit bool
	logger        *zap.SugaredLogger
}

// New constructs a runner with defaults (survey driver on stdout).
func New(options ...Option) *Runner {
	r := &Runner{
		theme:  DefaultTheme,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Run prompts until the session submits, returning the submitted record.
// Prompt failures (including ErrAborted) end the loop and leave the session
// as it was.
func (r *Runner) Run(ctx context.Context, session Session) (model.Submission, error) {
	if ctx == nil {
		return model.Submission{}, errors.New("tui: context is required")
	}
	if session == nil {
		return model.Submission{}, ErrNoSession
	}
	def := session.Definition()

	for {
		if err := ctx.Err(); err != nil {
			return model.Submission{}, err
		}

		snap := session.Snapshot()
		if snap.Submitted {
			return model.Submission{}, errors.New("tui: session already submitted")
		}
		step, ok := def.Step(snap.Step)
		if !ok {
			return model.Submission{}, fmt.Errorf("tui: step %d out of range", snap.Step)
		}

		if err := r.info(ctx, r.theme.StepPrefix, fmt.Sprintf("Step %d/%d: %s", snap.Step, snap.StepCount, definition.PlainText(step.Title))); err != nil {
			return model.Submission{}, err
		}
		for _, field := range step.Fields {
			if err := r.promptField(ctx, session, field, snap); err != nil {
				return model.Submission{}, err
			}
		}

		sub, err := r.chooseAction(ctx, session, snap)
		if err != nil {
			return model.Submission{}, err
		}
		if sub != nil {
			return *sub, nil
		}
	}
}

func (r *Runner) promptField(ctx context.Context, session Session, field model.Field, snap model.Snapshot) error {
	label := definition.PlainText(field.DisplayLabel())
	if msg, failed := snap.Errors[field.Name]; failed {
		if err := r.info(ctx, r.theme.ErrorPrefix, msg); err != nil {
			return err
		}
	}

	cfg := InputConfig{
		Message: label,
		Help:    definition.PlainText(field.Help),
	}

	var (
		value string
		err   error
	)
	if field.InputKind() == model.InputPassword {
		value, err = r.driver.Password(ctx, cfg)
	} else {
		cfg.Default = snap.Values[field.Name]
		value, err = r.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}

	if _, err := session.UpdateField(field.Name, value); err != nil {
		return fmt.Errorf("tui: update %s: %w", field.Name, err)
	}
	return nil
}

func (r *Runner) chooseAction(ctx context.Context, session Session, snap model.Snapshot) (*model.Submission, error) {
	var actions []string
	if !snap.IsFirst() {
		actions = append(actions, actionBack)
	}
	if snap.IsLast() {
		actions = append(actions, actionSubmit)
	} else {
		actions = append(actions, actionNext)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      "Continue",
		Options:      actions,
		DefaultIndex: len(actions) - 1,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(actions) {
		return nil, fmt.Errorf("tui: invalid action index %d", idx)
	}

	switch actions[idx] {
	case actionBack:
		session.Retreat()
		return nil, nil
	case actionNext:
		next := session.Advance()
		if len(next.Errors) > 0 {
			r.logger.Debugw("step refused", "step", next.Step, "fields", next.Errors.Fields())
			return nil, r.info(ctx, r.theme.InfoPrefix, "Please correct the highlighted fields.")
		}
		return nil, nil
	default:
		if r.confirmSubmit {
			ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Submit the form?", Default: true})
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, nil
			}
		}
		next, sub := session.Submit()
		if sub == nil {
			r.logger.Debugw("submit refused", "step", next.Step, "fields", next.Errors.Fields())
			return nil, r.info(ctx, r.theme.InfoPrefix, "Please correct the highlighted fields.")
		}
		_ = r.info(ctx, r.theme.InfoPrefix, "Form successfully submitted!")
		return sub, nil
	}
}

func (r *Runner) info(ctx context.Context, prefix, msg string) error {
	return r.driver.Info(ctx, prefix+msg)
}
