package controller

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// Observer receives the session snapshot after each operation that changed
// observable state.
type Observer func(model.Snapshot)

// SubmitHandler receives the validated record after a successful Submit.
type SubmitHandler func(model.Submission)

// Option configures a Controller.
type Option func(*Controller)

// WithValidator replaces the validator compiled from the definition.
func WithValidator(v validation.Validator) Option {
	return func(c *Controller) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers an observer. Observers run synchronously in
// registration order.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithSubmitHandler registers a handler for the submitted record.
func WithSubmitHandler(fn SubmitHandler) Option {
	return func(c *Controller) {
		if fn != nil {
			c.submitHandlers = append(c.submitHandlers, fn)
		}
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) Option {
	return func(c *Controller) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			c.session.id = trimmed
		}
	}
}

// WithValues pre-fills known fields. Unknown names are ignored.
func WithValues(values model.FieldValues) Option {
	return func(c *Controller) {
		for name, value := range values {
			if _, ok := c.session.values[name]; ok {
				c.session.values[name] = value
			}
		}
	}
}
