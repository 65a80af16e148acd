package tui

import "go.uber.org/zap"

// Theme captures optional prefixes the runner applies when printing messages.
// Keep minimal to avoid coupling the step loop to ANSI specifics.
type Theme struct {
	StepPrefix  string
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme is used when no theme is configured.
var DefaultTheme = Theme{
	StepPrefix:  "==> ",
	InfoPrefix:  "",
	ErrorPrefix: "  ! ",
}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithConfirmSubmit asks for confirmation before submitting the final step.
func WithConfirmSubmit(confirm bool) Option {
	return func(r *Runner) {
		r.confirmSubmit = confirm
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}
