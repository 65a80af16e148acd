package formwizard

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/goliatone/go-formwizard/pkg/controller"
	"github.com/goliatone/go-formwizard/pkg/definition"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/render"
	"github.com/goliatone/go-formwizard/pkg/renderers/html"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

// Aliases re-exported so simple callers only import the root package.
type (
	Controller  = controller.Controller
	Option      = controller.Option
	Definition  = model.Definition
	Snapshot    = model.Snapshot
	Submission  = model.Submission
	FieldValues = model.FieldValues
	ErrorMap    = model.ErrorMap
	StepIndex   = model.StepIndex
)

// Controller options re-exported from pkg/controller.
var (
	WithLogger        = controller.WithLogger
	WithObserver      = controller.WithObserver
	WithSubmitHandler = controller.WithSubmitHandler
	WithSessionID     = controller.WithSessionID
	WithValues        = controller.WithValues
	WithValidator     = controller.WithValidator
)

// New starts a session over the embedded registration form.
func New(options ...Option) (*Controller, error) {
	return controller.New(definition.Default(), options...)
}

// NewFromFile starts a session over the form definition stored at path.
func NewFromFile(path string, options ...Option) (*Controller, error) {
	def, err := definition.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return controller.New(def, options...)
}

// Validate checks values against one step of the embedded registration form
// without creating a session.
func Validate(step StepIndex, values FieldValues) ErrorMap {
	return defaultRules().Validate(step, values)
}

// EmbeddedDefinitions exposes the bundled form definitions so callers can
// load them by name or copy them as a starting point.
func EmbeddedDefinitions() fs.FS {
	return definition.EmbeddedFS()
}

// Renderers returns a registry holding the built-in JSON and HTML renderers.
func Renderers() (*render.Registry, error) {
	page, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("formwizard: html renderer: %w", err)
	}
	return render.NewRegistry(render.NewJSON(), page), nil
}

var defaultRules = sync.OnceValue(func() *validation.RuleSet {
	return validation.MustCompile(definition.Default())
})
