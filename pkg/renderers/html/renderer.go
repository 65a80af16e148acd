// Package html renders the active step of a session as an HTML form using
// pongo2 templates. Values and messages are autoescaped; titles, labels and
// help text are emitted as-is because definitions sanitise them on load.
package html

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formwizard/pkg/model"
)

//go:embed templates/step.html
var stepTemplate string

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	source    string
	tpl       *pongo2.Template
	idPrefix  string
	showTitle bool
}

// Option configures the renderer.
type Option func(*Renderer)

// WithTemplate replaces the bundled step template.
func WithTemplate(source string) Option {
	return func(r *Renderer) {
		if source != "" {
			r.source = source
		}
	}
}

// WithIDPrefix namespaces generated input ids, for pages hosting several
// forms.
func WithIDPrefix(prefix string) Option {
	return func(r *Renderer) {
		r.idPrefix = prefix
	}
}

// WithFormTitle emits the definition title above the step.
func WithFormTitle(show bool) Option {
	return func(r *Renderer) {
		r.showTitle = show
	}
}

// New compiles the template and returns the renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{source: stepTemplate, idPrefix: "field-"}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	tpl, err := pongo2.FromString(r.source)
	if err != nil {
		return nil, fmt.Errorf("html: compile template: %w", err)
	}
	r.tpl = tpl
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports text/html.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

type fieldView struct {
	ID    string
	Name  string
	Label string
	Help  string
	Type  string
	Value string
	Error string
}

// Render produces the markup for the snapshot's active step.
func (r *Renderer) Render(ctx context.Context, def model.Definition, snap model.Snapshot) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	step, ok := def.Step(snap.Step)
	if !ok {
		return nil, fmt.Errorf("html: step %d out of range", snap.Step)
	}

	fields := make([]fieldView, 0, len(step.Fields))
	for _, field := range step.Fields {
		view := fieldView{
			ID:    r.idPrefix + field.Name,
			Name:  field.Name,
			Label: field.DisplayLabel(),
			Help:  field.Help,
			Type:  field.InputKind(),
			Value: snap.Values[field.Name],
			Error: snap.Errors[field.Name],
		}
		if view.Type == model.InputPassword {
			view.Value = ""
		}
		fields = append(fields, view)
	}

	data := pongo2.Context{
		"form":       def.ID,
		"session":    snap.SessionID,
		"step":       int(snap.Step),
		"step_count": snap.StepCount,
		"title":      step.Title,
		"fields":     fields,
		"first":      snap.IsFirst(),
		"last":       snap.IsLast(),
		"submitted":  snap.Submitted,
	}
	if r.showTitle {
		data["form_title"] = def.Title
	}

	out, err := r.tpl.ExecuteBytes(data)
	if err != nil {
		return nil, fmt.Errorf("html: execute template: %w", err)
	}
	return out, nil
}
