package render

import (
	"context"
	"encoding/json"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// JSONRenderer emits the snapshot as a JSON view model. Password inputs are
// blanked so the payload can be logged or echoed safely.
type JSONRenderer struct{}

// NewJSON returns the JSON snapshot renderer.
func NewJSON() *JSONRenderer {
	return &JSONRenderer{}
}

// Name reports the renderer identifier.
func (*JSONRenderer) Name() string {
	return "json"
}

// ContentType reports application/json.
func (*JSONRenderer) ContentType() string {
	return "application/json"
}

type jsonView struct {
	Form      string            `json:"form"`
	SessionID string            `json:"sessionId"`
	Step      int               `json:"step"`
	StepCount int               `json:"stepCount"`
	Title     string            `json:"title,omitempty"`
	Values    model.FieldValues `json:"values"`
	Errors    []FieldError      `json:"errors,omitempty"`
	Submitted bool              `json:"submitted"`
}

// Render marshals the snapshot.
func (*JSONRenderer) Render(ctx context.Context, def model.Definition, snap model.Snapshot) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	view := jsonView{
		Form:      def.ID,
		SessionID: snap.SessionID,
		Step:      int(snap.Step),
		StepCount: snap.StepCount,
		Values:    MaskSecrets(def, snap.Values),
		Errors:    ErrorList(def, snap),
		Submitted: snap.Submitted,
	}
	if step, ok := def.Step(snap.Step); ok {
		view.Title = step.Title
	}
	return json.MarshalIndent(view, "", "  ")
}

// MaskSecrets returns a copy of values with password inputs blanked.
func MaskSecrets(def model.Definition, values model.FieldValues) model.FieldValues {
	out := values.Clone()
	for name := range out {
		if field, ok := def.Field(name); ok && field.InputKind() == model.InputPassword {
			out[name] = ""
		}
	}
	return out
}
