package render

import (
	"github.com/goliatone/go-formwizard/pkg/model"
)

// FieldError is a single validation message bound to a field, ready for
// display.
type FieldError struct {
	Field   string `json:"field"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

// ErrorList orders the snapshot errors by the active step's field order.
// Errors for fields outside the active step follow in lexical order so that no
// message is lost.
func ErrorList(def model.Definition, snap model.Snapshot) []FieldError {
	if len(snap.Errors) == 0 {
		return nil
	}

	out := make([]FieldError, 0, len(snap.Errors))
	seen := make(map[string]struct{}, len(snap.Errors))

	if step, ok := def.Step(snap.Step); ok {
		for _, field := range step.Fields {
			message, failed := snap.Errors[field.Name]
			if !failed {
				continue
			}
			seen[field.Name] = struct{}{}
			out = append(out, FieldError{Field: field.Name, Label: field.DisplayLabel(), Message: message})
		}
	}

	for _, name := range snap.Errors.Fields() {
		if _, done := seen[name]; done {
			continue
		}
		label := name
		if field, ok := def.Field(name); ok {
			label = field.DisplayLabel()
		}
		out = append(out, FieldError{Field: name, Label: label, Message: snap.Errors[name]})
	}
	return out
}
