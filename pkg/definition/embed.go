package definition

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/goliatone/go-formwizard/pkg/model"
)

//go:embed forms/*.yaml
var embeddedForms embed.FS

// DefaultName is the embedded definition used when no file is configured.
const DefaultName = "registration.yaml"

var (
	defaultOnce sync.Once
	defaultDef  model.Definition
)

// EmbeddedFS returns the bundled form definitions.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedForms, "forms")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return sub
}

// Default returns the embedded registration form: first and last name, then
// email, then password.
func Default() model.Definition {
	defaultOnce.Do(func() {
		def, err := Load(EmbeddedFS(), DefaultName)
		if err != nil {
			panic(err)
		}
		defaultDef = def
	})
	return clone(defaultDef)
}

func clone(def model.Definition) model.Definition {
	out := def
	out.Steps = make([]model.Step, len(def.Steps))
	for i, step := range def.Steps {
		out.Steps[i] = step
		out.Steps[i].Fields = make([]model.Field, len(step.Fields))
		for j, field := range step.Fields {
			out.Steps[i].Fields[j] = field
			out.Steps[i].Fields[j].Rules = append([]model.Rule(nil), field.Rules...)
		}
	}
	return out
}
