package definition

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/validation"
)

var (
	// ErrNoSteps is returned for definitions without steps.
	ErrNoSteps = errors.New("definition: at least one step is required")
	// ErrEmptyStep is returned when a step declares no fields.
	ErrEmptyStep = errors.New("definition: step declares no fields")
	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("definition: duplicate field")
)

// Load reads and parses a definition from fsys.
func Load(fsys fs.FS, path string) (model.Definition, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return model.Definition{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFile reads and parses a definition from disk.
func LoadFile(path string) (model.Definition, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return model.Definition{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a YAML or JSON definition. name is used in error messages and
// as the fallback id.
func Parse(data []byte, name string) (model.Definition, error) {
	var def model.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return model.Definition{}, fmt.Errorf("definition: parse %s: %w", name, err)
	}
	if strings.TrimSpace(def.ID) == "" {
		def.ID = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	normalise(&def)
	if err := check(def); err != nil {
		return model.Definition{}, fmt.Errorf("%w (file %s)", err, name)
	}
	if _, err := validation.Compile(def); err != nil {
		return model.Definition{}, fmt.Errorf("definition: %s: %w", name, err)
	}
	return def, nil
}

func normalise(def *model.Definition) {
	def.ID = strings.TrimSpace(def.ID)
	def.Title = SanitizeMarkup(def.Title)
	for i := range def.Steps {
		step := &def.Steps[i]
		step.Title = SanitizeMarkup(step.Title)
		for j := range step.Fields {
			field := &step.Fields[j]
			field.Name = strings.TrimSpace(field.Name)
			field.Label = SanitizeMarkup(field.Label)
			field.Help = SanitizeMarkup(field.Help)
			field.Input = strings.ToLower(strings.TrimSpace(field.Input))
		}
	}
}

func check(def model.Definition) error {
	if len(def.Steps) == 0 {
		return ErrNoSteps
	}
	seen := make(map[string]int)
	for i, step := range def.Steps {
		if len(step.Fields) == 0 {
			return fmt.Errorf("%w: step %d", ErrEmptyStep, i+1)
		}
		for _, field := range step.Fields {
			if field.Name == "" {
				return fmt.Errorf("definition: step %d declares a field without a name", i+1)
			}
			if prev, exists := seen[field.Name]; exists {
				return fmt.Errorf("%w %q in steps %d and %d", ErrDuplicateField, field.Name, prev, i+1)
			}
			seen[field.Name] = i + 1
		}
	}
	return nil
}
