package model

// Canonical rule kinds understood by the validator.
const (
	RuleRequired  = "required"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RulePattern   = "pattern"
)

// Input kinds hint presentation layers about how to collect a value.
const (
	InputText     = "text"
	InputEmail    = "email"
	InputPassword = "password"
)

// Rule is a single constraint applied to a field. Length limits encode their
// threshold in Params["value"]; pattern rules carry the expression in
// Params["pattern"]. Patterns are matched unanchored, so authors anchor them
// explicitly when the whole value must match. Message overrides the field's
// default message when set.
type Rule struct {
	Kind    string            `json:"kind" yaml:"kind"`
	Params  map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	Message string            `json:"message,omitempty" yaml:"message,omitempty"`
}

// Field is a single named input within a step.
type Field struct {
	Name    string `json:"name" yaml:"name"`
	Label   string `json:"label,omitempty" yaml:"label,omitempty"`
	Help    string `json:"help,omitempty" yaml:"help,omitempty"`
	Input   string `json:"input,omitempty" yaml:"input,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Rules   []Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// DisplayLabel returns the label, falling back to the field name.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// InputKind returns the input hint, defaulting to plain text.
func (f Field) InputKind() string {
	if f.Input == "" {
		return InputText
	}
	return f.Input
}

// Step groups the fields collected on one screen.
type Step struct {
	Title  string  `json:"title,omitempty" yaml:"title,omitempty"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Definition describes a complete multi-step form.
type Definition struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// StepCount returns the number of steps.
func (d Definition) StepCount() int {
	return len(d.Steps)
}

// Step returns the step at the given index and whether it exists.
func (d Definition) Step(index StepIndex) (Step, bool) {
	if index < FirstStep || int(index) > len(d.Steps) {
		return Step{}, false
	}
	return d.Steps[index-1], true
}

// FieldNames lists every field in declaration order across all steps.
func (d Definition) FieldNames() []string {
	var names []string
	for _, step := range d.Steps {
		for _, field := range step.Fields {
			names = append(names, field.Name)
		}
	}
	return names
}

// Field looks up a field by name across all steps.
func (d Definition) Field(name string) (Field, bool) {
	for _, step := range d.Steps {
		for _, field := range step.Fields {
			if field.Name == name {
				return field, true
			}
		}
	}
	return Field{}, false
}

// EmptyValues returns FieldValues seeded with an empty string for every field.
func (d Definition) EmptyValues() FieldValues {
	names := d.FieldNames()
	values := make(FieldValues, len(names))
	for _, name := range names {
		values[name] = ""
	}
	return values
}
