package validation

import (
	"github.com/goliatone/go-formwizard/pkg/model"
)

// Predicate reports whether a raw field value satisfies a constraint.
type Predicate func(value string) bool

// Check is a single (field, predicate, message) triple.
type Check struct {
	Field   string
	Test    Predicate
	Message string
}

// Validator maps a step and the current values to the failing fields.
type Validator interface {
	Validate(step model.StepIndex, values model.FieldValues) model.ErrorMap
}

// RuleSet holds the ordered checks for each step.
type RuleSet struct {
	steps map[model.StepIndex][]Check
}

// NewRuleSet builds a RuleSet from explicit per-step checks. The slices are
// copied.
func NewRuleSet(steps map[model.StepIndex][]Check) *RuleSet {
	rs := &RuleSet{steps: make(map[model.StepIndex][]Check, len(steps))}
	for step, checks := range steps {
		rs.steps[step] = append([]Check(nil), checks...)
	}
	return rs
}

// Validate runs the checks registered for step against values. Fields that do
// not belong to step are never inspected. The result is never nil.
func (rs *RuleSet) Validate(step model.StepIndex, values model.FieldValues) model.ErrorMap {
	errs := make(model.ErrorMap)
	if rs == nil {
		return errs
	}
	for _, check := range rs.steps[step] {
		if _, failed := errs[check.Field]; failed {
			continue
		}
		if check.Test == nil || check.Test(values[check.Field]) {
			continue
		}
		errs[check.Field] = check.Message
	}
	return errs
}

// Checks returns a copy of the checks registered for step.
func (rs *RuleSet) Checks(step model.StepIndex) []Check {
	if rs == nil {
		return nil
	}
	return append([]Check(nil), rs.steps[step]...)
}

// Func adapts a plain function to the Validator interface.
type Func func(step model.StepIndex, values model.FieldValues) model.ErrorMap

// Validate calls f.
func (f Func) Validate(step model.StepIndex, values model.FieldValues) model.ErrorMap {
	return f(step, values)
}
