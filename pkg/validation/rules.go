package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// Compile turns a Definition into a RuleSet. Rule order inside a field is
// preserved, and fields are checked in declaration order.
func Compile(def model.Definition) (*RuleSet, error) {
	steps := make(map[model.StepIndex][]Check, len(def.Steps))
	for i, step := range def.Steps {
		index := model.StepIndex(i + 1)
		for _, field := range step.Fields {
			for _, rule := range field.Rules {
				test, err := compileRule(rule)
				if err != nil {
					return nil, fmt.Errorf("validation: field %q: %w", field.Name, err)
				}
				steps[index] = append(steps[index], Check{
					Field:   field.Name,
					Test:    test,
					Message: ruleMessage(field, rule),
				})
			}
		}
	}
	return &RuleSet{steps: steps}, nil
}

// MustCompile is like Compile but panics on error. Useful for definitions
// embedded at build time.
func MustCompile(def model.Definition) *RuleSet {
	rs, err := Compile(def)
	if err != nil {
		panic(err)
	}
	return rs
}

func compileRule(rule model.Rule) (Predicate, error) {
	switch rule.Kind {
	case model.RuleRequired:
		return Required(), nil
	case model.RuleMinLength:
		n, err := intParam(rule, "value")
		if err != nil {
			return nil, err
		}
		return MinLength(n), nil
	case model.RuleMaxLength:
		n, err := intParam(rule, "value")
		if err != nil {
			return nil, err
		}
		return MaxLength(n), nil
	case model.RulePattern:
		expr := rule.Params["pattern"]
		if expr == "" {
			return nil, fmt.Errorf("rule %q requires a pattern", rule.Kind)
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", rule.Kind, err)
		}
		return Matches(re), nil
	default:
		return nil, fmt.Errorf("unknown rule kind %q", rule.Kind)
	}
}

func intParam(rule model.Rule, key string) (int, error) {
	raw := strings.TrimSpace(rule.Params[key])
	if raw == "" {
		return 0, fmt.Errorf("rule %q requires param %q", rule.Kind, key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("rule %q: invalid %s %q", rule.Kind, key, raw)
	}
	return n, nil
}

func ruleMessage(field model.Field, rule model.Rule) string {
	if rule.Message != "" {
		return rule.Message
	}
	if field.Message != "" {
		return field.Message
	}
	return field.DisplayLabel() + " is invalid"
}

// Required fails on the empty string.
func Required() Predicate {
	return func(value string) bool {
		return value != ""
	}
}

// MinLength fails when value has fewer than n runes.
func MinLength(n int) Predicate {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= n
	}
}

// MaxLength fails when value has more than n runes.
func MaxLength(n int) Predicate {
	return func(value string) bool {
		return utf8.RuneCountInString(value) <= n
	}
}

// Matches fails when re finds no match in value.
func Matches(re *regexp.Regexp) Predicate {
	return func(value string) bool {
		return re.MatchString(value)
	}
}
