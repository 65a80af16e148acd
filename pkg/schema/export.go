// Package schema describes the submitted record as an OpenAPI 3 schema so
// downstream collaborators (API gateways, clients generating request types)
// can share the form's constraints without importing this module.
package schema

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formwizard/pkg/definition"
	"github.com/goliatone/go-formwizard/pkg/model"
)

// Submission builds the object schema of a submission for def. Every field is
// a required string property. Length rules map to minLength/maxLength and
// the first pattern of a field becomes its pattern; further patterns are
// combined through allOf because a schema carries a single pattern.
func Submission(def model.Definition) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	root.Title = definition.PlainText(def.Title)
	for _, step := range def.Steps {
		for _, field := range step.Fields {
			root.WithProperty(field.Name, fieldSchema(field))
			root.Required = append(root.Required, field.Name)
		}
	}
	return root
}

// MarshalSubmission renders the submission schema as indented JSON.
func MarshalSubmission(def model.Definition) ([]byte, error) {
	return json.MarshalIndent(Submission(def), "", "  ")
}

func fieldSchema(field model.Field) *openapi3.Schema {
	prop := openapi3.NewStringSchema()
	prop.Title = definition.PlainText(field.DisplayLabel())
	prop.Description = strings.TrimSpace(field.Message)

	switch field.InputKind() {
	case model.InputEmail:
		prop.WithFormat("email")
	case model.InputPassword:
		prop.WithFormat("password")
		prop.WriteOnly = true
	}

	var minLen int64
	for _, rule := range field.Rules {
		switch rule.Kind {
		case model.RuleRequired:
			minLen = max(minLen, 1)
		case model.RuleMinLength:
			if n, ok := lengthParam(rule); ok {
				minLen = max(minLen, n)
			}
		case model.RuleMaxLength:
			if n, ok := lengthParam(rule); ok {
				prop.WithMaxLength(n)
			}
		case model.RulePattern:
			expr := rule.Params["pattern"]
			if expr == "" {
				continue
			}
			if prop.Pattern == "" {
				prop.WithPattern(expr)
				continue
			}
			prop.AllOf = append(prop.AllOf, openapi3.NewSchemaRef("", openapi3.NewStringSchema().WithPattern(expr)))
		}
	}
	if minLen > 0 {
		prop.WithMinLength(minLen)
	}
	return prop
}

func lengthParam(rule model.Rule) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(rule.Params["value"]), 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
