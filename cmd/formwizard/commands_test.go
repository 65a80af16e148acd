package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formwizard/pkg/testsupport"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FORMWIZARD_LOG_LEVEL", "error")
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(testsupport.Context())
	return stdout.String(), err
}

func writeValues(t *testing.T, body string) string {
	t.Helper()
	return testsupport.WriteFile(t, "values.yaml", body)
}

type snapshotView struct {
	Step      int               `json:"step"`
	Values    map[string]string `json:"values"`
	Errors    []map[string]any  `json:"errors"`
	Submitted bool              `json:"submitted"`
}

func TestValidate_Submits(t *testing.T) {
	path := writeValues(t, testsupport.RegistrationYAML)
	out, err := execute(t, "validate", path)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	view := testsupport.DecodeJSON[snapshotView](t, []byte(out))
	if !view.Submitted || view.Step != 3 {
		t.Fatalf("expected submitted snapshot at step 3, got %+v", view)
	}
	if view.Values["password"] != "" {
		t.Fatalf("expected password to be masked, got %q", view.Values["password"])
	}
}

func TestValidate_StopsAtFirstInvalidStep(t *testing.T) {
	path := writeValues(t, `
firstName: Jane
lastName: Doe
email: jane.doe.com
`)
	out, err := execute(t, "validate", path)
	if !errors.Is(err, errNotSubmitted) {
		t.Fatalf("expected errNotSubmitted, got %v", err)
	}
	view := testsupport.DecodeJSON[snapshotView](t, []byte(out))
	if view.Submitted || view.Step != 2 {
		t.Fatalf("expected refusal at step 2, got %+v", view)
	}
	if len(view.Errors) != 1 || view.Errors[0]["message"] != "Email address is invalid" {
		t.Fatalf("unexpected errors %v", view.Errors)
	}
}

func TestValidate_UnknownField(t *testing.T) {
	path := writeValues(t, "nickname: jd\n")
	if _, err := execute(t, "validate", path); err == nil || !strings.Contains(err.Error(), "nickname") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestRender_HTMLStep(t *testing.T) {
	path := writeValues(t, "firstName: Jane\nlastName: Doe\n")
	out, err := execute(t, "render", "--step", "2", "--values", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `data-step="2"`) || !strings.Contains(out, `name="email"`) {
		t.Fatalf("expected step 2 markup, got:\n%s", out)
	}
}

func TestRender_StopsWhereValidationRefuses(t *testing.T) {
	out, err := execute(t, "render", "--step", "3", "--format", "json")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	view := testsupport.DecodeJSON[snapshotView](t, []byte(out))
	if view.Step != 1 || len(view.Errors) != 2 {
		t.Fatalf("expected step 1 with two errors, got %+v", view)
	}
}

func TestRender_StepOutOfRange(t *testing.T) {
	if _, err := execute(t, "render", "--step", "4"); err == nil {
		t.Fatalf("expected range error")
	}
}

func TestSchema(t *testing.T) {
	out, err := execute(t, "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	doc := testsupport.DecodeJSON[struct {
		Required []string `json:"required"`
	}](t, []byte(out))
	testsupport.AssertDiff(t, []string{"firstName", "lastName", "email", "password"}, doc.Required)
}

func TestDefinitionFlag(t *testing.T) {
	path := testsupport.WriteFile(t, "newsletter.yaml", `
title: Newsletter
steps:
  - title: Subscribe
    fields:
      - name: email
        input: email
        message: Email address is invalid
        rules:
          - kind: required
`)
	values := writeValues(t, "email: a@b.co\n")
	out, err := execute(t, "--definition", path, "validate", values)
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"form": "newsletter"`) {
		t.Fatalf("expected newsletter form id, got:\n%s", out)
	}
}
