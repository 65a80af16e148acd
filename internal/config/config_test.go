package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Config{
		OutputFormat: "json",
		LogLevel:     "info",
		LogFormat:    "console",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"FORMWIZARD_DEFINITION":     "forms/signup.yaml",
		"FORMWIZARD_OUTPUT":         " Pretty ",
		"FORMWIZARD_LOG_LEVEL":      "debug",
		"FORMWIZARD_LOG_FORMAT":     "JSON",
		"FORMWIZARD_CONFIRM_SUBMIT": "true",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Config{
		DefinitionPath: "forms/signup.yaml",
		OutputFormat:   "pretty",
		LogLevel:       "debug",
		LogFormat:      "json",
		ConfirmSubmit:  true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_InvalidBool(t *testing.T) {
	if _, err := Parse(map[string]string{"FORMWIZARD_CONFIRM_SUBMIT": "maybe"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wizard.env")
	if err := os.WriteFile(path, []byte("FORMWIZARD_OUTPUT=form\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("FORMWIZARD_OUTPUT", "")
	os.Unsetenv("FORMWIZARD_OUTPUT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputFormat != "form" {
		t.Fatalf("expected dotenv output format, got %q", cfg.OutputFormat)
	}
}

func TestLoad_MissingDotenvIsIgnored(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("expected missing dotenv to be ignored, got %v", err)
	}
}
