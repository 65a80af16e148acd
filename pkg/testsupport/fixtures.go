// Package testsupport holds fixtures shared by the package tests: the values
// of the canonical registration walk-through and small file helpers.
package testsupport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// RegistrationValues returns values that pass every step of the embedded
// registration form.
func RegistrationValues() model.FieldValues {
	return model.FieldValues{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@doe.com",
		"password":  "Strong1!",
	}
}

// RegistrationYAML is RegistrationValues in the values-file format.
const RegistrationYAML = `firstName: Jane
lastName: Doe
email: jane@doe.com
password: Strong1!
`

// WriteFile writes body to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// DecodeJSON unmarshals data into a T, failing the test with the raw payload
// on error.
func DecodeJSON[T any](t *testing.T, data []byte) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode json: %v\n%s", err, data)
	}
	return out
}

// AssertDiff fails the test when want and got differ.
func AssertDiff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
