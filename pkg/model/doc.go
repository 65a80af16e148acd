// Package model defines the types shared by the validator, the form controller
// and the presentation adapters. FieldValues and ErrorMap are plain string maps
// keyed by field name; Snapshot and Submission are detached copies that callers
// may keep without observing later mutations. A Definition describes the steps
// of a form declaratively. Validation rules reuse canonical identifiers
// (required, minLength, maxLength, pattern) with string parameters so that
// definitions stay easy to author in YAML and deterministic to serialise.
package model
