// Package validation implements the per-step field validator. A RuleSet maps
// each step to an ordered list of checks; Validate evaluates only the checks
// registered for the requested step and reports at most one message per
// field, taken from the first check that fails. Validation is pure: a RuleSet
// is immutable once compiled and may be shared between sessions.
package validation
