package model

import (
	"maps"
	"sort"
)

// StepIndex identifies the active step. Steps are numbered from 1.
type StepIndex int

// FirstStep is the step every session starts on.
const FirstStep StepIndex = 1

// FieldValues maps field names to their current raw input.
type FieldValues map[string]string

// Clone returns a detached copy of the values.
func (v FieldValues) Clone() FieldValues {
	out := make(FieldValues, len(v))
	maps.Copy(out, v)
	return out
}

// Names returns the field names in lexical order.
func (v FieldValues) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrorMap maps field names to a single human-readable message. An empty map
// means the step it was computed for is valid.
type ErrorMap map[string]string

// Clone returns a detached copy of the errors. The copy is never nil.
func (e ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(e))
	maps.Copy(out, e)
	return out
}

// Empty reports whether no field failed validation.
func (e ErrorMap) Empty() bool {
	return len(e) == 0
}

// Fields returns the failing field names in lexical order.
func (e ErrorMap) Fields() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot is the observable state of a session after an operation.
type Snapshot struct {
	SessionID string      `json:"sessionId"`
	Step      StepIndex   `json:"step"`
	StepCount int         `json:"stepCount"`
	Values    FieldValues `json:"values"`
	Errors    ErrorMap    `json:"errors"`
	Submitted bool        `json:"submitted"`
}

// IsFirst reports whether the snapshot sits on the first step.
func (s Snapshot) IsFirst() bool {
	return s.Step <= FirstStep
}

// IsLast reports whether the snapshot sits on the final step.
func (s Snapshot) IsLast() bool {
	return int(s.Step) >= s.StepCount
}

// Submission is the validated record handed to downstream collaborators once
// the final step passes.
type Submission struct {
	SessionID string      `json:"-"`
	Values    FieldValues `json:"values"`
}
