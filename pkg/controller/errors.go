package controller

import "errors"

var (
	// ErrUnknownField is returned when updating a field the definition does not
	// declare.
	ErrUnknownField = errors.New("controller: unknown field")
	// ErrSubmitted is returned when mutating a session that already submitted.
	ErrSubmitted = errors.New("controller: session already submitted")
	// ErrNoSteps is returned when the definition declares no steps.
	ErrNoSteps = errors.New("controller: definition has no steps")
)
