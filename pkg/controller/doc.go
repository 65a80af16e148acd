// Package controller owns a single form-filling session and exposes the
// transitions a presentation layer drives: UpdateField, Advance, Retreat and
// Submit. Forward transitions are gated by the validator for the active step;
// retreating never is. Every operation returns a Snapshot, and observers
// registered with WithObserver receive the same snapshot, so renderers decide
// for themselves when to redraw.
//
// Validation failures are not Go errors. They surface as the Errors map of
// the returned Snapshot and the transition is simply refused. The only error
// returns are programming mistakes such as updating an unknown field.
//
// A Controller is not safe for concurrent use. Each session belongs to one
// caller; create one Controller per session.
package controller
