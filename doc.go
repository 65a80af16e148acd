// Package formwizard is the quick-start entry point for multi-step forms.
//
// A form is a sequence of steps, each owning a handful of fields. Values are
// edited freely, but forward progress through the steps is gated by the
// validator of the active step; going back is always allowed. Submitting at the
// final step yields the validated record.
//
//	wiz, err := formwizard.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	wiz.UpdateField("firstName", "Jane")
//	wiz.UpdateField("lastName", "Doe")
//	snap := wiz.Advance() // snap.Step == 2
//
// The building blocks live in sub-packages: pkg/validation (pure per-step
// validation), pkg/controller (session state machine), pkg/definition
// (declarative forms), and pkg/render plus pkg/renderers/* for presentation.
package formwizard
