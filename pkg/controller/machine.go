package controller

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/goliatone/go-formwizard/pkg/model"
)

const (
	eventAdvance = "advance"
	eventRetreat = "retreat"
	eventSubmit  = "submit"

	stateSubmitted = "submitted"
)

func stepState(step model.StepIndex) string {
	return fmt.Sprintf("step-%d", step)
}

// newMachine wires the step progression for a form with count steps: advance
// and retreat between neighbours, submit from the last step only.
func newMachine(count int, enter func(dst string)) *fsm.FSM {
	var events fsm.Events
	for i := 1; i < count; i++ {
		from, to := model.StepIndex(i), model.StepIndex(i+1)
		events = append(events,
			fsm.EventDesc{Name: eventAdvance, Src: []string{stepState(from)}, Dst: stepState(to)},
			fsm.EventDesc{Name: eventRetreat, Src: []string{stepState(to)}, Dst: stepState(from)},
		)
	}
	events = append(events, fsm.EventDesc{
		Name: eventSubmit,
		Src:  []string{stepState(model.StepIndex(count))},
		Dst:  stateSubmitted,
	})

	return fsm.NewFSM(
		stepState(model.FirstStep),
		events,
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				enter(e.Dst)
			},
		},
	)
}

func stepStates(count int) map[string]model.StepIndex {
	states := make(map[string]model.StepIndex, count)
	for i := 1; i <= count; i++ {
		states[stepState(model.StepIndex(i))] = model.StepIndex(i)
	}
	return states
}
