package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Action names a requested state-machine step. Actions arrive from external
// callers as strings, so the type is string-backed rather than an int enum.
type Action string

const (
	// ActionStartPicking requests Open -> Picking.
	ActionStartPicking Action = "start_picking"

	// ActionStartPacking requests Picking -> Packing.
	ActionStartPacking Action = "start_packing"

	// ActionMoveToDispatchReady requests Packing -> DispatchReady.
	// The only action that requires allocation input.
	ActionMoveToDispatchReady Action = "move_to_dispatch_ready"

	// ActionCompleteDispatch requests DispatchReady -> Completed or
	// PartiallyCompleted.
	ActionCompleteDispatch Action = "complete_dispatch"
)

func getValidActions() map[Action]struct{} {
	return map[Action]struct{}{
		ActionStartPicking:        {},
		ActionStartPacking:        {},
		ActionMoveToDispatchReady: {},
		ActionCompleteDispatch:    {},
	}
}

// Validate checks that the action is one of the four defined fulfillment actions.
func (a Action) Validate() error {
	if _, ok := getValidActions()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"action is invalid",
			fmt.Errorf("%q is not a valid fulfillment action", string(a)),
		)
	}
	return nil
}

// String returns the wire name of the action.
func (a Action) String() string {
	return string(a)
}
