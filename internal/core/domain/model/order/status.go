package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a warehouse order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Open ──> Picking ──> Packing ──> DispatchReady ──┬──> Completed
//	                                                 └──> PartiallyCompleted
//
// Completed and PartiallyCompleted are terminal: no outbound transitions exist.
// The branch at dispatch completion is decided by the remaining-items flag the
// order captured when it entered DispatchReady, not by re-reading product data.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when an order is first created from an
	// inbound order file or manual entry. Open orders await picking.
	Open

	// Picking indicates warehouse staff are collecting the ordered stock.
	Picking

	// Packing indicates collected stock is being divided among boxes.
	Packing

	// DispatchReady indicates packing passed validation and the boxed
	// order awaits dispatch completion.
	DispatchReady

	// Completed indicates the order was dispatched with every ordered
	// unit packed. This is a final state.
	Completed

	// PartiallyCompleted indicates the order was dispatched with a
	// nonzero remainder recorded at the DispatchReady transition.
	// This is a final state.
	PartiallyCompleted
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Open:               "Open",
		Picking:            "Picking",
		Packing:            "Packing",
		DispatchReady:      "DispatchReady",
		Completed:          "Completed",
		PartiallyCompleted: "PartiallyCompleted",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:               "Open",
		Picking:            "Picking",
		Packing:            "Packing",
		DispatchReady:      "DispatchReady",
		Completed:          "Completed",
		PartiallyCompleted: "PartiallyCompleted",
	}
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
// Display-label mapping (e.g. "Dispatch Ready") belongs to the presentation layer.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a canonical status name back into a Status.
// Returns an error for unknown names, including "Unknown".
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// IsTerminal reports whether the status permits no outbound transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == PartiallyCompleted
}

// StartPicking transitions the status to Picking.
//
// Valid transitions:
//   - Open -> Picking
//
// Returns:
//   - (Picking, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) StartPicking() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start picking", s.String()),
		)
	}

	return Picking, nil
}

// StartPacking transitions the status to Packing.
//
// Valid transitions:
//   - Picking -> Packing
//
// Returns:
//   - (Packing, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) StartPacking() (Status, error) {
	if s != Picking {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start packing", s.String()),
		)
	}

	return Packing, nil
}

// MoveToDispatchReady transitions the status to DispatchReady.
// The caller is responsible for allocation validation before performing
// this transition; the status machine only enforces the state progression.
//
// Valid transitions:
//   - Packing -> DispatchReady
//
// Returns:
//   - (DispatchReady, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) MoveToDispatchReady() (Status, error) {
	if s != Packing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to move to dispatch ready", s.String()),
		)
	}

	return DispatchReady, nil
}

// CompleteDispatch transitions the status to its terminal state.
// The branch is decided by hasRemainingItems, the flag captured when the
// order entered DispatchReady.
//
// Valid transitions:
//   - DispatchReady -> Completed          (no remaining items)
//   - DispatchReady -> PartiallyCompleted (remaining items recorded)
//
// Returns:
//   - (Completed or PartiallyCompleted, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) CompleteDispatch(hasRemainingItems bool) (Status, error) {
	if s != DispatchReady {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete dispatch", s.String()),
		)
	}

	if hasRemainingItems {
		return PartiallyCompleted, nil
	}
	return Completed, nil
}
