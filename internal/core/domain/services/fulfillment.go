package services

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// ErrTransitionNotAllowed marks a (status, action) pair the state machine does
// not permit. It surfaces inside the TransitionResult's error list; repeating
// an action on an order already past it yields this rejection rather than a
// silent success, which keeps retried calls from duplicating history entries.
var ErrTransitionNotAllowed = errors.New("transition not allowed")

// TransitionResult is the outcome of a single fulfillment transition request.
// A rejected result carries the complete error list so every problem can be
// fixed in one pass; an accepted result carries the new status, any warnings,
// and (for dispatch transitions) the computed remainder.
type TransitionResult struct {
	Accepted  bool
	NewStatus order.Status
	Errors    []string
	Warnings  []string
	Remainder []order.RemainderItem
}

// FulfillmentService is the single entry point external callers use to drive
// an order through its lifecycle. Given an order, a requested action and
// (for the dispatch-ready transition) the caller's allocation input, it runs
// validation, computes the next state and applies it to the aggregate.
//
// Error taxonomy:
//   - Business-rule violations (illegal transition, failed allocation
//     validation, empty boxes at dispatch) come back inside the
//     TransitionResult and never as Go errors.
//   - Invariant violations (unconstructed order, unknown product identifier
//     in the input, negative quantities, a transition time before the current
//     state time) are caller bugs and return as hard errors with the order
//     untouched.
//
// A rejected transition leaves the order completely unchanged. The service is
// synchronous and performs no I/O; per-order mutual exclusion is the caller's
// responsibility.
type FulfillmentService struct {
	validator AllocationValidator
}

// NewFulfillmentService creates a new FulfillmentService instance.
func NewFulfillmentService() FulfillmentService {
	return FulfillmentService{validator: NewAllocationValidator()}
}

// Transition requests a state-machine step on the order.
//
// Parameters:
//   - o: The order aggregate (must be valid)
//   - action: The requested action
//   - input: The packing proposal; required for move_to_dispatch_ready and
//     ignored for all other actions
//   - actor: The acting user, recorded in the state history
//   - at: The transition time
//
// Returns the transition result, or a hard error for invariant violations.
func (s FulfillmentService) Transition(
	o *order.Order,
	action order.Action,
	input *AllocationInput,
	actor string,
	at time.Time,
) (TransitionResult, error) {
	if err := o.Validate(); err != nil {
		return TransitionResult{}, err
	}
	if err := action.Validate(); err != nil {
		return TransitionResult{}, err
	}
	if actor == "" {
		return TransitionResult{}, errs.NewValueIsRequiredError("actor")
	}
	if at.IsZero() {
		return TransitionResult{}, errs.NewValueIsRequiredError("transition time")
	}

	switch action {
	case order.ActionStartPicking:
		if o.Status() != order.Open {
			return rejectNotAllowed(o, action), nil
		}
		if err := o.StartPicking(actor, at); err != nil {
			return TransitionResult{}, err
		}
		return accepted(order.Picking, nil, nil), nil

	case order.ActionStartPacking:
		if o.Status() != order.Picking {
			return rejectNotAllowed(o, action), nil
		}
		if err := o.StartPacking(actor, at); err != nil {
			return TransitionResult{}, err
		}
		return accepted(order.Packing, nil, nil), nil

	case order.ActionMoveToDispatchReady:
		return s.moveToDispatchReady(o, input, actor, at)

	case order.ActionCompleteDispatch:
		if o.Status() != order.DispatchReady {
			return rejectNotAllowed(o, action), nil
		}
		newStatus, err := o.CompleteDispatch(actor, at)
		if err != nil {
			return TransitionResult{}, err
		}
		return accepted(newStatus, nil, o.Remainder()), nil

	default:
		return rejectNotAllowed(o, action), nil
	}
}

// moveToDispatchReady handles the only transition gated by allocation
// validation. The order is mutated only after every check has passed.
func (s FulfillmentService) moveToDispatchReady(
	o *order.Order,
	input *AllocationInput,
	actor string,
	at time.Time,
) (TransitionResult, error) {
	if o.Status() != order.Packing {
		return rejectNotAllowed(o, order.ActionMoveToDispatchReady), nil
	}

	if input == nil {
		return rejected(
			[]string{"box assignments are required for the transition to dispatch ready"},
			nil,
		), nil
	}

	if err := s.checkInputIntegrity(o, input); err != nil {
		return TransitionResult{}, err
	}

	validation := s.validator.Validate(o, *input)

	// Empty boxes are ordinarily a warning, but no empty box may survive
	// into DispatchReady: here they block the transition.
	blockers := append([]string{}, validation.Errors...)
	for _, box := range input.Boxes {
		if boxItemTotal(box) == 0 {
			blockers = append(blockers, fmt.Sprintf(
				"box %s has no products assigned and cannot enter dispatch ready", box.displayName()))
		}
	}
	inputBoxes := make(map[string]struct{}, len(input.Boxes))
	for _, box := range input.Boxes {
		inputBoxes[box.BoxID] = struct{}{}
	}
	for _, box := range o.Boxes() {
		if _, listed := inputBoxes[box.ID()]; !listed {
			blockers = append(blockers, fmt.Sprintf(
				"box %s has no products assigned and cannot enter dispatch ready", box.Name()))
		}
	}

	if len(blockers) > 0 {
		return rejected(blockers, validation.Warnings), nil
	}

	for _, box := range input.Boxes {
		if _, err := o.EnsureBox(box.BoxID, box.BoxName); err != nil {
			return TransitionResult{}, err
		}
	}
	o.ClearAllocations()
	for _, box := range input.Boxes {
		for _, item := range box.Items {
			if err := o.SetAllocation(item.ProductID, box.BoxID, item.Quantity); err != nil {
				return TransitionResult{}, err
			}
		}
	}

	if err := o.MoveToDispatchReady(actor, at, validation.HasRemainingItems); err != nil {
		return TransitionResult{}, err
	}

	return accepted(order.DispatchReady, validation.Warnings, o.Remainder()), nil
}

// checkInputIntegrity verifies the packing proposal only references products
// that exist on the order and carries no negative quantities. Violations are
// caller bugs and fail hard instead of joining the business-rule error list.
func (s FulfillmentService) checkInputIntegrity(o *order.Order, input *AllocationInput) error {
	for _, p := range input.Products {
		line, exists := o.Line(p.ProductID)
		if !exists {
			return errs.NewObjectNotFoundError("productID", p.ProductID)
		}
		if p.QuantityPacked < 0 {
			return errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("packed quantity of %s", p.ProductID),
				p.QuantityPacked, 0, line.QuantityAvailable())
		}
	}

	seen := make(map[string]struct{}, len(input.Boxes))
	for _, box := range input.Boxes {
		if box.BoxID == "" {
			return errs.NewValueIsRequiredError("box id")
		}
		if _, dup := seen[box.BoxID]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"boxes are invalid", fmt.Errorf("duplicate box id %s", box.BoxID))
		}
		seen[box.BoxID] = struct{}{}

		for _, item := range box.Items {
			line, exists := o.Line(item.ProductID)
			if !exists {
				return errs.NewObjectNotFoundError("productID", item.ProductID)
			}
			if item.Quantity < 0 {
				return errs.NewValueIsOutOfRangeError(
					fmt.Sprintf("allocation of %s to box %s", item.ProductID, box.BoxID),
					item.Quantity, 0, line.QuantityAvailable())
			}
		}
	}
	return nil
}

func boxItemTotal(box BoxPacking) int {
	total := 0
	for _, item := range box.Items {
		if item.Quantity > 0 {
			total += item.Quantity
		}
	}
	return total
}

func accepted(newStatus order.Status, warnings []string, remainder []order.RemainderItem) TransitionResult {
	if warnings == nil {
		warnings = make([]string, 0)
	}
	if remainder == nil {
		remainder = make([]order.RemainderItem, 0)
	}
	return TransitionResult{
		Accepted:  true,
		NewStatus: newStatus,
		Errors:    make([]string, 0),
		Warnings:  warnings,
		Remainder: remainder,
	}
}

func rejected(errorList, warnings []string) TransitionResult {
	if warnings == nil {
		warnings = make([]string, 0)
	}
	return TransitionResult{
		Accepted:  false,
		Errors:    errorList,
		Warnings:  warnings,
		Remainder: make([]order.RemainderItem, 0),
	}
}

func rejectNotAllowed(o *order.Order, action order.Action) TransitionResult {
	return rejected([]string{fmt.Sprintf(
		"%s: %s cannot be applied in status %s", ErrTransitionNotAllowed, action, o.Status())}, nil)
}
