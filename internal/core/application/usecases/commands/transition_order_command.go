package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrActorIsRequired = errors.New("actor is required")
)

// TransitionOrderCommand represents a request to advance an order through its
// fulfillment workflow. For the dispatch-ready transition the command carries
// the caller's packing proposal; for every other action it is nil.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.ActionStartPicking, "bob", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // invariant fault, not a business rejection
//	}
//	if !result.Accepted {
//	    // result.Errors holds every blocking problem
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	action     order.Action
	actor      string
	allocation *services.AllocationInput

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to advance an order's state.
// Validates that the order ID is valid, the action is known and an actor is
// given. The allocation input is optional; whether it is required is decided
// by the fulfillment service per action.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	action order.Action,
	actor string,
	allocation *services.AllocationInput,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		allocation: allocation,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setAction(action),
		transitionCommand.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the requested workflow action.
func (c TransitionOrderCommand) Action() order.Action {
	return c.action
}

// Actor returns the acting user recorded in the state history.
func (c TransitionOrderCommand) Actor() string {
	return c.actor
}

// Allocation returns the caller's packing proposal, nil when none was given.
func (c TransitionOrderCommand) Allocation() *services.AllocationInput {
	return c.allocation
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setAction(action order.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}

func (c *TransitionOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
