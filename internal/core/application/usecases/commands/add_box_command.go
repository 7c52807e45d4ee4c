package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrAddBoxCommandIsNotConstructed = errors.New(
	"AddBoxCommand must be created via NewAddBoxCommand constructor",
)

// AddBoxCommand represents a request to add a shipping box to an order.
// The box identifier is generated server-side from the order's box sequence;
// an empty name asks for the positional default ("Box-3").
type AddBoxCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewAddBoxCommand creates a command to add a box to an order.
// The name is optional; validation of non-empty names is left to the domain.
func NewAddBoxCommand(orderID kernel.UUID, name string) (AddBoxCommand, error) {
	boxCommand := AddBoxCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AddBoxCommand{}, err
	}
	boxCommand.orderID = orderID

	return boxCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddBoxCommand) Validate() error {
	return c.guard.Validate(ErrAddBoxCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c AddBoxCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the requested display name, empty for the positional default.
func (c AddBoxCommand) Name() string {
	return c.name
}
