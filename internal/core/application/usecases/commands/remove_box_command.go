package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrRemoveBoxCommandIsNotConstructed = errors.New(
	"RemoveBoxCommand must be created via NewRemoveBoxCommand constructor",
)

// RemoveBoxCommand represents a request to delete a box from an order.
// Every allocation referencing the box is cleared atomically with the
// deletion; the freed quantity is not redistributed to other boxes.
type RemoveBoxCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	boxID   string

	guard guard.ConstructorGuard
}

// NewRemoveBoxCommand creates a command to remove a box.
// Validates that the order ID is valid and a box ID is present.
func NewRemoveBoxCommand(orderID kernel.UUID, boxID string) (RemoveBoxCommand, error) {
	boxCommand := RemoveBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		boxCommand.setOrderID(orderID),
		boxCommand.setBoxID(boxID),
	); err != nil {
		return RemoveBoxCommand{}, err
	}

	return boxCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveBoxCommand) Validate() error {
	return c.guard.Validate(ErrRemoveBoxCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c RemoveBoxCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BoxID returns the identifier of the box to remove.
func (c RemoveBoxCommand) BoxID() string {
	return c.boxID
}

func (c *RemoveBoxCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveBoxCommand) setBoxID(boxID string) error {
	if boxID == "" {
		return ErrBoxIDIsRequired
	}

	c.boxID = boxID
	return nil
}
