package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRenameBoxCommandIsNotConstructed = errors.New(
		"RenameBoxCommand must be created via NewRenameBoxCommand constructor",
	)
	ErrBoxIDIsRequired   = errors.New("box ID is required")
	ErrBoxNameIsRequired = errors.New("box name is required")
)

// RenameBoxCommand represents a request to change a box's display name.
// Renaming never touches the box's identifier or its allocations.
type RenameBoxCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	boxID   string
	name    string

	guard guard.ConstructorGuard
}

// NewRenameBoxCommand creates a command to rename a box.
// Validates that the order ID is valid and box ID and name are present.
func NewRenameBoxCommand(orderID kernel.UUID, boxID, name string) (RenameBoxCommand, error) {
	boxCommand := RenameBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		boxCommand.setOrderID(orderID),
		boxCommand.setBoxID(boxID),
		boxCommand.setName(name),
	); err != nil {
		return RenameBoxCommand{}, err
	}

	return boxCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameBoxCommand) Validate() error {
	return c.guard.Validate(ErrRenameBoxCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c RenameBoxCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BoxID returns the identifier of the box to rename.
func (c RenameBoxCommand) BoxID() string {
	return c.boxID
}

// Name returns the new display name.
func (c RenameBoxCommand) Name() string {
	return c.name
}

func (c *RenameBoxCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RenameBoxCommand) setBoxID(boxID string) error {
	if boxID == "" {
		return ErrBoxIDIsRequired
	}

	c.boxID = boxID
	return nil
}

func (c *RenameBoxCommand) setName(name string) error {
	if name == "" {
		return ErrBoxNameIsRequired
	}

	c.name = name
	return nil
}
