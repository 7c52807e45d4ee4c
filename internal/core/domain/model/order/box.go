package order

import (
	"errors"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrBoxIsNotConstructed is returned when a Box instance was not created
// through the newBox or RestoreBox factory functions.
var ErrBoxIsNotConstructed = errors.New("Box must be created via the Order box registry")

// Box is a shipping container holding a subset of an order's packed
// quantities. A box carries only its identity and display name; its contents
// are always derived from the product lines' allocation maps through the
// ledger functions, so a box can never disagree with the lines about what
// it holds.
//
// Boxes exist only inside their owning Order and are created, renamed and
// removed through the aggregate's box registry operations.
type Box struct {
	// id uniquely identifies the box within its order, e.g. "B3"
	id string

	// name is the operator-facing display name, e.g. "Box-3"
	name string

	guard guard.ConstructorGuard
}

// newBox creates a box with the given identifier and display name.
// Only the Order aggregate creates boxes, which is how box identifiers stay
// unique within an order.
func newBox(id, name string) (*Box, error) {
	box := &Box{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(box.setID(id), box.setName(name)); err != nil {
		return nil, err
	}

	return box, nil
}

// RestoreBox reconstructs a box from persistence.
func RestoreBox(id, name string) (*Box, error) {
	return newBox(id, name)
}

// Validate ensures the box was created through a factory function.
func (b *Box) Validate() error {
	if b == nil {
		return ErrBoxIsNotConstructed
	}
	return b.guard.Validate(ErrBoxIsNotConstructed)
}

// ID returns the box identifier, unique within its order.
func (b *Box) ID() string {
	return b.id
}

// Name returns the operator-facing display name.
func (b *Box) Name() string {
	return b.name
}

// rename changes the display name. Renaming never touches allocations.
func (b *Box) rename(name string) error {
	return b.setName(name)
}

func (b *Box) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("box id")
	}
	b.id = id
	return nil
}

func (b *Box) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("box name")
	}
	b.name = name
	return nil
}
