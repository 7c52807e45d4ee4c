package order

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrProductLineIsNotConstructed is returned when a ProductLine instance was not
// created through the NewProductLine or RestoreProductLine factory functions.
var ErrProductLineIsNotConstructed = errors.New(
	"ProductLine must be created via NewProductLine or RestoreProductLine constructor",
)

// ProductLine is one ordered item within an order, tracked through its ordered,
// available and packed quantities. The packed quantity is never stored: it is
// always derived from the line's box allocation map.
//
// ProductLine follows these invariants:
//   - Product code and display name are required and immutable
//   - Quantity ordered is immutable once the order is created and never negative
//   - Quantity available is never negative; it may be less than ordered when
//     inventory is short
//   - The allocation map only holds positive quantities; clearing an
//     allocation removes its entry
type ProductLine struct {
	// productID is the external product code, e.g. "P1042"
	productID string

	// name is the product display name
	name string

	// quantityOrdered is the quantity the dealer ordered
	quantityOrdered int

	// quantityAvailable is the quantity the warehouse can actually supply
	quantityAvailable int

	// allocations maps box identifier to the quantity of this product
	// placed in that box
	allocations map[string]int

	guard guard.ConstructorGuard
}

// NewProductLine creates a product line with no allocations.
//
// Parameters:
//   - productID: External product code (required)
//   - name: Product display name (required)
//   - quantityOrdered: Ordered quantity (must be >= 0)
//   - quantityAvailable: Available quantity (must be >= 0)
//
// Returns the created line, or an aggregated validation error.
func NewProductLine(productID, name string, quantityOrdered, quantityAvailable int) (*ProductLine, error) {
	line := &ProductLine{
		allocations: make(map[string]int),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setName(name),
		line.setQuantityOrdered(quantityOrdered),
		line.setQuantityAvailable(quantityAvailable),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreProductLine reconstructs a product line from persistence, including
// its allocation map. Negative persisted quantities are rejected rather than
// silently clamped; they indicate corrupted data.
func RestoreProductLine(
	productID, name string,
	quantityOrdered, quantityAvailable int,
	allocations map[string]int,
) (*ProductLine, error) {
	line, err := NewProductLine(productID, name, quantityOrdered, quantityAvailable)
	if err != nil {
		return nil, err
	}

	for boxID, quantity := range allocations {
		if setErr := line.setAllocation(boxID, quantity); setErr != nil {
			return nil, setErr
		}
	}

	return line, nil
}

// Validate ensures the line was created through a constructor.
func (l *ProductLine) Validate() error {
	if l == nil {
		return ErrProductLineIsNotConstructed
	}
	return l.guard.Validate(ErrProductLineIsNotConstructed)
}

// ProductID returns the external product code.
func (l *ProductLine) ProductID() string {
	return l.productID
}

// Name returns the product display name.
func (l *ProductLine) Name() string {
	return l.name
}

// QuantityOrdered returns the ordered quantity.
func (l *ProductLine) QuantityOrdered() int {
	return l.quantityOrdered
}

// QuantityAvailable returns the quantity the warehouse can supply.
func (l *ProductLine) QuantityAvailable() int {
	return l.quantityAvailable
}

// QuantityPacked returns the packed total derived from the allocation map.
func (l *ProductLine) QuantityPacked() int {
	return TotalPackedForProduct(l.allocations)
}

// QuantityUnpacked returns how many ordered units are not yet packed.
// This is the per-line contribution to the order's remainder.
func (l *ProductLine) QuantityUnpacked() int {
	unpacked := l.quantityOrdered - l.QuantityPacked()
	if unpacked < 0 {
		return 0
	}
	return unpacked
}

// Allocations returns a copy of the box->quantity allocation map.
func (l *ProductLine) Allocations() map[string]int {
	copied := make(map[string]int, len(l.allocations))
	for boxID, quantity := range l.allocations {
		copied[boxID] = quantity
	}
	return copied
}

// AllocationFor returns the quantity of this product placed in the given box,
// or 0 when the box holds none of it.
func (l *ProductLine) AllocationFor(boxID string) int {
	return l.allocations[boxID]
}

// setAllocation records the quantity of this product placed in one box.
// A zero quantity removes the entry. Negative quantities are a caller bug
// and are rejected hard rather than clamped.
func (l *ProductLine) setAllocation(boxID string, quantity int) error {
	if boxID == "" {
		return errs.NewValueIsRequiredError("boxID")
	}
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError(
			fmt.Sprintf("allocation of %s to box %s", l.productID, boxID),
			quantity, 0, l.quantityAvailable,
		)
	}

	if quantity == 0 {
		delete(l.allocations, boxID)
		return nil
	}

	l.allocations[boxID] = quantity
	return nil
}

// clearBox removes this line's allocation to the given box, if any.
// The freed quantity is not redistributed; packed totals simply drop.
func (l *ProductLine) clearBox(boxID string) {
	delete(l.allocations, boxID)
}

// clearAllocations removes every allocation entry of this line.
func (l *ProductLine) clearAllocations() {
	l.allocations = make(map[string]int)
}

func (l *ProductLine) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	l.productID = productID
	return nil
}

func (l *ProductLine) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *ProductLine) setQuantityOrdered(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityOrdered is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	l.quantityOrdered = quantity
	return nil
}

func (l *ProductLine) setQuantityAvailable(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityAvailable is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	l.quantityAvailable = quantity
	return nil
}
