package services

import (
	"fmt"

	"warehouse/internal/core/domain/model/order"
)

// AllocationInput is a caller's packing proposal: the claimed packed quantity
// per product plus the caller's current box list with per-box quantities.
// It mirrors what a packing screen holds before submission, which is why the
// claimed totals and the per-box quantities arrive separately and have to be
// reconciled by the validator.
type AllocationInput struct {
	Products []ProductPacking
	Boxes    []BoxPacking
}

// ProductPacking is the claimed packed total for one product.
type ProductPacking struct {
	ProductID      string
	QuantityPacked int
}

// BoxPacking is one box in the caller's box list with its per-product quantities.
type BoxPacking struct {
	BoxID   string
	BoxName string
	Items   []BoxItem
}

// BoxItem is the quantity of one product placed in one box.
type BoxItem struct {
	ProductID string
	Quantity  int
}

// displayName returns the operator-facing name of the box for messages.
func (b BoxPacking) displayName() string {
	if b.BoxName != "" {
		return b.BoxName
	}
	return b.BoxID
}

// ValidationResult is the outcome of an allocation validation pass.
// Errors block the transition; warnings only surface information.
type ValidationResult struct {
	IsValid           bool
	Errors            []string
	Warnings          []string
	TotalPacked       int
	HasRemainingItems bool
}

// AllocationValidator is a domain service enforcing the packing rules that
// protect the order's quantity invariants. All rules are checked on every
// pass, never short-circuited, so the caller sees every problem at once.
//
// Rules, in order:
//  1. A product with claimed packed quantity must have a box assignment (error)
//  2. Box quantities must sum to the claimed packed total (error)
//  3. Packed quantity must not exceed the available quantity (error; never clamped)
//  4. A partially packed product is reported (warning) and marks the order as
//     having remaining items
//  5. An empty box is reported (warning); the fulfillment service additionally
//     turns this into a blocker at the dispatch-ready transition
//  6. At least one unit must be packed across the whole order (error)
//
// Products with a zero ordered quantity cannot be packed at all; packing is
// only meaningful for lines that were actually ordered.
type AllocationValidator struct{}

// NewAllocationValidator creates a new AllocationValidator instance.
func NewAllocationValidator() AllocationValidator {
	return AllocationValidator{}
}

// Validate checks the packing proposal against the order's product lines.
// It is a pure computation: neither the order nor the input is mutated.
func (v AllocationValidator) Validate(o *order.Order, input AllocationInput) ValidationResult {
	result := ValidationResult{
		Errors:   make([]string, 0),
		Warnings: make([]string, 0),
	}

	claimed := make(map[string]int, len(input.Products))
	for _, p := range input.Products {
		claimed[p.ProductID] += p.QuantityPacked
	}

	boxTotals := make(map[string]int)
	for _, box := range input.Boxes {
		for _, item := range box.Items {
			if item.Quantity > 0 {
				boxTotals[item.ProductID] += item.Quantity
			}
		}
	}

	for _, line := range o.Lines() {
		productID := line.ProductID()
		packed := claimed[productID]
		boxSum := boxTotals[productID]

		if packed > 0 && boxSum == 0 {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"%s has packed quantity (%d) but no box assignment", line.Name(), packed))
		}

		if boxSum > 0 && boxSum != packed {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"%s box quantities (%d) don't match total packed (%d)", line.Name(), boxSum, packed))
		}

		if packed > line.QuantityAvailable() {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"%s packed quantity (%d) exceeds available quantity (%d)",
				line.Name(), packed, line.QuantityAvailable()))
		}

		if line.QuantityOrdered() == 0 {
			if packed > 0 {
				result.Errors = append(result.Errors, fmt.Sprintf(
					"%s is not part of the order and cannot be packed", line.Name()))
			}
			continue
		}

		if packed > 0 && packed < line.QuantityOrdered() {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"%s is partially packed (%d/%d)", line.Name(), packed, line.QuantityOrdered()))
		}

		// A fully unpacked line counts as remaining too; the remainder
		// computation covers every short-packed line.
		if packed < line.QuantityOrdered() {
			result.HasRemainingItems = true
		}

		result.TotalPacked += packed
	}

	for _, box := range input.Boxes {
		total := 0
		for _, item := range box.Items {
			if item.Quantity > 0 {
				total += item.Quantity
			}
		}
		if total == 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"box %s has no products assigned", box.displayName()))
		}
	}

	if result.TotalPacked == 0 {
		result.Errors = append(result.Errors, "no products have been packed")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
