// Package order provides domain entities and business logic for warehouse order
// fulfillment. It implements the Order aggregate root with lifecycle management,
// box registry operations and packing-allocation arithmetic.
//
// The package includes:
//   - Order: The aggregate root owning product lines, boxes and the state history
//   - ProductLine: One ordered item tracked through ordered/available/packed quantities
//   - Box: A shipping container holding packed quantities of an order's products
//   - Status: A state machine that enforces valid order status transitions
//   - Pure ledger functions deriving packed/remaining totals from the allocation map
//
// Key business rules:
//   - Orders must have a valid unique identifier and at least one product line
//   - Status follows a defined workflow: Open -> Picking -> Packing -> DispatchReady,
//     which terminates in Completed or PartiallyCompleted
//   - A product's packed quantity never exceeds its available quantity
//   - The nested product->box->quantity allocation map is the single source of truth;
//     per-product and per-box totals are always derived, never stored
//   - Every accepted transition appends exactly one state history entry
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
