// Package services provides domain services that orchestrate business operations
// across the order aggregate in the warehouse fulfillment system. It implements
// business workflows that don't naturally belong to a single entity.
//
// The package includes:
//   - AllocationValidator: A domain service enforcing the packing-allocation rules
//   - FulfillmentService: The single entry point external callers use to request
//     order status transitions
//
// Domain services keep the two error taxonomies separate: business-rule
// rejections travel inside the TransitionResult so operators can see every
// problem at once, while data-model invariant violations surface as hard errors.
package services
