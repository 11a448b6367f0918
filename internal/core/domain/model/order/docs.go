// Package order provides domain entities and business logic for print order
// management. It implements the PrintOrder aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - PrintOrder: The aggregate root holding the order identity, spec, frozen
//     price snapshot and lifecycle state
//   - Spec: What the customer ordered (material, quantity, destination)
//   - PriceSnapshot: The quoted price components frozen at checkout
//   - Status: A state machine enforcing valid order status transitions
//
// Key business rules:
//   - Orders must reference a valid customer and carry a non-empty spec
//   - The price snapshot total must equal the sum of its components
//   - Order status follows a defined workflow:
//     Pending -> Paid -> Printing -> Shipped -> Delivered
//   - Shipping is allowed directly from Paid
//   - Only Pending and Paid orders can be cancelled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
