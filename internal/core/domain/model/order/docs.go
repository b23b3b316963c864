// Package order provides domain entities and business logic for customer order
// management in the ordering system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, delivery details,
//     line items, and lifecycle
//   - Status: A permissive state machine over {pending, preparing,
//     out-for-delivery, delivered}
//   - LineItem: A value object referencing a dish with a positive quantity
//
// Key business rules:
//   - Orders must reference at least one dish, each with a strictly positive
//     integer quantity
//   - New orders start in the pending status
//   - Any recognized status may be set directly by an update; no transition
//     graph is enforced beyond the two hard rules below
//   - Delivered is terminal: delivered orders cannot be changed
//   - Only pending orders may be deleted
package order
