// Package order provides domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root with its items, derived
// totals, and the two state machines that drive the workflow.
//
// The package includes:
//   - Order: the aggregate root owning items, totals, and lifecycle status
//   - Item: an order line with a snapshotted price and its own prep state
//   - Status: the order-level state machine enforcing valid transitions
//   - PrepStatus: the per-item preparation state machine
//   - StatusLog: the audit record emitted by every status change
//
// Key business rules:
//   - total == subtotal + tax + service charge, recomputed on item changes
//   - an order becomes ready only when every non-cancelled item is ready
//   - an order completes only when completed payments cover the total
//   - cancellation is allowed from any non-terminal status and cascades to
//     items that have not finished preparation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
