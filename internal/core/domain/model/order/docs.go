// Package order provides the domain entities and business rules for order
// management. It implements the Order aggregate root together with its
// owned line items and lifecycle status enumeration.
//
// The package includes:
//   - Order: the aggregate root holding identity, name, description, status,
//     and the owned collection of line items
//   - Item: a line item that exists only as part of an Order
//   - Status: the fixed lifecycle enumeration (RECEIVED, DOING, DONE, CANCELED)
//   - Patch: a present/absent partial-update payload applied by the repository
//
// Key business rules:
//   - Orders are created with a name strictly longer than 3 characters and at
//     least one item; anything else is rejected with ErrInvalidOrder
//   - Every new order starts in RECEIVED status; callers cannot choose the
//     initial status
//   - Status carries no transition graph: any status may follow any other
//     when an order is updated
//   - The order number is assigned by storage on creation and never changes
package order
