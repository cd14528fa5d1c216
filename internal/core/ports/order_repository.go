// Package ports defines the outbound contracts of the application core.
// Adapters implement these interfaces; handlers depend on them through
// explicit constructor injection.
package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository is the persistence gateway for order aggregates. It
// translates domain operations into storage calls and converts between the
// domain status enum and the storage representation.
//
// The repository performs no retries and no error translation beyond
// not-found classification: storage failures propagate to the caller
// unchanged.
type OrderRepository interface {
	// Add persists a new order together with its items in one logical
	// operation. Storage assigns the order number, which is returned.
	Add(ctx context.Context, aggregate *order.Order) (int, error)

	// GetByNumber retrieves one order plus its items.
	// Returns errs.ObjectNotFoundError when no order matches.
	GetByNumber(ctx context.Context, number int) (*order.Order, error)

	// Exists reports whether an order with the given number exists.
	// Used as a cheap pre-check before mutation and deletion.
	Exists(ctx context.Context, number int) (bool, error)

	// Update applies the present fields of the patch to an existing order:
	// scalar fields via a targeted update, items merged by id against the
	// existing item rows. Items with unknown ids are ignored; items absent
	// from the patch are left untouched.
	Update(ctx context.Context, number int, patch order.Patch) error

	// Delete removes the order's items first and then the order row,
	// respecting the ownership relationship.
	Delete(ctx context.Context, number int) error
}
