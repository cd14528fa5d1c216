package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidOrder is returned when creation input violates the order
	// rules. The message keeps the historical wording even though the check
	// rejects names of exactly 3 characters.
	ErrInvalidOrder = errors.New("name must be at least 3 characters long and items are required")
)

// Order represents one customer order. It is the aggregate root owning the
// line items; items never exist outside an order.
//
// Order maintains these invariants:
//   - name is strictly longer than 3 characters at creation time
//   - at least one item is present at creation time
//   - status is always exactly one value from the fixed enumeration
//   - number is assigned by storage on creation and immutable afterwards
//
// The struct uses private fields so invariants can only be established
// through NewOrder (fresh orders) or RestoreOrder (rehydration from
// persistence).
type Order struct {
	// number is the storage-assigned external identifier (0 until persisted)
	number int

	// name is the required order label
	name string

	// description is optional free text
	description string

	// status is the current lifecycle state
	status Status

	// items is the owned collection of line items
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation and forces the initial
// status to Received; callers cannot choose the status of a fresh order.
//
// The creation rule rejects input when the name is empty or not longer than
// 3 characters, or when no items are supplied. Both cases fail with
// ErrInvalidOrder.
//
// Example:
//
//	item, _ := order.NewItem("123", "Teste", 1)
//	o, err := order.NewOrder("Test name", "optional text", []order.Item{item})
//	if err != nil {
//	    // input violated the creation rule
//	}
//	// o.Status() == order.Received, o.Number() == 0 until persisted
func NewOrder(name string, description string, items []Item) (*Order, error) {
	if len(name) <= 3 || len(items) == 0 {
		return nil, ErrInvalidOrder
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		name:          name,
		description:   description,
		status:        Received,
		items:         items,
		isConstructed: true,
	}, nil
}

// RestoreOrder rehydrates an Order from persistence. Unlike NewOrder it
// accepts any valid status and requires the storage-assigned number, but it
// does not re-run the creation rule: historical rows are taken as-is.
func RestoreOrder(number int, name string, description string, status Status, items []Item) (*Order, error) {
	if number < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%d is not a positive order number", number))
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		number:        number,
		name:          name,
		description:   description,
		status:        status,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Number returns the storage-assigned order number, or 0 for an order that
// has not been persisted yet.
func (o *Order) Number() int {
	return o.number
}

// Name returns the order's label.
func (o *Order) Name() string {
	return o.name
}

// Description returns the optional free-text description.
func (o *Order) Description() string {
	return o.description
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the owned line items in their stored order.
func (o *Order) Items() []Item {
	return o.items
}
