package order

import (
	"errors"

	"orders/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item represents one line item owned by an Order. Items have no existence
// of their own: they are created, updated, and deleted through their parent
// order's lifecycle. The id is caller-supplied and unique within the parent.
type Item struct {
	// id identifies the item within its parent order
	id string

	// name is the display label of the item
	name string

	// quantity is the ordered count
	quantity int

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a line item with validation. The id is required because it
// keys the item within its parent order; name and quantity are free-form.
func NewItem(id string, name string, quantity int) (Item, error) {
	if id == "" {
		return Item{}, errs.NewValueIsRequiredError("item id")
	}

	return Item{
		id:            id,
		name:          name,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the caller-supplied item identifier.
func (i Item) ID() string {
	return i.id
}

// Name returns the item's display label.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered count.
func (i Item) Quantity() int {
	return i.quantity
}
