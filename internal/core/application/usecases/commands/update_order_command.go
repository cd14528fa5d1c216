package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an existing order.
// The patch carries only the fields the caller supplied; absent fields are
// not touched. There is no creation-rule re-check on update: the payload is
// a patch, not a create request.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	number int
	patch  order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch the order identified by
// number. Validates that the number is positive, that a supplied status is a
// member of the enumeration, and that supplied items were properly
// constructed.
func NewUpdateOrderCommand(number int, patch order.Patch) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setNumber(number),
		orderCommand.setPatch(patch),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Number returns the number of the order to patch.
func (c UpdateOrderCommand) Number() int {
	return c.number
}

// Patch returns the partial update payload.
func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c *UpdateOrderCommand) setNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%d is not a positive order number", number))
	}

	c.number = number
	return nil
}

func (c *UpdateOrderCommand) setPatch(patch order.Patch) error {
	if patch.Status != nil {
		if err := patch.Status.Validate(); err != nil {
			return err
		}
	}

	for _, item := range patch.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.patch = patch
	return nil
}
