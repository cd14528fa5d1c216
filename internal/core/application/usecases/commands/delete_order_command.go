package commands

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to delete the order identified by
// its number, together with all items it owns.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	number int

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
// Validates that the number is positive.
func NewDeleteOrderCommand(number int) (DeleteOrderCommand, error) {
	orderCommand := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setNumber(number); err != nil {
		return DeleteOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteOrderCommandIsNotConstructed if validation fails.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Number returns the number of the order to delete.
func (c DeleteOrderCommand) Number() int {
	return c.number
}

func (c *DeleteOrderCommand) setNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%d is not a positive order number", number))
	}

	c.number = number
	return nil
}
