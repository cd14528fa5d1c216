package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new order.
// Encapsulates the order name, optional description, and line items.
// Any status supplied by the caller is deliberately absent here: fresh
// orders always start in RECEIVED.
//
// Example:
//
//	item, _ := order.NewItem("123", "Teste", 1)
//	cmd, err := NewCreateOrderCommand("Test name", "", []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(repo)
//	number, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	items       []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Enforces the creation rule: the name must be strictly longer than 3
// characters and at least one item must be supplied; otherwise the command
// fails with order.ErrInvalidOrder.
func NewCreateOrderCommand(name string, description string, items []order.Item) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setNameAndItems(name, items),
		orderCommand.setDescription(description),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Name returns the order label.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// Description returns the optional order description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Items returns the line items for the new order.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setNameAndItems(name string, items []order.Item) error {
	if len(name) <= 3 || len(items) == 0 {
		return order.ErrInvalidOrder
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.name = name
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	c.description = description
	return nil
}
