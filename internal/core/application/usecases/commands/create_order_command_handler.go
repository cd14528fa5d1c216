package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the domain order in RECEIVED status and persists it together with
// its items in one gateway call.
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orderRepository ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the order creation command and returns the number the
// storage assigned to the new order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(cmd.Name(), cmd.Description(), cmd.Items())
	if err != nil {
		return 0, err
	}

	return h.orderRepository.Add(ctx, newOrder)
}
