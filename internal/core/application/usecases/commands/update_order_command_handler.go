package commands

import (
	"context"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles partial updates of existing orders.
// Checks existence first and only then applies the patch; the two gateway
// calls are independent round-trips (no locking between them).
type UpdateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(orderRepository ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the update command. Fails with errs.ObjectNotFoundError
// when the order does not exist; in that case the gateway's update is never
// invoked.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	exists, err := h.orderRepository.Exists(ctx, cmd.Number())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("order", cmd.Number())
	}

	return h.orderRepository.Update(ctx, cmd.Number(), cmd.Patch())
}
