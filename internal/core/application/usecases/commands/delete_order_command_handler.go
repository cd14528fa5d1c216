package commands

import (
	"context"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles order deletion. Checks existence first;
// the gateway then removes the owned items before the order row.
type DeleteOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(orderRepository ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the delete command. Fails with errs.ObjectNotFoundError
// when the order does not exist; in that case the gateway's delete is never
// invoked.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	return h.orderRepository.Delete(ctx, cmd.Number())
}
