package commands_test

import (
	"context"

	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a testify mock of ports.OrderRepository shared by
// the handler tests in this package.
type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) (int, error) {
	args := m.Called(ctx, aggregate)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number int) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, number int) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, number int, patch order.Patch) error {
	args := m.Called(ctx, number, patch)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, number int) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}
