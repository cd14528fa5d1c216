package queries

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves a single order, with its items, by its
// sequential number.
type GetOrderByNumberQuery struct { //nolint:recvcheck //using for validation
	number int

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for a single order.
// Validates that the number is positive.
func NewGetOrderByNumberQuery(number int) (GetOrderByNumberQuery, error) {
	query := GetOrderByNumberQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setNumber(number); err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByNumberQueryIsNotConstructed if validation fails.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// Number returns the number of the requested order.
func (q GetOrderByNumberQuery) Number() int {
	return q.number
}

func (q *GetOrderByNumberQuery) setNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%d is not a positive order number", number))
	}

	q.number = number
	return nil
}
