package queries

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves a page of orders. Pages are 1-based and sized by
// limit; orders are returned in ascending number order.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	page  int
	limit int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paginated order listing query.
// Validates that both page and limit are positive.
func NewGetOrdersQuery(page int, limit int) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		query.setPage(page),
		query.setLimit(limit),
	)
	if err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// Skip returns the number of orders preceding the requested page.
func (q GetOrdersQuery) Skip() int {
	return (q.page - 1) * q.limit
}

func (q *GetOrdersQuery) setPage(page int) error {
	if page < 1 {
		return errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is not a positive page number", page))
	}

	q.page = page
	return nil
}

func (q *GetOrdersQuery) setLimit(limit int) error {
	if limit < 1 {
		return errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%d is not a positive page size", limit))
	}

	q.limit = limit
	return nil
}
