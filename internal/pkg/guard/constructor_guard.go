// Package guard implements a defensive construction pattern for value
// objects, commands, and queries: embedding a ConstructorGuard lets a type
// detect whether it was created through its designated constructor or left
// as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// A zero-value guard fails Validate, which prevents operating on structs
// that bypassed construction-time validation.
//
// Example:
//
//	var ErrOrderNotConstructed = errors.New("Order must be created via NewOrder")
//
//	type Order struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrder(name string) (Order, error) {
//	    if name == "" {
//	        return Order{}, errors.New("name is required")
//	    }
//	    return Order{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (o Order) Validate() error {
//	    return o.guard.Validate(ErrOrderNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created via its
// constructor, otherwise the supplied validation error
// (ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
