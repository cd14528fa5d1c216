package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Unlike a state machine, Status carries no transition rules: RECEIVED is
// forced at creation time, and after that any status may replace any other
// on update. Status is a value object that validates membership in the fixed
// set and provides the canonical string representation used on the wire.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the mandatory initial status assigned on creation.
	Received

	// Doing indicates the order is being worked on.
	Doing

	// Done indicates the order has been fulfilled.
	Done

	// Canceled indicates the order was called off.
	Canceled
)

// getStatusStrings returns a map of Status values to their canonical names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Received: "RECEIVED",
		Doing:    "DOING",
		Done:     "DONE",
		Canceled: "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Unknown is excluded to support validation.
func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Received: "RECEIVED",
		Doing:    "DOING",
		Done:     "DONE",
		Canceled: "CANCELED",
	}
}

// Validate checks that the Status value belongs to the fixed set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status: "RECEIVED", "DOING",
// "DONE", or "CANCELED". Invalid values yield "UNKNOWN".
//
// String implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus converts a canonical status name back into a Status value.
// It is the exact inverse of String over the valid set: for every valid
// status s, ParseStatus(s.String()) yields s. Any other input is rejected.
func ParseStatus(value string) (Status, error) {
	switch value {
	case "RECEIVED":
		return Received, nil
	case "DOING":
		return Doing, nil
	case "DONE":
		return Done, nil
	case "CANCELED":
		return Canceled, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", value))
	}
}
