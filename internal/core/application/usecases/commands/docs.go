// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// constructor-validated value, each handler checks preconditions (existence)
// and delegates to the persistence gateway through ports.OrderRepository.
//
// The existence pre-check and the subsequent mutation are two independent
// round-trips by design; concurrent requests against the same order are not
// coordinated, last write wins.
package commands
