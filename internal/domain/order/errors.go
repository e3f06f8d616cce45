package order

import (
	"fmt"
	"strings"
)

// InvalidCustomerError reports every rule the customer payload violated.
// Client-caused; correcting the input makes the submission retryable.
type InvalidCustomerError struct {
	Violations []string
}

func (e *InvalidCustomerError) Error() string {
	return "invalid customer: " + strings.Join(e.Violations, "; ")
}

// InvalidOrderError reports every rule the order payload violated.
type InvalidOrderError struct {
	Violations []string
}

func (e *InvalidOrderError) Error() string {
	return "invalid order: " + strings.Join(e.Violations, "; ")
}

// PersistenceError indicates the database rejected part of the submission.
// The whole transaction has been rolled back; no partial order is visible.
// The wrapped cause must not be shown to API clients.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
