package customer

import "context"

// Customer is the identity record captured at order submission. Rows are
// append-only: this pipeline never updates or deletes them.
type Customer struct {
	ID    int64
	Name  string
	Phone string
	Email string
}

// Repository defines persistence operations for customers.
//
// Create always inserts a fresh row, even when a row with the same phone
// number exists. Deduplication policy is deliberately concentrated here so a
// lookup-or-create implementation can be swapped in without touching the
// submission service.
type Repository interface {
	Create(ctx context.Context, c Customer) (int64, error)
}
