package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Recognized order types. The seat number invariant hinges on these: Dine In
// requires one, Pick Up must not persist one.
const (
	TypePickUp = "Pick Up"
	TypeDineIn = "Dine In"
)

// LineItem is one row of an order: a menu item or an add-on. Name and Price
// are denormalized copies captured at order time so historical receipts stay
// stable when the menu changes.
type LineItem struct {
	ItemID   string
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Order is one completed purchase together with its line items. Created
// atomically with its children and never mutated afterward.
type Order struct {
	ID          int64
	CustomerID  int64
	Type        string
	SeatNumber  string // empty means stored as NULL
	Total       decimal.Decimal
	PaymentTime time.Time
	Items       []LineItem
	AddOns      []LineItem
}

// Repository defines persistence operations for orders.
//
// Create must write the order header, every item row, and every add-on row as
// one atomic unit: either all rows commit or none do. It returns the generated
// order identifier.
type Repository interface {
	Create(ctx context.Context, o *Order) (int64, error)
}
