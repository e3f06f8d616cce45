// Package payment covers settlement of an already-submitted order: recording
// which method paid for it and exposing the latest payment for status checks.
package payment

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Errors returned by the payment repository.
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

// Method is a way to pay shown on the kiosk payment screen.
type Method struct {
	ID   string
	Name string
	Icon string
}

// Methods returns the payment methods the kiosk offers. The list is static;
// the UI renders it as-is.
func Methods() []Method {
	return []Method{
		{ID: "cash", Name: "Cash", Icon: "💵"},
		{ID: "card", Name: "Card", Icon: "💳"},
		{ID: "mobile", Name: "Mobile Payment", Icon: "📱"},
		{ID: "split", Name: "Split Bill", Icon: "✂️"},
	}
}

// Payment is one settlement record for an order.
type Payment struct {
	ID      int64
	OrderID int64
	Amount  decimal.Decimal
	Method  string
	PaidAt  time.Time
}

// Repository defines persistence operations for payments.
//
// Record stamps the payment method onto the order row and inserts the payment
// row as one atomic unit. It returns ErrOrderNotFound when the order does not
// exist.
type Repository interface {
	Record(ctx context.Context, p *Payment) (int64, error)
	LatestByOrder(ctx context.Context, orderID int64) (*Payment, error)
}
