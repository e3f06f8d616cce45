package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerDraft is the raw customer payload as received from the kiosk UI.
type CustomerDraft struct {
	Name  string
	Phone string
	Email string
}

// Draft is the raw order payload before validation. PaymentTime is the
// unparsed ISO-8601 string from the request body.
type Draft struct {
	Items       []LineItem
	AddOns      []LineItem
	Total       decimal.Decimal
	Type        string
	SeatNumber  string
	PaymentTime string
}

// phoneSeparators strips the punctuation customers commonly type into the
// phone field before the digits-only check.
var phoneSeparators = strings.NewReplacer("-", "", " ", "", "(", "", ")", "", "+", "")

// ValidateCustomer checks the customer payload and returns every violated
// rule. An empty phone is accepted (data-quality issue, not a rejection); a
// non-empty phone must contain only digits and common separators.
func ValidateCustomer(d CustomerDraft) []string {
	var violations []string

	if strings.TrimSpace(d.Name) == "" {
		violations = append(violations, "missing required field: name")
	}
	if d.Phone != "" && !digitsOnly(phoneSeparators.Replace(d.Phone)) {
		violations = append(violations, "invalid phone number format")
	}

	return violations
}

// ValidateOrder checks the order payload and, when it is clean, returns the
// normalized Order: payment time parsed, seat number dropped for Pick Up
// orders. All violated rules are collected, not just the first.
func ValidateOrder(d Draft) (Order, []string) {
	var violations []string

	if len(d.Items) == 0 {
		violations = append(violations, "order must contain at least one item")
	}
	violations = append(violations, validateLines("item", d.Items)...)
	violations = append(violations, validateLines("add-on", d.AddOns)...)

	if d.Total.IsNegative() {
		violations = append(violations, "order total must not be negative")
	}

	switch d.Type {
	case TypePickUp, TypeDineIn:
	default:
		violations = append(violations, fmt.Sprintf("invalid order type %q: must be %q or %q", d.Type, TypePickUp, TypeDineIn))
	}

	if d.Type == TypeDineIn && strings.TrimSpace(d.SeatNumber) == "" {
		violations = append(violations, "seat number is required for Dine In orders")
	}

	paymentTime, err := time.Parse(time.RFC3339, d.PaymentTime)
	if err != nil {
		violations = append(violations, "invalid payment time format")
	}

	if len(violations) > 0 {
		return Order{}, violations
	}

	seat := strings.TrimSpace(d.SeatNumber)
	if d.Type == TypePickUp {
		// A seat number on a Pick Up order is ignored, never persisted.
		seat = ""
	}

	return Order{
		Type:        d.Type,
		SeatNumber:  seat,
		Total:       d.Total.Round(2),
		PaymentTime: paymentTime,
		Items:       d.Items,
		AddOns:      d.AddOns,
	}, nil
}

// validateLines checks the shape shared by items and add-ons.
func validateLines(kind string, lines []LineItem) []string {
	var violations []string
	for _, l := range lines {
		if l.Quantity <= 0 {
			violations = append(violations, fmt.Sprintf("quantity must be greater than 0 for %s %q", kind, l.Name))
		}
		if l.Price.IsNegative() {
			violations = append(violations, fmt.Sprintf("price must not be negative for %s %q", kind, l.Name))
		}
	}
	return violations
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
