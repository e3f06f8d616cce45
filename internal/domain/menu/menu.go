// Package menu holds the read model for the kiosk menu: categories and the
// items available for ordering. The submission pipeline does not depend on
// it; line items carry denormalized copies of name and price.
package menu

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested menu item does not exist.
var ErrNotFound = errors.New("menu item not found")

// Category groups menu items on the ordering screen.
type Category struct {
	ID   int64
	Name string
}

// Item is one orderable dish.
type Item struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}

// Repository defines read operations for the menu.
type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	// ListItems returns all items, or only those in categoryID when it is
	// non-nil.
	ListItems(ctx context.Context, categoryID *int64) ([]Item, error)
	GetItem(ctx context.Context, id int64) (*Item, error)
}
