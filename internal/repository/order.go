package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udonhaus/kiosk-backend/internal/domain/order"
)

const (
	createOrderSQL = `INSERT INTO orders (customer_id, order_type, seat_number, total, payment_time)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	createOrderItemSQL = `INSERT INTO order_items (order_id, item_id, name, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`

	createAddOnSQL = `INSERT INTO add_ons (order_id, addon_id, name, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists the order header, its items, and its add-ons inside a
// single transaction. Any failure rolls back every insert; no partial order
// becomes visible to readers. When the context carries a transaction opened
// by TxManager.WithinTx the inserts join it and the owner commits; otherwise
// Create opens and commits its own.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (int64, error) {
	if tx, ok := txFrom(ctx); ok {
		return r.create(ctx, tx, o)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning order transaction: %w", err)
	}
	// No-op once the transaction has committed.
	defer func() { _ = tx.Rollback(ctx) }()

	orderID, err := r.create(ctx, tx, o)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing order %d: %w", orderID, err)
	}

	return orderID, nil
}

func (r *OrderRepository) create(ctx context.Context, tx pgx.Tx, o *order.Order) (int64, error) {
	var seat any
	if o.SeatNumber != "" {
		seat = o.SeatNumber
	}

	var orderID int64
	err := tx.QueryRow(ctx, createOrderSQL,
		o.CustomerID, o.Type, seat, o.Total, o.PaymentTime,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("inserting order header: %w", err)
	}

	for _, item := range o.Items {
		if _, err := tx.Exec(ctx, createOrderItemSQL,
			orderID, item.ItemID, item.Name, item.Quantity, item.Price,
		); err != nil {
			return 0, fmt.Errorf("inserting order item %q: %w", item.Name, err)
		}
	}

	for _, addOn := range o.AddOns {
		if _, err := tx.Exec(ctx, createAddOnSQL,
			orderID, addOn.ItemID, addOn.Name, addOn.Quantity, addOn.Price,
		); err != nil {
			return 0, fmt.Errorf("inserting add-on %q: %w", addOn.Name, err)
		}
	}

	return orderID, nil
}
