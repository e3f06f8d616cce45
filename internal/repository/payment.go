package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udonhaus/kiosk-backend/internal/domain/payment"
)

const (
	stampOrderPaymentSQL = `UPDATE orders SET payment_method = $1 WHERE id = $2`

	createPaymentSQL = `INSERT INTO payments (order_id, amount, payment_method, payment_time)
		VALUES ($1, $2, $3, $4) RETURNING id`

	latestPaymentSQL = `SELECT id, order_id, amount, payment_method, payment_time
		FROM payments WHERE order_id = $1 ORDER BY payment_time DESC LIMIT 1`
)

var _ payment.Repository = (*PaymentRepository)(nil)

// PaymentRepository implements payment.Repository backed by PostgreSQL.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a PaymentRepository that uses the given pool.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Record stamps the payment method onto the order and inserts the payment row
// in one transaction. Returns payment.ErrOrderNotFound when the order does
// not exist.
func (r *PaymentRepository) Record(ctx context.Context, p *payment.Payment) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning payment transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, stampOrderPaymentSQL, p.Method, p.OrderID)
	if err != nil {
		return 0, fmt.Errorf("stamping payment method on order %d: %w", p.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, payment.ErrOrderNotFound
	}

	var id int64
	err = tx.QueryRow(ctx, createPaymentSQL, p.OrderID, p.Amount, p.Method, p.PaidAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting payment for order %d: %w", p.OrderID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing payment %d: %w", id, err)
	}

	return id, nil
}

// LatestByOrder returns the most recent payment recorded for the order.
func (r *PaymentRepository) LatestByOrder(ctx context.Context, orderID int64) (*payment.Payment, error) {
	rows, err := r.pool.Query(ctx, latestPaymentSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("getting payment for order %d: %w", orderID, err)
	}

	p, err := pgx.CollectExactlyOneRow(rows, func(row pgx.CollectableRow) (payment.Payment, error) {
		var p payment.Payment
		err := row.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.PaidAt)
		return p, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("getting payment for order %d: %w", orderID, err)
	}
	return &p, nil
}
