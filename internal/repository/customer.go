package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udonhaus/kiosk-backend/internal/domain/customer"
)

const createCustomerSQL = `INSERT INTO customers (name, phone, email)
	VALUES ($1, $2, $3) RETURNING id`

var _ customer.Repository = (*CustomerRepository)(nil)

// CustomerRepository implements customer.Repository backed by PostgreSQL.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a CustomerRepository that uses the given pool.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create inserts a fresh customer row and returns the generated identifier.
// No lookup by phone is performed: repeated submissions from the same phone
// produce separate rows. Swap this method for a lookup-or-create when the
// dedup question is settled. The insert joins the ambient transaction when
// one is present, so a failed submission leaves no customer row behind.
func (r *CustomerRepository) Create(ctx context.Context, c customer.Customer) (int64, error) {
	var id int64
	err := querierFrom(ctx, r.pool).QueryRow(ctx, createCustomerSQL, c.Name, c.Phone, c.Email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating customer: %w", err)
	}
	return id, nil
}
