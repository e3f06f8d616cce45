package order

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/udonhaus/kiosk-backend/internal/domain/customer"
)

// SubmitRequest holds the raw payloads of one kiosk submission.
type SubmitRequest struct {
	Customer CustomerDraft
	Order    Draft
}

// Receipt is the result of a committed submission.
type Receipt struct {
	OrderID    int64
	CustomerID int64
}

// TxManager scopes a function to one database transaction. Repository calls
// made with the context passed to fn share that transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the submission pipeline: validate both payloads, record the
// customer, record the order. Each call is stateless; concurrent submissions
// are serialized only by the database.
type Service struct {
	customers customer.Repository
	orders    Repository
	tx        TxManager
}

// NewService creates a submission Service with the required repositories and
// the transaction manager that binds their writes together.
func NewService(customers customer.Repository, orders Repository, tx TxManager) *Service {
	return &Service{
		customers: customers,
		orders:    orders,
		tx:        tx,
	}
}

// Submit validates the customer payload, then the order payload, then records
// the customer and the order in sequence inside one transaction. Validation
// failures return *InvalidCustomerError or *InvalidOrderError carrying every
// violated rule; database failures return *PersistenceError after the whole
// transaction has been rolled back, so a failed submission leaves no rows in
// any table. Submit never retries: a duplicate submission produces a second
// order, so retry policy belongs to the caller.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Receipt, error) {
	if violations := ValidateCustomer(req.Customer); len(violations) > 0 {
		return nil, &InvalidCustomerError{Violations: violations}
	}

	o, violations := ValidateOrder(req.Order)
	if len(violations) > 0 {
		return nil, &InvalidOrderError{Violations: violations}
	}

	var receipt Receipt
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		customerID, err := s.customers.Create(ctx, customer.Customer{
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			Email: req.Customer.Email,
		})
		if err != nil {
			return &PersistenceError{Op: "record customer", Err: err}
		}

		o.CustomerID = customerID
		orderID, err := s.orders.Create(ctx, &o)
		if err != nil {
			return &PersistenceError{Op: "record order", Err: err}
		}

		receipt = Receipt{
			OrderID:    orderID,
			CustomerID: customerID,
		}
		return nil
	})
	if err != nil {
		var pErr *PersistenceError
		if errors.As(err, &pErr) {
			return nil, err
		}
		// Begin or commit failed.
		return nil, &PersistenceError{Op: "commit submission", Err: err}
	}

	return &receipt, nil
}
