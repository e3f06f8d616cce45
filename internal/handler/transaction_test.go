package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udonhaus/kiosk-backend/internal/domain/customer"
	"github.com/udonhaus/kiosk-backend/internal/domain/order"
)

// --- Mock repositories ---

type mockCustomerRepo struct {
	nextID int64
	phones []string
	err    error
}

func (m *mockCustomerRepo) Create(_ context.Context, c customer.Customer) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	m.phones = append(m.phones, c.Phone)
	return m.nextID, nil
}

type mockOrderRepo struct {
	lastOrder *order.Order
	err       error
}

func (m *mockOrderRepo) Create(_ context.Context, o *order.Order) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.lastOrder = o
	return 42, nil
}

// nopTxManager runs the scoped function without a real transaction.
type nopTxManager struct{}

func (nopTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Helpers ---

type submitResponse struct {
	Success bool     `json:"success"`
	OrderID int64    `json:"orderId"`
	Errors  []string `json:"errors"`
	Error   string   `json:"error"`
}

func newTestHandler(customers *mockCustomerRepo, orders *mockOrderRepo) http.Handler {
	h := New(order.NewService(customers, orders, nopTxManager{}), nil, nil)
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}

func postTransaction(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, submitResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/transaction", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp submitResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return w, resp
}

const pickUpBody = `{
	"user": {"name": "Sam", "phone": "555-1"},
	"order": {
		"items": [{"id": "1", "name": "Udon", "quantity": 2, "price": 13.80}],
		"addOns": [],
		"total": 27.60,
		"orderType": "Pick Up"
	},
	"paymentTime": "2025-07-29T10:30:00Z"
}`

// --- Tests ---

func TestSubmitTransaction_PickUp(t *testing.T) {
	orders := &mockOrderRepo{}
	h := newTestHandler(&mockCustomerRepo{}, orders)

	w, resp := postTransaction(t, h, pickUpBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.OrderID)

	require.NotNil(t, orders.lastOrder)
	assert.Equal(t, order.TypePickUp, orders.lastOrder.Type)
	assert.True(t, decimal.RequireFromString("27.60").Equal(orders.lastOrder.Total))
	require.Len(t, orders.lastOrder.Items, 1)
	assert.Equal(t, 2, orders.lastOrder.Items[0].Quantity)
}

func TestSubmitTransaction_DineInWithoutSeat(t *testing.T) {
	orders := &mockOrderRepo{}
	customers := &mockCustomerRepo{}
	h := newTestHandler(customers, orders)

	body := strings.Replace(pickUpBody, "Pick Up", "Dine In", 1)
	w, resp := postTransaction(t, h, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "seat number")
	// Nothing written.
	assert.Nil(t, orders.lastOrder)
	assert.Empty(t, customers.phones)
}

func TestSubmitTransaction_DineInWithSeat(t *testing.T) {
	orders := &mockOrderRepo{}
	h := newTestHandler(&mockCustomerRepo{}, orders)

	body := strings.Replace(pickUpBody, `"orderType": "Pick Up"`, `"orderType": "Dine In", "seatNumber": "A1"`, 1)
	w, resp := postTransaction(t, h, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	require.NotNil(t, orders.lastOrder)
	assert.Equal(t, order.TypeDineIn, orders.lastOrder.Type)
	assert.Equal(t, "A1", orders.lastOrder.SeatNumber)
}

func TestSubmitTransaction_SeatIgnoredForPickUp(t *testing.T) {
	orders := &mockOrderRepo{}
	h := newTestHandler(&mockCustomerRepo{}, orders)

	body := strings.Replace(pickUpBody, `"orderType": "Pick Up"`, `"orderType": "Pick Up", "seatNumber": "A1"`, 1)
	w, resp := postTransaction(t, h, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	require.NotNil(t, orders.lastOrder)
	assert.Empty(t, orders.lastOrder.SeatNumber)
}

func TestSubmitTransaction_EmptyItems(t *testing.T) {
	h := newTestHandler(&mockCustomerRepo{}, &mockOrderRepo{})

	body := strings.Replace(pickUpBody, `[{"id": "1", "name": "Udon", "quantity": 2, "price": 13.80}]`, "[]", 1)
	w, resp := postTransaction(t, h, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "at least one item")
}

func TestSubmitTransaction_MissingName(t *testing.T) {
	h := newTestHandler(&mockCustomerRepo{}, &mockOrderRepo{})

	body := strings.Replace(pickUpBody, `"name": "Sam", `, "", 1)
	w, resp := postTransaction(t, h, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "name")
}

func TestSubmitTransaction_MalformedJSON(t *testing.T) {
	h := newTestHandler(&mockCustomerRepo{}, &mockOrderRepo{})

	w, resp := postTransaction(t, h, "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
}

func TestSubmitTransaction_PersistenceFailureIsOpaque(t *testing.T) {
	orders := &mockOrderRepo{err: errors.New(`INSERT INTO orders failed: connection refused`)}
	h := newTestHandler(&mockCustomerRepo{}, orders)

	w, resp := postTransaction(t, h, pickUpBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "failed to save order", resp.Error)
	// The SQL detail stays server-side.
	assert.NotContains(t, w.Body.String(), "INSERT")
}

func TestSubmitTransaction_DuplicateSubmissionCreatesTwoOrders(t *testing.T) {
	customers := &mockCustomerRepo{}
	h := newTestHandler(customers, &mockOrderRepo{})

	_, first := postTransaction(t, h, pickUpBody)
	_, second := postTransaction(t, h, pickUpBody)

	assert.True(t, first.Success)
	assert.True(t, second.Success)
	// Two customer rows sharing one phone: the known dedup gap.
	require.Len(t, customers.phones, 2)
	assert.Equal(t, customers.phones[0], customers.phones[1])
}
