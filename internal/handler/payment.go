package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/udonhaus/kiosk-backend/internal/domain/payment"
)

type paymentRequest struct {
	OrderID       int64           `json:"orderId"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
}

// ListPaymentMethods handles GET /api/payment/methods.
func (h *Handler) ListPaymentMethods(w http.ResponseWriter, _ *http.Request) {
	var e jx.Encoder
	e.Arr(func(e *jx.Encoder) {
		for _, m := range payment.Methods() {
			e.Obj(func(e *jx.Encoder) {
				e.Field("id", func(e *jx.Encoder) { e.Str(m.ID) })
				e.Field("name", func(e *jx.Encoder) { e.Str(m.Name) })
				e.Field("icon", func(e *jx.Encoder) { e.Str(m.Icon) })
			})
		}
	})
	writeJSON(w, http.StatusOK, &e)
}

// RecordPayment handles POST /api/payment: it stamps the method onto the
// order and stores the payment row.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rejected(w, http.StatusBadRequest, []string{"invalid JSON body"})
		return
	}

	var violations []string
	if req.OrderID <= 0 {
		violations = append(violations, "missing required field: orderId")
	}
	if req.PaymentMethod == "" {
		violations = append(violations, "missing required field: paymentMethod")
	}
	if req.Amount.IsNegative() {
		violations = append(violations, "amount must not be negative")
	}
	if len(violations) > 0 {
		rejected(w, http.StatusBadRequest, violations)
		return
	}

	id, err := h.payments.Record(r.Context(), &payment.Payment{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.PaymentMethod,
		PaidAt:  time.Now(),
	})
	if err != nil {
		if errors.Is(err, payment.ErrOrderNotFound) {
			failed(w, http.StatusNotFound, "order not found")
			return
		}
		serverError(w, r, "record payment", err)
		return
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("success", func(e *jx.Encoder) { e.Bool(true) })
		e.Field("paymentId", func(e *jx.Encoder) { e.Int64(id) })
	})
	writeJSON(w, http.StatusOK, &e)
}

// GetPayment handles GET /api/payment/{orderID}: the latest payment recorded
// for the order.
func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(r.PathValue("orderID"), 10, 64)
	if err != nil {
		failed(w, http.StatusBadRequest, "invalid order id")
		return
	}

	p, err := h.payments.LatestByOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			failed(w, http.StatusNotFound, "payment not found")
			return
		}
		serverError(w, r, "get payment", err)
		return
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(p.ID) })
		e.Field("orderId", func(e *jx.Encoder) { e.Int64(p.OrderID) })
		e.Field("amount", func(e *jx.Encoder) { e.Float64(p.Amount.InexactFloat64()) })
		e.Field("paymentMethod", func(e *jx.Encoder) { e.Str(p.Method) })
		e.Field("paymentTime", func(e *jx.Encoder) { e.Str(p.PaidAt.UTC().Format(time.RFC3339)) })
	})
	writeJSON(w, http.StatusOK, &e)
}
