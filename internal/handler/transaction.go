package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/udonhaus/kiosk-backend/internal/domain/order"
)

// transactionRequest mirrors the submission payload sent by the ordering UI.
type transactionRequest struct {
	User struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	} `json:"user"`
	Order struct {
		Items      []lineItemRequest `json:"items"`
		AddOns     []lineItemRequest `json:"addOns"`
		Total      decimal.Decimal   `json:"total"`
		OrderType  string            `json:"orderType"`
		SeatNumber string            `json:"seatNumber"`
	} `json:"order"`
	PaymentTime string `json:"paymentTime"`
}

type lineItemRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// SubmitTransaction handles POST /api/transaction. Validation failures come
// back as 400 with every violated rule; persistence failures as 500 with an
// opaque message; success as 200 with the new order identifier.
func (h *Handler) SubmitTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rejected(w, http.StatusBadRequest, []string{"invalid JSON body"})
		return
	}

	receipt, err := h.orders.Submit(r.Context(), order.SubmitRequest{
		Customer: order.CustomerDraft{
			Name:  req.User.Name,
			Phone: req.User.Phone,
			Email: req.User.Email,
		},
		Order: order.Draft{
			Items:       toLineItems(req.Order.Items),
			AddOns:      toLineItems(req.Order.AddOns),
			Total:       req.Order.Total,
			Type:        req.Order.OrderType,
			SeatNumber:  req.Order.SeatNumber,
			PaymentTime: req.PaymentTime,
		},
	})
	if err != nil {
		h.submitError(w, r, err)
		return
	}

	h.submissions.Add(r.Context(), 1,
		metric.WithAttributes(attribute.String("order.type", req.Order.OrderType)),
	)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("success", func(e *jx.Encoder) { e.Bool(true) })
		e.Field("orderId", func(e *jx.Encoder) { e.Int64(receipt.OrderID) })
	})
	writeJSON(w, http.StatusOK, &e)
}

// submitError maps pipeline errors to the response contract.
func (h *Handler) submitError(w http.ResponseWriter, r *http.Request, err error) {
	var icErr *order.InvalidCustomerError
	if errors.As(err, &icErr) {
		rejected(w, http.StatusBadRequest, icErr.Violations)
		return
	}

	var ioErr *order.InvalidOrderError
	if errors.As(err, &ioErr) {
		rejected(w, http.StatusBadRequest, ioErr.Violations)
		return
	}

	var pErr *order.PersistenceError
	if errors.As(err, &pErr) {
		zctx.From(r.Context()).Error("submission failed",
			zap.String("op", pErr.Op),
			zap.Error(pErr.Err),
		)
		failed(w, http.StatusInternalServerError, "failed to save order")
		return
	}

	serverError(w, r, "submit transaction", err)
}

func toLineItems(reqs []lineItemRequest) []order.LineItem {
	if len(reqs) == 0 {
		return nil
	}
	items := make([]order.LineItem, len(reqs))
	for i, it := range reqs {
		items[i] = order.LineItem{
			ItemID:   it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		}
	}
	return items
}
