// Package handler exposes the kiosk HTTP API: order submission, the menu
// read endpoints, and payment settlement. Handlers translate JSON payloads to
// domain calls and map domain errors to the response contract; no business
// rules live here.
package handler

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/udonhaus/kiosk-backend/internal/domain/menu"
	"github.com/udonhaus/kiosk-backend/internal/domain/order"
	"github.com/udonhaus/kiosk-backend/internal/domain/payment"
)

// Handler holds the domain dependencies for all API routes.
type Handler struct {
	orders   *order.Service
	menu     menu.Repository
	payments payment.Repository

	submissions metric.Int64Counter
}

// New constructs a Handler with the required domain dependencies.
func New(orders *order.Service, menuRepo menu.Repository, payments payment.Repository) *Handler {
	meter := otel.Meter("kiosk-api")
	submissions, _ := meter.Int64Counter("kiosk.orders.submitted",
		metric.WithDescription("Order submissions accepted by the API"),
	)
	return &Handler{
		orders:      orders,
		menu:        menuRepo,
		payments:    payments,
		submissions: submissions,
	}
}

// Register mounts every API route on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/transaction", h.SubmitTransaction)
	mux.HandleFunc("GET /api/categories", h.ListCategories)
	mux.HandleFunc("GET /api/menu", h.ListMenu)
	mux.HandleFunc("GET /api/menu/{id}", h.GetMenuItem)
	mux.HandleFunc("GET /api/payment/methods", h.ListPaymentMethods)
	mux.HandleFunc("POST /api/payment", h.RecordPayment)
	mux.HandleFunc("GET /api/payment/{orderID}", h.GetPayment)
}
