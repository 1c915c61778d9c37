package handlers

import (
	"net/http"

	"github.com/vamm99/moterplace/internal/actions"
	"github.com/vamm99/moterplace/internal/session"
	"github.com/vamm99/moterplace/internal/utils/response"
)

type OrderHandler struct {
	orders   *actions.OrderActions
	sessions *session.Manager
}

func NewOrderHandler(orders *actions.OrderActions, sessions *session.Manager) *OrderHandler {
	return &OrderHandler{orders: orders, sessions: sessions}
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := h.sessions.FromRequest(r)

		response.WriteJson(w, http.StatusOK, h.orders.UserOrders(r.Context(), sess))
	}
}

func (h *OrderHandler) ListPayments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := h.sessions.FromRequest(r)

		response.WriteJson(w, http.StatusOK, h.orders.UserPayments(r.Context(), sess))
	}
}
