package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vamm99/moterplace/internal/actions"
	"github.com/vamm99/moterplace/internal/api/middleware"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/session"
	"github.com/vamm99/moterplace/internal/utils"
	"github.com/vamm99/moterplace/internal/utils/response"
)

type CheckoutHandler struct {
	checkout  *actions.CheckoutActions
	sessions  *session.Manager
	validator *validator.Validate
}

func NewCheckoutHandler(checkout *actions.CheckoutActions, sessions *session.Manager) *CheckoutHandler {
	return &CheckoutHandler{
		checkout:  checkout,
		sessions:  sessions,
		validator: validator.New(),
	}
}

func (h *CheckoutHandler) ProcessCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		sess := h.sessions.FromRequest(r)

		res := h.checkout.ProcessCheckout(r.Context(), sess, &req)
		if res.Success {
			middleware.LoggerFromContext(r.Context()).Info("Checkout completed",
				"orderId", res.Data.OrderID, "paymentId", res.Data.PaymentID)
		}

		response.WriteJson(w, http.StatusOK, res)
	}
}
