package actions

import (
	"context"
	"log/slog"

	"github.com/vamm99/moterplace/internal/backend"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/session"
)

type CheckoutActions struct {
	api *backend.Client
}

func NewCheckoutActions(api *backend.Client) *CheckoutActions {
	return &CheckoutActions{api: api}
}

type paymentPayload struct {
	Products      []models.CheckoutLine `json:"products"`
	Total         float64               `json:"total"`
	PaymentMethod string                `json:"payment_method"`
}

type salePayload struct {
	Products  []models.CheckoutLine `json:"products"`
	Total     float64               `json:"total"`
	PaymentID string                `json:"payment_id"`
}

// ProcessCheckout runs the two dependent backend calls: create the payment,
// then create the sale referencing it. If the sale call fails the payment
// stays created upstream; the backend owns reconciliation, this layer only
// reports the failure without claiming an order exists.
func (a *CheckoutActions) ProcessCheckout(ctx context.Context, sess session.Session, req *models.CheckoutRequest) Result[models.CheckoutResult] {

	if !sess.IsAuthenticated() {
		return failMessage[models.CheckoutResult]("You must sign in to complete your purchase. Please sign in and try again.")
	}

	var paymentResp dataEnvelope[idDoc]

	err := a.api.Post(ctx, "/payment", paymentPayload{
		Products:      req.Products,
		Total:         req.Total,
		PaymentMethod: req.PaymentInfo.Method,
	}, sess.Token, &paymentResp)
	if err != nil {
		slog.Warn("Payment creation failed", slog.String("error", err.Error()))

		return fail[models.CheckoutResult](err, "We could not process your payment. Please check your information and try again.")
	}

	paymentID := paymentResp.Data.ID

	var saleResp dataEnvelope[idDoc]

	err = a.api.Post(ctx, "/sales", salePayload{
		Products:  req.Products,
		Total:     req.Total,
		PaymentID: paymentID,
	}, sess.Token, &saleResp)
	if err != nil {
		// The payment record survives upstream with no compensating call
		// from this layer; leave a trail for reconciliation.
		slog.Warn("Sale creation failed after payment was created",
			slog.String("paymentId", paymentID),
			slog.String("error", err.Error()))

		return fail[models.CheckoutResult](err, "Your order could not be placed. No order was created; please try again.")
	}

	return ok(models.CheckoutResult{
		OrderID:   saleResp.Data.ID,
		PaymentID: paymentID,
	})
}
