package actions

import (
	"context"

	"github.com/vamm99/moterplace/internal/backend"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/session"
)

type OrderActions struct {
	api *backend.Client
}

func NewOrderActions(api *backend.Client) *OrderActions {
	return &OrderActions{api: api}
}

// UserOrders lists the customer's orders: payment records with their product
// lines populated.
func (a *OrderActions) UserOrders(ctx context.Context, sess session.Session) Result[[]models.Order] {

	if !sess.IsAuthenticated() {
		return failMessage[[]models.Order]("You are not signed in. Please sign in.")
	}

	var resp dataEnvelope[[]models.Order]

	if err := a.api.Get(ctx, "/payment/user", sess.Token, &resp); err != nil {
		return fail[[]models.Order](err, "Could not load your orders")
	}

	return ok(resp.Data)
}

// UserPayments lists the same records projected down to amount and status.
func (a *OrderActions) UserPayments(ctx context.Context, sess session.Session) Result[[]models.Payment] {

	if !sess.IsAuthenticated() {
		return failMessage[[]models.Payment]("You are not signed in. Please sign in.")
	}

	var resp dataEnvelope[[]models.Payment]

	if err := a.api.Get(ctx, "/payment/user", sess.Token, &resp); err != nil {
		return fail[[]models.Payment](err, "Could not load your payments")
	}

	return ok(resp.Data)
}
