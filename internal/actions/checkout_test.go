package actions_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vamm99/moterplace/internal/actions"
	"github.com/vamm99/moterplace/internal/backend"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/session"
)

func checkoutRequest() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		ShippingInfo: models.ShippingInfo{
			FullName: "Ana Gomez",
			Email:    "ana@example.com",
			Phone:    "3001234567",
			Address:  "Calle 1 # 2-3",
			City:     "Bogota",
			ZipCode:  "110111",
		},
		PaymentInfo: models.PaymentInfo{
			Method:     "bamcolombia",
			CardNumber: "4111111111111111",
			CardName:   "Ana Gomez",
			ExpiryDate: "12/27",
			CVV:        "123",
		},
		Products: []models.CheckoutLine{
			{ProductID: "p1", Price: 80000, Quantity: 2},
		},
		Total: 160000,
	}
}

func TestProcessCheckout(t *testing.T) {
	ctx := t.Context()

	t.Run("Failure - Anonymous Checkout Makes No Network Calls", func(t *testing.T) {
		// Arrange
		var calls atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{"data":{"_id":"should-not-happen"}}`))
		}))
		defer server.Close()

		checkout := actions.NewCheckoutActions(backend.NewClient(server.URL, 5*time.Second))

		// Act
		res := checkout.ProcessCheckout(ctx, session.Session{}, checkoutRequest())

		// Assert
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "sign in")
		assert.Zero(t, calls.Load())
	})

	t.Run("Success - Payment Then Sale", func(t *testing.T) {
		// Arrange
		var paymentBody, saleBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/payment":
				require.NoError(t, json.NewDecoder(r.Body).Decode(&paymentBody))
				w.Write([]byte(`{"data":{"_id":"pay-1"}}`))
			case "/sales":
				require.NoError(t, json.NewDecoder(r.Body).Decode(&saleBody))
				w.Write([]byte(`{"data":{"_id":"sale-1"}}`))
			default:
				t.Errorf("unexpected path %s", r.URL.Path)
			}
		}))
		defer server.Close()

		checkout := actions.NewCheckoutActions(backend.NewClient(server.URL, 5*time.Second))
		sess := session.Session{Token: "tok"}

		// Act
		res := checkout.ProcessCheckout(ctx, sess, checkoutRequest())

		// Assert
		require.True(t, res.Success)
		assert.Equal(t, "sale-1", res.Data.OrderID)
		assert.Equal(t, "pay-1", res.Data.PaymentID)

		require.NotNil(t, paymentBody)
		assert.Equal(t, "bamcolombia", paymentBody["payment_method"])
		assert.Equal(t, float64(160000), paymentBody["total"])
		assert.NotContains(t, paymentBody, "cardNumber", "card data stays local")

		require.NotNil(t, saleBody)
		assert.Equal(t, "pay-1", saleBody["payment_id"])
	})

	t.Run("Failure - Payment Rejection Stops The Flow", func(t *testing.T) {
		// Arrange
		var saleCalls atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/sales" {
				saleCalls.Add(1)
			}

			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"insufficient funds"}`))
		}))
		defer server.Close()

		checkout := actions.NewCheckoutActions(backend.NewClient(server.URL, 5*time.Second))

		// Act
		res := checkout.ProcessCheckout(ctx, session.Session{Token: "tok"}, checkoutRequest())

		// Assert
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "insufficient funds")
		assert.Zero(t, saleCalls.Load(), "no sale attempt after a failed payment")
	})

	t.Run("Failure - Sale Failure After Payment Reports No Order", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/payment" {
				w.Write([]byte(`{"data":{"_id":"pay-orphan"}}`))

				return
			}

			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		checkout := actions.NewCheckoutActions(backend.NewClient(server.URL, 5*time.Second))

		// Act
		res := checkout.ProcessCheckout(ctx, session.Session{Token: "tok"}, checkoutRequest())

		// Assert
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Error)
		assert.Empty(t, res.Data.OrderID, "no order id is ever surfaced")
	})
}
