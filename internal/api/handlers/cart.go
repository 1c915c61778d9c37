package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vamm99/moterplace/internal/actions"
	"github.com/vamm99/moterplace/internal/api/middleware"
	"github.com/vamm99/moterplace/internal/cart"
	apperrors "github.com/vamm99/moterplace/internal/errors"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/store"
	"github.com/vamm99/moterplace/internal/utils"
	"github.com/vamm99/moterplace/internal/utils/response"
)

// CartHandler fronts the cart engine. Stock ceilings are enforced here,
// before the engine is touched: the engine itself never clamps.
type CartHandler struct {
	store     store.Store
	products  *actions.ProductActions
	validator *validator.Validate
}

func NewCartHandler(s store.Store, products *actions.ProductActions) *CartHandler {
	return &CartHandler{
		store:     s,
		products:  products,
		validator: validator.New(),
	}
}

// manager loads the visitor's cart for this request. Concurrent requests for
// the same visitor race on the persisted blob; last writer wins, as with
// concurrent browser tabs.
func (h *CartHandler) manager(r *http.Request) (*cart.Manager, error) {

	visitorID := middleware.VisitorFromContext(r.Context())
	if visitorID == "" {
		return nil, apperrors.InternalError("Missing visitor identity")
	}

	mgr, err := cart.NewManager(r.Context(), h.store, visitorID)
	if err != nil {
		return nil, apperrors.InternalError("Could not load your cart").WithError(err)
	}

	return mgr, nil
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		mgr, err := h.manager(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, mgr.View())
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if req.Quantity < 1 {
			req.Quantity = 1
		}

		mgr, err := h.manager(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		// fresh snapshot: stock and prices move too fast to trust the client
		res := h.products.GetProduct(r.Context(), req.ProductID)
		if !res.Success {
			response.Failure(w, http.StatusBadGateway, res.Error)

			return
		}

		product := res.Data

		if !product.Status {
			response.Failure(w, http.StatusBadRequest, "This product is no longer available")

			return
		}

		requested := req.Quantity

		if existing, found := mgr.GetItem(product.ID); found {
			requested += existing.Quantity
		}

		if requested > product.Stock {
			response.Failure(w, http.StatusBadRequest,
				fmt.Sprintf("Only %d units of %s are available", product.Stock, product.Name))

			return
		}

		if err := mgr.AddItem(r.Context(), product, req.Quantity); err != nil {
			response.Error(w, apperrors.InternalError("Could not save your cart").WithError(err))

			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Cart item added",
			"productId", product.ID, "quantity", req.Quantity)

		response.Success(w, http.StatusOK, mgr.View())
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")
		if productID == "" {
			response.Failure(w, http.StatusBadRequest, "Product id is required")

			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		mgr, err := h.manager(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		item, found := mgr.GetItem(productID)
		if !found {
			response.Failure(w, http.StatusNotFound, "Item not found in the cart")

			return
		}

		if req.Quantity > item.Product.Stock {
			response.Failure(w, http.StatusBadRequest,
				fmt.Sprintf("Only %d units of %s are available", item.Product.Stock, item.Product.Name))

			return
		}

		if err := mgr.UpdateQuantity(r.Context(), productID, req.Quantity); err != nil {
			response.Error(w, apperrors.InternalError("Could not save your cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, mgr.View())
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")
		if productID == "" {
			response.Failure(w, http.StatusBadRequest, "Product id is required")

			return
		}

		mgr, err := h.manager(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := mgr.RemoveItem(r.Context(), productID); err != nil {
			response.Error(w, apperrors.InternalError("Could not save your cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, mgr.View())
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		mgr, err := h.manager(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := mgr.ClearCart(r.Context()); err != nil {
			response.Error(w, apperrors.InternalError("Could not save your cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, mgr.View())
	}
}
