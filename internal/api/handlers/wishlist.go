package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vamm99/moterplace/internal/actions"
	"github.com/vamm99/moterplace/internal/api/middleware"
	apperrors "github.com/vamm99/moterplace/internal/errors"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/store"
	"github.com/vamm99/moterplace/internal/utils"
	"github.com/vamm99/moterplace/internal/utils/response"
	"github.com/vamm99/moterplace/internal/wishlist"
)

type WishlistHandler struct {
	store     store.Store
	products  *actions.ProductActions
	validator *validator.Validate
}

func NewWishlistHandler(s store.Store, products *actions.ProductActions) *WishlistHandler {
	return &WishlistHandler{
		store:     s,
		products:  products,
		validator: validator.New(),
	}
}

func (h *WishlistHandler) manager(r *http.Request) (*wishlist.Manager, error) {

	visitorID := middleware.VisitorFromContext(r.Context())
	if visitorID == "" {
		return nil, apperrors.InternalError("Missing visitor identity")
	}

	mgr, err := wishlist.NewManager(r.Context(), h.store, visitorID)
	if err != nil {
		return nil, apperrors.InternalError("Could not load your wishlist").WithError(err)
	}

	return mgr, nil
}

func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		mgr, err := h.manager(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, mgr.View())
	}
}

func (h *WishlistHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddWishlistItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		mgr, err := h.manager(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		res := h.products.GetProduct(r.Context(), req.ProductID)
		if !res.Success {
			response.Failure(w, http.StatusBadGateway, res.Error)

			return
		}

		if err := mgr.AddItem(r.Context(), res.Data); err != nil {
			response.Error(w, apperrors.InternalError("Could not save your wishlist").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, mgr.View())
	}
}

func (h *WishlistHandler) RemoveItem() http.HandlerFunc {
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
			response.Error(w, apperrors.InternalError("Could not save your wishlist").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, mgr.View())
	}
}

func (h *WishlistHandler) ClearWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		mgr, err := h.manager(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := mgr.ClearWishlist(r.Context()); err != nil {
			response.Error(w, apperrors.InternalError("Could not save your wishlist").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, mgr.View())
	}
}
