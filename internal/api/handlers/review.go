package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vamm99/moterplace/internal/actions"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/session"
	"github.com/vamm99/moterplace/internal/utils"
	"github.com/vamm99/moterplace/internal/utils/response"
)

type ReviewHandler struct {
	reviews   *actions.ReviewActions
	sessions  *session.Manager
	validator *validator.Validate
}

func NewReviewHandler(reviews *actions.ReviewActions, sessions *session.Manager) *ReviewHandler {
	return &ReviewHandler{
		reviews:   reviews,
		sessions:  sessions,
		validator: validator.New(),
	}
}

func (h *ReviewHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")
		if productID == "" {
			response.Failure(w, http.StatusBadRequest, "Product id is required")

			return
		}

		response.WriteJson(w, http.StatusOK, h.reviews.ProductReviews(r.Context(), productID))
	}
}

func (h *ReviewHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")
		if productID == "" {
			response.Failure(w, http.StatusBadRequest, "Product id is required")

			return
		}

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		sess := h.sessions.FromRequest(r)

		response.WriteJson(w, http.StatusOK, h.reviews.CreateReview(r.Context(), sess, productID, &req))
	}
}
