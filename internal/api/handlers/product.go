package handlers

import (
	"net/http"
	"strconv"

	"github.com/vamm99/moterplace/internal/actions"
	"github.com/vamm99/moterplace/internal/models"
	"github.com/vamm99/moterplace/internal/utils/response"
)

type ProductHandler struct {
	products *actions.ProductActions
}

func NewProductHandler(products *actions.ProductActions) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts serves the catalog listing.
// GET /products?page&limit&search&category_id&minPrice&maxPrice&sortBy
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query()

		page, _ := strconv.Atoi(query.Get("page"))
		limit, _ := strconv.Atoi(query.Get("limit"))
		minPrice, _ := strconv.ParseFloat(query.Get("minPrice"), 64)
		maxPrice, _ := strconv.ParseFloat(query.Get("maxPrice"), 64)

		filters := models.ProductFilters{
			Search:     query.Get("search"),
			CategoryID: query.Get("category_id"),
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			SortBy:     query.Get("sortBy"),
		}

		res := h.products.ListProducts(r.Context(), page, limit, filters)

		response.WriteJson(w, http.StatusOK, res)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")
		if productID == "" {
			response.Failure(w, http.StatusBadRequest, "Product id is required")

			return
		}

		res := h.products.GetProduct(r.Context(), productID)

		response.WriteJson(w, http.StatusOK, res)
	}
}

func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJson(w, http.StatusOK, h.products.ListCategories(r.Context()))
	}
}
