package actions

import (
	"context"
	"net/url"
	"sort"
	"strconv"

	"github.com/vamm99/moterplace/internal/backend"
	"github.com/vamm99/moterplace/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type ProductActions struct {
	api      *backend.Client
	collator *collate.Collator
}

// NewProductActions builds the catalog actions. locale drives the name sort
// collation; an unparseable tag falls back to the neutral collation.
func NewProductActions(api *backend.Client, locale string) *ProductActions {

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}

	return &ProductActions{
		api:      api,
		collator: collate.New(tag),
	}
}

// ListProducts fetches a catalog page. Filtering and pagination are the
// backend's; sorting is an auxiliary pass applied here after retrieval.
func (a *ProductActions) ListProducts(ctx context.Context, page, limit int, filters models.ProductFilters) Result[models.ProductList] {

	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = 12
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	if filters.Search != "" {
		params.Set("search", filters.Search)
	}

	if filters.CategoryID != "" {
		params.Set("category_id", filters.CategoryID)
	}

	if filters.MinPrice > 0 {
		params.Set("minPrice", strconv.FormatFloat(filters.MinPrice, 'f', -1, 64))
	}

	if filters.MaxPrice > 0 {
		params.Set("maxPrice", strconv.FormatFloat(filters.MaxPrice, 'f', -1, 64))
	}

	var list models.ProductList

	if err := a.api.Get(ctx, "/product?"+params.Encode(), "", &list); err != nil {
		return fail[models.ProductList](err, "Could not load products")
	}

	if filters.SortBy != "" {
		a.sortProducts(list.Products, filters.SortBy)
	}

	return ok(list)
}

func (a *ProductActions) GetProduct(ctx context.Context, productID string) Result[models.Product] {

	var resp dataEnvelope[models.Product]

	if err := a.api.Get(ctx, "/product/"+url.PathEscape(productID), "", &resp); err != nil {
		return fail[models.Product](err, "Could not load the product")
	}

	return ok(resp.Data)
}

func (a *ProductActions) ListCategories(ctx context.Context) Result[[]models.Category] {

	var resp dataEnvelope[[]models.Category]

	if err := a.api.Get(ctx, "/category", "", &resp); err != nil {
		return fail[[]models.Category](err, "Could not load categories")
	}

	return ok(resp.Data)
}

// sortProducts orders in place. Price keys compare effective (discounted)
// prices, name keys use the configured collation, newest compares creation
// time. Unknown keys leave the backend order untouched.
func (a *ProductActions) sortProducts(products []models.Product, sortBy string) {

	switch sortBy {
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case models.SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return a.collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	case models.SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return a.collator.CompareString(products[i].Name, products[j].Name) > 0
		})
	case models.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
