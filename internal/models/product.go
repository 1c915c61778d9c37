package models

import (
	"encoding/json"
	"time"
)

type Category struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryRef is a product's category field as the backend sends it: either
// a bare id string or a populated category object, depending on whether the
// endpoint populates the reference.
type CategoryRef struct {
	ID       string
	Category *Category
}

func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		c.ID = id
		c.Category = nil

		return nil
	}

	var category Category
	if err := json.Unmarshal(data, &category); err != nil {
		return err
	}

	c.ID = category.ID
	c.Category = &category

	return nil
}

func (c CategoryRef) MarshalJSON() ([]byte, error) {
	if c.Category != nil {
		return json.Marshal(c.Category)
	}

	return json.Marshal(c.ID)
}

type Product struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url"`
	Cost        float64     `json:"cost"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
	Discount    float64     `json:"discount"`
	Status      bool        `json:"status"`
	CategoryID  CategoryRef `json:"category_id"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// EffectivePrice is the list price reduced by the discount percentage.
func (p *Product) EffectivePrice() float64 {
	if p.Discount > 0 {
		return p.Price - (p.Price * p.Discount / 100)
	}

	return p.Price
}

type ProductFilters struct {
	Search     string
	CategoryID string
	MinPrice   float64
	MaxPrice   float64
	SortBy     string
}

// Sort keys applied client-side after retrieval; the backend does not sort.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortNewest    = "newest"
)

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ProductList struct {
	Products []Product      `json:"data"`
	Meta     PaginationMeta `json:"meta"`
}
