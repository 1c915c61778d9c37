package models

import "time"

// OrderLine is a product line as the backend returns it from /payment/user,
// with the product reference populated.
type OrderLine struct {
	Product  OrderLineProduct `json:"product_id"`
	Quantity int              `json:"quantity"`
	Price    float64          `json:"price"`
}

type OrderLineProduct struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
}

// Order is a read-only projection; this service never creates one directly.
type Order struct {
	ID            string      `json:"_id"`
	Products      []OrderLine `json:"products"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type Payment struct {
	ID        string    `json:"_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CheckoutLine is a product line as checkout sends it to the backend.
type CheckoutLine struct {
	ProductID string  `json:"product_id" validate:"required"`
	Price     float64 `json:"price" validate:"required,gte=0"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
}

type ShippingInfo struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	ZipCode  string `json:"zipCode" validate:"required"`
}

// PaymentInfo is validated locally; card fields never leave this service,
// only the method goes to the backend.
type PaymentInfo struct {
	Method     string `json:"method" validate:"required,oneof=bamcolombia paypal"`
	CardNumber string `json:"cardNumber" validate:"required"`
	CardName   string `json:"cardName" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

type CheckoutRequest struct {
	ShippingInfo ShippingInfo   `json:"shippingInfo" validate:"required"`
	PaymentInfo  PaymentInfo    `json:"paymentInfo" validate:"required"`
	Products     []CheckoutLine `json:"products" validate:"required,min=1,dive"`
	Total        float64        `json:"total" validate:"required,gt=0"`
}

type CheckoutResult struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
}
