package models

import "time"

type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	LastName     string    `json:"lastName"`
	IDNumber     string    `json:"idNumber"`
	TypeDocument string    `json:"typeDocument"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       bool      `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name         string `json:"name" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	IDNumber     string `json:"idNumber" validate:"required"`
	TypeDocument string `json:"typeDocument" validate:"required,oneof=cc ce ti nit passport"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
}

// registerPayload is what actually goes to the backend: the registration
// form plus the role and status the storefront pins.
type RegisterPayload struct {
	RegisterRequest
	Role   string `json:"role"`
	Status bool   `json:"status"`
}

// LoginResponse mirrors the backend's auth endpoints: the bearer token at
// the top level, the user under data.
type LoginResponse struct {
	Token string `json:"token"`
	Data  User   `json:"data"`
}
