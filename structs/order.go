package structs

import "github.com/google/uuid"

// OrderItemPayload is a submitted item in an order create/update. Items
// carrying the id of an existing item update it in place; items without
// a matching id are created; persisted items omitted from the
// submission are deleted.
type OrderItemPayload struct {
	ID       *uuid.UUID `json:"id" validate:"omitempty,uuid4"`
	Product  uuid.UUID  `json:"product" validate:"required,uuid4"`
	Quantity int        `json:"quantity" validate:"required,min=1"`
	Price    Money      `json:"price" validate:"gte=0"`
}

type OrderRequest struct {
	Customer        uuid.UUID          `json:"customer" validate:"omitempty,uuid4"`
	Status          string             `json:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	TotalPrice      Money              `json:"total_price" validate:"gte=0"`
	ShippingAddress string             `json:"shipping_address" validate:"required,max=500"`
	PaymentMethod   string             `json:"payment_method" validate:"required,max=50"`
	Items           []OrderItemPayload `json:"items" validate:"required,min=1,dive"`
}

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CustomerRequest struct {
	User     uuid.UUID `json:"user" validate:"omitempty,uuid4"`
	Username string    `json:"username" validate:"required,min=2,max=100"`
	Email    string    `json:"email" validate:"required,email"`
	Phone    string    `json:"phone" validate:"omitempty,min=10,max=20"`
	Address  string    `json:"address" validate:"omitempty,max=500"`
}
