package structs

import "github.com/google/uuid"

// CategoryRequest is the whitelist of category fields a caller may set.
type CategoryRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Parent      *uuid.UUID `json:"parent" validate:"omitempty,uuid4"`
	Image       string     `json:"image" validate:"omitempty,max=500"`
}

// ProductImagePayload is a submitted image in a product create/update.
// A payload carrying the id of an existing image updates it in place;
// without a matching id a new image is created.
type ProductImagePayload struct {
	ID        *uuid.UUID `json:"id" validate:"omitempty,uuid4"`
	Image     string     `json:"image" validate:"required,max=500"`
	IsPrimary bool       `json:"is_primary"`
}

type ProductRequest struct {
	Name          string                `json:"name" validate:"required,min=1,max=200"`
	Description   string                `json:"description" validate:"omitempty,max=5000"`
	Price         Money                 `json:"price" validate:"gte=0"`
	DiscountPrice *Money                `json:"discount_price" validate:"omitempty,gte=0"`
	Category      *uuid.UUID            `json:"category" validate:"omitempty,uuid4"`
	Stock         int                   `json:"stock" validate:"gte=0"`
	IsActive      *bool                 `json:"is_active"`
	Images        []ProductImagePayload `json:"images" validate:"omitempty,dive"`
}

type ProductImageRequest struct {
	Image     string `json:"image" validate:"required,max=500"`
	IsPrimary bool   `json:"is_primary"`
}
