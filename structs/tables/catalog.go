package tables

import (
	"backoffice_server/structs"
	"time"

	"github.com/google/uuid"
)

type Category struct {
	tableName   struct{}   `bun:"table:categories,alias:c"`
	ID          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string     `bun:"name,notnull" json:"name" validate:"required,min=1,max=100"`
	Description string     `bun:"description" json:"description,omitempty"`
	ParentID    *uuid.UUID `bun:"parent_id,type:uuid" json:"parent,omitempty" validate:"omitempty,uuid4"`
	Image       string     `bun:"image" json:"image,omitempty"` // path/URL, bytes live in the file store
	CreatedAt   time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

type Product struct {
	tableName     struct{}       `bun:"table:products,alias:p"`
	ID            uuid.UUID      `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name          string         `bun:"name,notnull" json:"name" validate:"required,min=1,max=200"`
	Description   string         `bun:"description" json:"description,omitempty"`
	Price         structs.Money  `bun:"price,notnull" json:"price" validate:"gte=0"` // stored in cents
	DiscountPrice *structs.Money `bun:"discount_price" json:"discount_price,omitempty" validate:"omitempty,gte=0"`
	CategoryID    *uuid.UUID     `bun:"category_id,type:uuid" json:"category,omitempty" validate:"omitempty,uuid4"`
	Stock         int            `bun:"stock,notnull,default:0" json:"stock" validate:"gte=0"`
	IsActive      bool           `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt     time.Time      `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt     time.Time      `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	Images        []ProductImage `bun:"rel:has-many,join:id=product_id" json:"images,omitempty"`
}

// ProductImage represents an image for a product
type ProductImage struct {
	tableName struct{}  `bun:"table:product_images,alias:pi"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID uuid.UUID `bun:"product_id,type:uuid,notnull" json:"product_id"`
	Image     string    `bun:"image,notnull" json:"image"`
	IsPrimary bool      `bun:"is_primary,notnull,default:false" json:"is_primary"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

func (pi ProductImage) GetID() uuid.UUID {
	return pi.ID
}
