package tables

import (
	"backoffice_server/structs"
	"slices"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	tableName struct{}  `bun:"table:customers,alias:cu"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `bun:"user_id,type:uuid,notnull,unique" json:"user_id"` // identity provider subject
	Username  string    `bun:"username,notnull" json:"username" validate:"required,min=2,max=100"`
	Email     string    `bun:"email,notnull" json:"email" validate:"required,email"`
	Phone     string    `bun:"phone" json:"phone,omitempty" validate:"omitempty,min=10,max=20"`
	Address   string    `bun:"address" json:"address,omitempty" validate:"omitempty,max=500"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

type Order struct {
	tableName       struct{}      `bun:"table:orders,alias:o"`
	ID              uuid.UUID     `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CustomerID      uuid.UUID     `bun:"customer_id,type:uuid,notnull" json:"customer" validate:"required,uuid4"`
	Status          OrderStatus   `bun:"status,notnull,default:'pending'" json:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	TotalPrice      structs.Money `bun:"total_price,notnull" json:"total_price" validate:"gte=0"`
	ShippingAddress string        `bun:"shipping_address,notnull" json:"shipping_address" validate:"required,max=500"`
	PaymentMethod   string        `bun:"payment_method,notnull" json:"payment_method" validate:"required,max=50"`
	CreatedAt       time.Time     `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt       time.Time     `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	Items           []OrderItem   `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderID   uuid.UUID `bun:"order_id,type:uuid,notnull" json:"order_id"`
	ProductID uuid.UUID `bun:"product_id,type:uuid,notnull" json:"product" validate:"required,uuid4"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity" validate:"required,min=1"`

	// Unit price snapshot taken at order time. Later product price
	// changes never touch existing order items.
	Price structs.Money `bun:"price,notnull" json:"price" validate:"gte=0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

func (oi OrderItem) GetID() uuid.UUID {
	return oi.ID
}

// LineTotal is the revenue contribution of the item: snapshot unit
// price times quantity.
func (oi *OrderItem) LineTotal() structs.Money {
	return oi.Price.Mul(oi.Quantity)
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValid reports whether s is one of the recognized order statuses.
func (s OrderStatus) IsValid() bool {
	return slices.Contains(orderStatuses, s)
}
