package shop

import (
	"backoffice_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ShopRoutesManager serves the customer-facing surface. Every handler
// is scoped to the authenticated user; ids belonging to other users
// read as not found.
type ShopRoutesManager struct {
	logger          *gecho.Logger
	customerService *services.CustomerService
	orderService    *services.OrderService
}

func NewShopRoutesManager(
	logger *gecho.Logger,
	customerService *services.CustomerService,
	orderService *services.OrderService,
) *ShopRoutesManager {
	return &ShopRoutesManager{
		logger:          logger,
		customerService: customerService,
		orderService:    orderService,
	}
}

func (srm *ShopRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/shop/customers", srm.GetOwnCustomer)
	r.Post("/shop/customers", srm.CreateOwnCustomer)
	r.Put("/shop/customers", srm.UpdateOwnCustomer)

	r.Get("/shop/orders", srm.ListOwnOrders)
	r.Post("/shop/orders", srm.CreateOwnOrder)
	r.Get("/shop/orders/{id}", srm.GetOwnOrder)

	r.Get("/shop/order-items", srm.ListOwnOrderItems)
}
