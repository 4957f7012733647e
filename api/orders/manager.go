package orders

import (
	"backoffice_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/orders", orm.ListOrders)
	r.Post("/orders", orm.CreateOrder)
	r.Get("/orders/{id}", orm.GetOrder)
	r.Put("/orders/{id}", orm.UpdateOrder)
	r.Delete("/orders/{id}", orm.DeleteOrder)

	r.Patch("/orders/{id}/status", orm.UpdateOrderStatus)
}
