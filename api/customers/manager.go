package customers

import (
	"backoffice_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CustomerRoutesManager struct {
	logger          *gecho.Logger
	customerService *services.CustomerService
	orderService    *services.OrderService
}

func NewCustomerRoutesManager(
	logger *gecho.Logger,
	customerService *services.CustomerService,
	orderService *services.OrderService,
) *CustomerRoutesManager {
	return &CustomerRoutesManager{
		logger:          logger,
		customerService: customerService,
		orderService:    orderService,
	}
}

func (crm *CustomerRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/customers", crm.ListCustomers)
	r.Post("/customers", crm.CreateCustomer)
	r.Get("/customers/{id}", crm.GetCustomer)
	r.Put("/customers/{id}", crm.UpdateCustomer)
	r.Delete("/customers/{id}", crm.DeleteCustomer)

	r.Get("/customers/{id}/orders", crm.ListCustomerOrders)
}
