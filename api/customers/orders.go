package customers

import (
	"backoffice_server/handling"
	"backoffice_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListCustomerOrders returns every order placed by one customer.
func (crm *CustomerRoutesManager) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer id"), gecho.Send())
		return
	}

	// The customer must exist; an empty order list is not a 404.
	if _, err := crm.customerService.GetCustomerByID(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Customer not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to fetch customer", crm.logger, w)
		return
	}

	orders, err := crm.orderService.GetOrdersByCustomer(r.Context(), id)
	if err != nil {
		handling.HandleError(err, "Failed to fetch customer orders", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(orders),
		gecho.Send(),
	)
}
