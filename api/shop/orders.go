package shop

import (
	"backoffice_server/api/middleware"
	"backoffice_server/handling"
	"backoffice_server/lib"
	"backoffice_server/structs"
	"backoffice_server/structs/tables"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListOwnOrders returns the caller's orders. A user without a customer
// profile simply has no orders.
func (srm *ShopRoutesManager) ListOwnOrders(w http.ResponseWriter, r *http.Request) {
	customer, ok := srm.ownCustomer(w, r)
	if customer == nil {
		if ok {
			gecho.Success(w, gecho.WithData([]tables.Order{}), gecho.Send())
		}
		return
	}

	orders, err := srm.orderService.GetOrdersByCustomer(r.Context(), customer.ID)
	if err != nil {
		handling.HandleError(err, "Failed to fetch orders", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(orders),
		gecho.Send(),
	)
}

// GetOwnOrder returns one of the caller's orders. Orders belonging to
// other customers read as not found.
func (srm *ShopRoutesManager) GetOwnOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	customer, ok := srm.ownCustomer(w, r)
	if customer == nil {
		if ok {
			gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
		}
		return
	}

	order, err := srm.orderService.GetOrderByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to fetch order", srm.logger, w)
		return
	}

	if order.CustomerID != customer.ID {
		gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

// CreateOwnOrder places an order for the caller's own customer profile,
// regardless of any customer id in the body.
func (srm *ShopRoutesManager) CreateOwnOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	customer, err := srm.customerService.GetCustomerByUserID(r.Context(), claims.Sub)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.BadRequest(w, gecho.WithMessage("Create a customer profile before placing orders"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to fetch customer profile", srm.logger, w)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		srm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please check the order information and try again"), gecho.WithData(err), gecho.Send())
		return
	}
	body.Customer = customer.ID

	order, err := srm.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.BadRequest(w, gecho.WithMessage("Order references an unknown product"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to create order", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.WithMessage("Order created successfully"),
		gecho.Send(),
	)
}

// ownCustomer resolves the caller's customer profile. It writes the
// response itself on auth and lookup failures; a nil customer with
// ok=true means the caller has no profile yet.
func (srm *ShopRoutesManager) ownCustomer(w http.ResponseWriter, r *http.Request) (*tables.Customer, bool) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return nil, false
	}

	customer, err := srm.customerService.GetCustomerByUserID(r.Context(), claims.Sub)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			return nil, true
		}
		handling.HandleError(err, "Failed to fetch customer profile", srm.logger, w)
		return nil, false
	}

	return customer, true
}
