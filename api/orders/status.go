package orders

import (
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

// UpdateOrderStatus transitions an order to a new status. An
// unrecognized value is rejected and the order is left untouched.
func (orm *OrderRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.OrderStatusRequest](r)
	if err != nil {
		orm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please provide a status value"), gecho.WithData(err), gecho.Send())
		return
	}

	order, err := orm.orderService.UpdateOrderStatus(r.Context(), id, tables.OrderStatus(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrInvalidStatus):
			gecho.BadRequest(w, gecho.WithMessage("Invalid status value"), gecho.Send())
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
		default:
			handling.HandleError(err, "Failed to update order status", orm.logger, w)
		}
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.WithMessage("Order status updated successfully"),
		gecho.Send(),
	)
}
