package orders

import (
	"backoffice_server/handling"
	"backoffice_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (orm *OrderRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	if err := orm.orderService.DeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Order not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to delete order", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order deleted successfully"),
		gecho.Send(),
	)
}
