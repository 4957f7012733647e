package orders

import (
	"backoffice_server/handling"
	"backoffice_server/lib"
	"backoffice_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		orm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please check the order information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	order, err := orm.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.BadRequest(w, gecho.WithMessage("Order references an unknown customer or product"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to create order", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.WithMessage("Order created successfully"),
		gecho.Send(),
	)
}
