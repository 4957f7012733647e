package orders

import (
	"backoffice_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	result, err := orm.orderService.GetAllOrders(r.Context(), page, pageSize)
	if err != nil {
		handling.HandleError(err, "Failed to fetch orders", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}
