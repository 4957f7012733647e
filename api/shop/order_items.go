package shop

import (
	"backoffice_server/api/middleware"
	"backoffice_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListOwnOrderItems returns every item across the caller's orders.
func (srm *ShopRoutesManager) ListOwnOrderItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	items, err := srm.orderService.GetOrderItemsByUser(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Failed to fetch order items", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(items),
		gecho.Send(),
	)
}
