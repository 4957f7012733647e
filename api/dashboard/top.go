package dashboard

import (
	"backoffice_server/handling"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
)

func (drm *DashboardRoutesManager) GetTopProducts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			gecho.BadRequest(w, gecho.WithMessage("Invalid limit parameter"), gecho.Send())
			return
		}
		limit = parsed
	}

	products, err := drm.statsService.GetTopProducts(r.Context(), limit)
	if err != nil {
		handling.HandleError(err, "Failed to compute top products", drm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(products),
		gecho.Send(),
	)
}

func (drm *DashboardRoutesManager) GetTopCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := drm.statsService.GetTopCustomers(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to compute top customers", drm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(customers),
		gecho.Send(),
	)
}
