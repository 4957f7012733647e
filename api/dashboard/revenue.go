package dashboard

import (
	"backoffice_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (drm *DashboardRoutesManager) GetRevenue(w http.ResponseWriter, r *http.Request) {
	rollups, err := drm.statsService.GetRevenueRollups(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to compute revenue rollups", drm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(rollups),
		gecho.Send(),
	)
}
