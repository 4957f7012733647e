package dashboard

import (
	"backoffice_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (drm *DashboardRoutesManager) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := drm.statsService.GetDashboardStats(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to compute dashboard stats", drm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(stats),
		gecho.Send(),
	)
}
