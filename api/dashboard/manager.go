package dashboard

import (
	"backoffice_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type DashboardRoutesManager struct {
	logger       *gecho.Logger
	statsService *services.StatsService
}

func NewDashboardRoutesManager(
	logger *gecho.Logger,
	statsService *services.StatsService,
) *DashboardRoutesManager {
	return &DashboardRoutesManager{
		logger:       logger,
		statsService: statsService,
	}
}

func (drm *DashboardRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/stats", drm.GetStats)
	r.Get("/dashboard/top-products", drm.GetTopProducts)
	r.Get("/dashboard/top-customers", drm.GetTopCustomers)
	r.Get("/dashboard/revenue", drm.GetRevenue)
}
