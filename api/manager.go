package api

import (
	"backoffice_server/api/categories"
	"backoffice_server/api/customers"
	"backoffice_server/api/dashboard"
	"backoffice_server/api/health"
	"backoffice_server/api/middleware"
	"backoffice_server/api/orders"
	"backoffice_server/api/products"
	"backoffice_server/api/shop"
	"backoffice_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	mw *middleware.Middleware

	categoryRoutes  *categories.CategoryRoutesManager
	productRoutes   *products.ProductRoutesManager
	orderRoutes     *orders.OrderRoutesManager
	customerRoutes  *customers.CustomerRoutesManager
	dashboardRoutes *dashboard.DashboardRoutesManager
	shopRoutes      *shop.ShopRoutesManager
	healthRoutes    *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		mw:              mw,
		categoryRoutes:  categories.NewCategoryRoutesManager(logger, sm.CategoryService),
		productRoutes:   products.NewProductRoutesManager(logger, sm.ProductService),
		orderRoutes:     orders.NewOrderRoutesManager(logger, sm.OrderService),
		customerRoutes:  customers.NewCustomerRoutesManager(logger, sm.CustomerService, sm.OrderService),
		dashboardRoutes: dashboard.NewDashboardRoutesManager(logger, sm.StatsService),
		shopRoutes:      shop.NewShopRoutesManager(logger, sm.CustomerService, sm.OrderService),
		healthRoutes:    health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	// Unauthenticated: health and metrics
	rm.healthRoutes.RegisterRoutes(r)

	// Back-office surface, staff only
	r.Group(func(r chi.Router) {
		r.Use(rm.mw.UserAuthMiddleware)
		r.Use(rm.mw.StaffAuthMiddleware)

		rm.categoryRoutes.RegisterRoutes(r)
		rm.productRoutes.RegisterRoutes(r)
		rm.orderRoutes.RegisterRoutes(r)
		rm.customerRoutes.RegisterRoutes(r)
		rm.dashboardRoutes.RegisterRoutes(r)
	})

	// Customer surface, any authenticated user
	r.Group(func(r chi.Router) {
		r.Use(rm.mw.UserAuthMiddleware)

		rm.shopRoutes.RegisterRoutes(r)
	})
}
