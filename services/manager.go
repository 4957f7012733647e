package services

import (
	"backoffice_server/database"
	"backoffice_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	EmailService    *EmailService
	CacheService    *CacheService
	HealthService   *HealthService
	CategoryService *CategoryService
	ProductService  *ProductService
	CustomerService *CustomerService
	OrderService    *OrderService
	StatsService    *StatsService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db)
	categoryService := NewCategoryService(logger, db, cacheService)
	productService := NewProductService(logger, db, cacheService)
	customerService := NewCustomerService(logger, db)
	orderService := NewOrderService(logger, cfg, db, productService, customerService, emailService)
	statsService := NewStatsService(logger, db)

	return &ServiceManager{
		EmailService:    emailService,
		CacheService:    cacheService,
		HealthService:   healthService,
		CategoryService: categoryService,
		ProductService:  productService,
		CustomerService: customerService,
		OrderService:    orderService,
		StatsService:    statsService,
	}
}
