package products

import (
	"backoffice_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products", prm.ListProducts)
	r.Post("/products", prm.CreateProduct)
	r.Get("/products/{id}", prm.GetProduct)
	r.Put("/products/{id}", prm.UpdateProduct)
	r.Delete("/products/{id}", prm.DeleteProduct)

	// Image sub-resources
	r.Post("/products/{id}/images", prm.AddImage)
	r.Delete("/products/{id}/images/{image_id}", prm.DeleteImage)
}
