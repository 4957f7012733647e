package categories

import (
	"backoffice_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CategoryRoutesManager struct {
	logger          *gecho.Logger
	categoryService *services.CategoryService
}

func NewCategoryRoutesManager(
	logger *gecho.Logger,
	categoryService *services.CategoryService,
) *CategoryRoutesManager {
	return &CategoryRoutesManager{
		logger:          logger,
		categoryService: categoryService,
	}
}

func (crm *CategoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/categories", crm.ListCategories)
	r.Post("/categories", crm.CreateCategory)
	r.Get("/categories/{id}", crm.GetCategory)
	r.Put("/categories/{id}", crm.UpdateCategory)
	r.Delete("/categories/{id}", crm.DeleteCategory)
}
