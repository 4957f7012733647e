package services

import (
	"backoffice_server/database"
	"backoffice_server/lib"
	"backoffice_server/structs"
	"backoffice_server/structs/tables"
	"context"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CategoryService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCategoryService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CategoryService {
	return &CategoryService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// CategoryProductSummary is the abbreviated product listing embedded in
// a category detail response.
type CategoryProductSummary struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Price structs.Money `json:"price"`
}

type CategoryProductsInfo struct {
	Count    int                      `json:"count"`
	Products []CategoryProductSummary `json:"products"`
}

// CategoryDetail is the retrieve representation: the category plus a
// nested product count and the first few products.
type CategoryDetail struct {
	tables.Category
	ParentName   string               `json:"parent_name,omitempty"`
	ProductsInfo CategoryProductsInfo `json:"products_info"`
}

// GetAllCategories returns every category
func (cs *CategoryService) GetAllCategories(ctx context.Context) ([]tables.Category, error) {
	return database.Query[tables.Category](cs.db).
		OrderBy("name", database.ASC).
		All(ctx)
}

// GetCategoryByID returns a single category or lib.ErrNotFound
func (cs *CategoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*tables.Category, error) {
	category, err := database.FindByID[tables.Category](cs.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if category == nil {
		return nil, lib.ErrNotFound
	}
	return category, nil
}

// GetCategoryDetail returns the category with its nested product summary
func (cs *CategoryService) GetCategoryDetail(ctx context.Context, id uuid.UUID) (*CategoryDetail, error) {
	cacheKey := fmt.Sprintf("categories:detail:%s", id)

	var cached CategoryDetail
	if hit, err := cs.cacheService.GetJSON(cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	category, err := cs.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &CategoryDetail{Category: *category}

	if category.ParentID != nil {
		parent, err := database.FindByID[tables.Category](cs.db, ctx, *category.ParentID)
		if err == nil && parent != nil {
			detail.ParentName = parent.Name
		}
	}

	count, err := database.Query[tables.Product](cs.db).
		Where("category_id", id).
		Count(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	products, err := database.Query[tables.Product](cs.db).
		Where("category_id", id).
		OrderBy("created_at", database.ASC).
		Limit(5).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	detail.ProductsInfo = CategoryProductsInfo{
		Count:    count,
		Products: make([]CategoryProductSummary, 0, len(products)),
	}
	for _, product := range products {
		detail.ProductsInfo.Products = append(detail.ProductsInfo.Products, CategoryProductSummary{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		})
	}

	if err := cs.cacheService.SetJSON(cacheKey, detail); err != nil {
		cs.logger.Warn("Failed to cache category detail", gecho.Field("error", err))
	}

	return detail, nil
}

// CreateCategory persists a new category from the whitelisted request fields
func (cs *CategoryService) CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*tables.Category, error) {
	if req.Parent != nil {
		if _, err := cs.GetCategoryByID(ctx, *req.Parent); err != nil {
			return nil, err
		}
	}

	category := &tables.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.Parent,
		Image:       req.Image,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	created, err := database.Create(cs.db, ctx, category)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.cacheService.InvalidateCategories()
	return created, nil
}

// UpdateCategory applies the whitelisted request fields onto an existing category
func (cs *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *structs.CategoryRequest) (*tables.Category, error) {
	if _, err := cs.GetCategoryByID(ctx, id); err != nil {
		return nil, err
	}

	if req.Parent != nil {
		if err := cs.checkParentCycle(ctx, id, *req.Parent); err != nil {
			return nil, err
		}
	}

	_, err := database.UpdateByID[tables.Category](cs.db, ctx, id, map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"parent_id":   req.Parent,
		"image":       req.Image,
		"updated_at":  time.Now(),
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.cacheService.InvalidateCategories()
	return cs.GetCategoryByID(ctx, id)
}

// DeleteCategory removes a category
func (cs *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	deleted, err := database.DeleteByID[tables.Category](cs.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if deleted == 0 {
		return lib.ErrNotFound
	}

	cs.cacheService.InvalidateCategories()
	return nil
}

// checkParentCycle walks the proposed parent chain and rejects any
// assignment that would make the category its own ancestor.
func (cs *CategoryService) checkParentCycle(ctx context.Context, id, parentID uuid.UUID) error {
	const maxDepth = 64

	current := parentID
	for depth := 0; depth < maxDepth; depth++ {
		if current == id {
			return lib.ErrCategoryCycle
		}

		parent, err := database.FindByID[tables.Category](cs.db, ctx, current)
		if err != nil {
			return lib.MapPgError(err)
		}
		if parent == nil {
			return lib.ErrNotFound
		}
		if parent.ParentID == nil {
			return nil
		}
		current = *parent.ParentID
	}

	return lib.ErrCategoryCycle
}
