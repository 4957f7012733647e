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
	"github.com/uptrace/bun"
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	IsActive   *bool          `json:"is_active,omitempty"`
	Category   *uuid.UUID     `json:"category,omitempty"`
	MinPrice   *structs.Money `json:"min_price,omitempty"`
	MaxPrice   *structs.Money `json:"max_price,omitempty"`
	SearchTerm string         `json:"search_term,omitempty"` // matches name and description

	// Sorting
	SortBy        string `json:"sort_by"`        // created_at, price, name, stock
	SortDirection string `json:"sort_direction"` // ASC or DESC

	// Relations
	IncludeImages bool `json:"include_images"`
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
}

var productSortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"price":      "price",
	"name":       "name",
	"stock":      "stock",
}

// GetAllProducts retrieves products with filtering and pagination.
// Unfiltered pages are served from cache when possible.
func (ps *ProductService) GetAllProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	cacheKey := ""
	if opts.SearchTerm == "" && opts.IsActive == nil && opts.Category == nil &&
		opts.MinPrice == nil && opts.MaxPrice == nil {
		cacheKey = fmt.Sprintf("products:list:%d:%d:%s:%s:%t",
			opts.Page, opts.PageSize, opts.SortBy, opts.SortDirection, opts.IncludeImages)

		var cached ProductListResult
		if hit, err := ps.cacheService.GetJSON(cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	query := database.Query[tables.Product](ps.db)
	query = ps.applyFilters(query, opts)
	query = query.OrderBy(productSortColumns[opts.SortBy], database.OrderDirection(opts.SortDirection))

	if opts.IncludeImages {
		query = query.Relation("Images")
	}

	paged, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("pageSize", opts.PageSize))
		return nil, lib.MapPgError(err)
	}

	result := &ProductListResult{
		Products:   paged.Data,
		Pagination: paged.Pagination,
	}

	if cacheKey != "" {
		if err := ps.cacheService.SetJSON(cacheKey, result); err != nil {
			ps.logger.Warn("Failed to cache product list", gecho.Field("error", err))
		}
	}

	return result, nil
}

func (ps *ProductService) applyDefaultOptions(opts *ProductListOptions) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 20
	}
	if _, ok := productSortColumns[opts.SortBy]; !ok {
		opts.SortBy = "created_at"
	}
	if opts.SortDirection != string(database.ASC) && opts.SortDirection != string(database.DESC) {
		opts.SortDirection = string(database.DESC)
	}
}

func (ps *ProductService) applyFilters(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	if opts.IsActive != nil {
		query = query.Where("is_active", *opts.IsActive)
	}
	if opts.Category != nil {
		query = query.Where("category_id", *opts.Category)
	}
	if opts.MinPrice != nil {
		query = query.WhereOp("price", ">=", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		query = query.WhereOp("price", "<=", *opts.MaxPrice)
	}
	if opts.SearchTerm != "" {
		pattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	return query
}

// GetProductByID returns a product with its images or lib.ErrNotFound
func (ps *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Relation("Images").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}
	return product, nil
}

// GetProductsByIDs returns the products matching the given ids
func (ps *ProductService) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error) {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	products, err := database.Query[tables.Product](ps.db).
		WhereIn("id", values).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

// CreateProduct persists a product together with its submitted images
// in a single transaction.
func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.ProductRequest) (*tables.Product, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &tables.Product{
		ID:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		CategoryID:    req.Category,
		Stock:         req.Stock,
		IsActive:      isActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	err := database.Transaction(ctx, ps.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(product).Exec(ctx); err != nil {
			return err
		}

		plan := PlanSync(nil, ps.buildImages(product.ID, req.Images, nil))
		return ApplySync(ctx, tx, plan, "image", "is_primary")
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.cacheService.InvalidateProducts()
	ps.cacheService.InvalidateCategories()
	return ps.GetProductByID(ctx, product.ID)
}

// UpdateProduct applies the whitelisted request fields and reconciles
// the submitted image set against the persisted one, all in one
// transaction.
func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *structs.ProductRequest) (*tables.Product, error) {
	existing, err := ps.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isActive := existing.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	err = database.Transaction(ctx, ps.db, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*tables.Product)(nil)).
			Set("name = ?", req.Name).
			Set("description = ?", req.Description).
			Set("price = ?", req.Price).
			Set("discount_price = ?", req.DiscountPrice).
			Set("category_id = ?", req.Category).
			Set("stock = ?", req.Stock).
			Set("is_active = ?", isActive).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}

		plan := PlanSync(existing.Images, ps.buildImages(id, req.Images, existing.Images))
		return ApplySync(ctx, tx, plan, "image", "is_primary")
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.cacheService.InvalidateProducts()
	ps.cacheService.InvalidateCategories()
	return ps.GetProductByID(ctx, id)
}

// buildImages turns submitted image payloads into records ready for
// synchronization. Payload ids that do not belong to this product are
// treated as new images.
func (ps *ProductService) buildImages(productID uuid.UUID, payloads []structs.ProductImagePayload, existing []tables.ProductImage) []tables.ProductImage {
	known := make(map[uuid.UUID]tables.ProductImage, len(existing))
	for _, image := range existing {
		known[image.ID] = image
	}

	images := make([]tables.ProductImage, 0, len(payloads))
	for _, payload := range payloads {
		image := tables.ProductImage{
			ProductID: productID,
			Image:     payload.Image,
			IsPrimary: payload.IsPrimary,
			CreatedAt: time.Now(),
		}
		if payload.ID != nil {
			if current, ok := known[*payload.ID]; ok {
				image.ID = current.ID
				image.CreatedAt = current.CreatedAt
			} else {
				image.ID = uuid.New()
			}
		} else {
			image.ID = uuid.New()
		}
		images = append(images, image)
	}
	return images
}

// DeleteProduct removes a product and, through ownership, its images
func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, ps.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*tables.ProductImage)(nil)).
			Where("product_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().
			Model((*tables.Product)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return lib.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return lib.MapPgError(err)
	}

	ps.cacheService.InvalidateProducts()
	ps.cacheService.InvalidateCategories()
	return nil
}

// AddImage creates a new image under the product
func (ps *ProductService) AddImage(ctx context.Context, productID uuid.UUID, req *structs.ProductImageRequest) (*tables.ProductImage, error) {
	if _, err := ps.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	image := &tables.ProductImage{
		ID:        uuid.New(),
		ProductID: productID,
		Image:     req.Image,
		IsPrimary: req.IsPrimary,
		CreatedAt: time.Now(),
	}

	created, err := database.Create(ps.db, ctx, image)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.cacheService.InvalidateProducts()
	return created, nil
}

// DeleteImage removes an image by id, but only when it belongs to the
// given product. An image under a different product reports not-found
// and deletes nothing.
func (ps *ProductService) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) error {
	deleted, err := database.Query[tables.ProductImage](ps.db).
		Where("id", imageID).
		Where("product_id", productID).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if deleted == 0 {
		return lib.ErrNotFound
	}

	ps.cacheService.InvalidateProducts()
	return nil
}
