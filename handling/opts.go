package handling

import (
	"backoffice_server/services"
	"backoffice_server/structs"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}
	var err error
	var valInt int
	var valBool bool

	// Parse pagination parameters
	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	// Parse boolean filters
	if isActive := query.Get("is_active"); isActive != "" {
		if valBool, err = strconv.ParseBool(isActive); err != nil {
			return nil, err
		}
		opts.IsActive = &valBool
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	if category := query.Get("category"); category != "" {
		id, err := uuid.Parse(category)
		if err != nil {
			return nil, err
		}
		opts.Category = &id
	}

	// Price filters accept decimal strings like "12.50"
	if minPrice := query.Get("min_price"); minPrice != "" {
		m, err := structs.ParseMoney(minPrice)
		if err != nil {
			return nil, err
		}
		opts.MinPrice = &m
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		m, err := structs.ParseMoney(maxPrice)
		if err != nil {
			return nil, err
		}
		opts.MaxPrice = &m
	}

	// Parse sorting parameters
	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	// Parse include_images flag
	if includeImages := query.Get("include_images"); includeImages != "" {
		if valBool, err = strconv.ParseBool(includeImages); err != nil {
			return nil, err
		}
		opts.IncludeImages = valBool
	}

	return opts, nil
}

// ParsePagination reads page/page_size query parameters for list
// endpoints that take no other filters.
func ParsePagination(r *http.Request) (page int, pageSize int, err error) {
	query := r.URL.Query()

	if p := query.Get("page"); p != "" {
		if page, err = strconv.Atoi(p); err != nil {
			return 0, 0, err
		}
	}
	if ps := query.Get("page_size"); ps != "" {
		if pageSize, err = strconv.Atoi(ps); err != nil {
			return 0, 0, err
		}
	}
	return page, pageSize, nil
}
