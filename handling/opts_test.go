package handling

import (
	"backoffice_server/structs"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptionsEmpty(t *testing.T) {
	req := httptest.NewRequest("GET", "/products", nil)

	opts, err := ParseProductListOptions(req)
	require.NoError(t, err)
	assert.Zero(t, opts.Page)
	assert.Nil(t, opts.IsActive)
	assert.Nil(t, opts.MinPrice)
}

func TestParseProductListOptionsFull(t *testing.T) {
	req := httptest.NewRequest("GET",
		"/products?page=2&page_size=25&is_active=true&search=rose&min_price=5.00&max_price=20.50&sort_by=price&sort_direction=desc&include_images=true", nil)

	opts, err := ParseProductListOptions(req)
	require.NoError(t, err)

	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 25, opts.PageSize)
	require.NotNil(t, opts.IsActive)
	assert.True(t, *opts.IsActive)
	assert.Equal(t, "rose", opts.SearchTerm)
	require.NotNil(t, opts.MinPrice)
	assert.Equal(t, structs.Money(500), *opts.MinPrice)
	require.NotNil(t, opts.MaxPrice)
	assert.Equal(t, structs.Money(2050), *opts.MaxPrice)
	assert.Equal(t, "price", opts.SortBy)
	assert.Equal(t, "DESC", opts.SortDirection)
	assert.True(t, opts.IncludeImages)
}

func TestParseProductListOptionsBadValues(t *testing.T) {
	for _, url := range []string{
		"/products?page=abc",
		"/products?is_active=maybe",
		"/products?min_price=1.234",
		"/products?category=not-a-uuid",
	} {
		req := httptest.NewRequest("GET", url, nil)
		_, err := ParseProductListOptions(req)
		assert.Error(t, err, "url %s", url)
	}
}

func TestParsePagination(t *testing.T) {
	req := httptest.NewRequest("GET", "/orders?page=3&page_size=10", nil)

	page, pageSize, err := ParsePagination(req)
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 10, pageSize)

	req = httptest.NewRequest("GET", "/orders", nil)
	page, pageSize, err = ParsePagination(req)
	require.NoError(t, err)
	assert.Zero(t, page)
	assert.Zero(t, pageSize)

	req = httptest.NewRequest("GET", "/orders?page=x", nil)
	_, _, err = ParsePagination(req)
	assert.Error(t, err)
}
