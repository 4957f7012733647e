package services

import (
	"encoding/json"
	"testing"

	"backoffice_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A store with no data still serializes its collections as empty
// arrays, never null, and revenue as the string "0".
func TestDashboardStatsEmptyStoreShape(t *testing.T) {
	stats := DashboardStats{
		TopProducts:  []TopProduct{},
		RecentOrders: []tables.Order{},
	}

	raw, err := json.Marshal(stats)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"total_revenue":"0"`)
	assert.Contains(t, string(raw), `"top_products":[]`)
	assert.Contains(t, string(raw), `"recent_orders":[]`)
	assert.NotContains(t, string(raw), "null")
}
