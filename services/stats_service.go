package services

import (
	"backoffice_server/database"
	"backoffice_server/structs"
	"backoffice_server/structs/tables"
	"context"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// Aggregation results are computed from the live tables on every call.
// They are never cached: dashboards must reflect writes immediately.

type StatsService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewStatsService(logger *gecho.Logger, db *database.DB) *StatsService {
	return &StatsService{
		logger: logger,
		db:     db,
	}
}

// TopProduct ranks a product by units sold across all order items.
// Revenue uses the snapshot price recorded on each item, not the
// product's current price.
type TopProduct struct {
	ID        uuid.UUID     `bun:"id" json:"id"`
	Name      string        `bun:"name" json:"name"`
	TotalSold int           `bun:"total_sold" json:"total_sold"`
	Revenue   structs.Money `bun:"revenue" json:"revenue"`
}

// TopCustomer ranks a customer by total order value.
type TopCustomer struct {
	ID         uuid.UUID     `bun:"id" json:"id"`
	Username   string        `bun:"username" json:"username"`
	OrderCount int           `bun:"order_count" json:"order_count"`
	TotalSpent structs.Money `bun:"total_spent" json:"total_spent"`
}

// DashboardStats is the combined overview payload.
type DashboardStats struct {
	TotalProducts   int            `json:"total_products"`
	TotalCategories int            `json:"total_categories"`
	TotalOrders     int            `json:"total_orders"`
	TotalCustomers  int            `json:"total_customers"`
	TotalRevenue    structs.Money  `json:"total_revenue"`
	TopProducts     []TopProduct   `json:"top_products"`
	RecentOrders    []tables.Order `json:"recent_orders"`
}

type DailyRevenue struct {
	Date    string        `json:"date"`
	Revenue structs.Money `json:"revenue"`
}

type WeeklyRevenue struct {
	WeekStart string        `json:"week_start"`
	WeekEnd   string        `json:"week_end"`
	Revenue   structs.Money `json:"revenue"`
}

type MonthlyRevenue struct {
	Month   string        `json:"month"`
	Revenue structs.Money `json:"revenue"`
}

// RevenueRollups groups completed-order revenue into fixed recent
// windows: 7 days, 4 Monday-based weeks, 6 calendar months.
type RevenueRollups struct {
	Daily   []DailyRevenue   `json:"daily"`
	Weekly  []WeeklyRevenue  `json:"weekly"`
	Monthly []MonthlyRevenue `json:"monthly"`
}

const (
	dailyWindowCount   = 7
	weeklyWindowCount  = 4
	monthlyWindowCount = 6

	dashboardTopProducts  = 3
	dashboardRecentOrders = 5
	defaultTopLimit       = 10
)

type sumRow struct {
	Total int64 `bun:"total"`
}

// GetDashboardStats assembles entity counts, all-time revenue, the top
// three products and the five most recent orders.
func (ss *StatsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalProducts, err = database.Query[tables.Product](ss.db).Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCategories, err = database.Query[tables.Category](ss.db).Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = database.Query[tables.Order](ss.db).Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = database.Query[tables.Customer](ss.db).Count(ctx); err != nil {
		return nil, err
	}

	if stats.TotalRevenue, err = ss.totalRevenue(ctx); err != nil {
		return nil, err
	}

	if stats.TopProducts, err = ss.GetTopProducts(ctx, dashboardTopProducts); err != nil {
		return nil, err
	}

	recent, err := database.Query[tables.Order](ss.db).
		Relation("Items").
		OrderBy("created_at", database.DESC).
		Limit(dashboardRecentOrders).
		All(ctx)
	if err != nil {
		return nil, err
	}
	stats.RecentOrders = recent

	return stats, nil
}

// totalRevenue sums price*quantity across every order item.
func (ss *StatsService) totalRevenue(ctx context.Context) (structs.Money, error) {
	row, err := database.RawQueryOne[sumRow](ss.db, ctx,
		`SELECT COALESCE(SUM(price * quantity), 0) AS total FROM order_items`)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}
	return structs.Money(row.Total), nil
}

// GetTopProducts returns up to limit products ordered by units sold.
// Products that never sold are excluded.
func (ss *StatsService) GetTopProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	products, err := database.RawQuery[TopProduct](ss.db, ctx, `
		SELECT p.id AS id,
		       p.name AS name,
		       SUM(oi.quantity) AS total_sold,
		       SUM(oi.price * oi.quantity) AS revenue
		FROM products p
		JOIN order_items oi ON oi.product_id = p.id
		GROUP BY p.id, p.name
		HAVING SUM(oi.quantity) > 0
		ORDER BY total_sold DESC, revenue DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetTopCustomers returns up to ten customers ordered by lifetime spend.
func (ss *StatsService) GetTopCustomers(ctx context.Context) ([]TopCustomer, error) {
	customers, err := database.RawQuery[TopCustomer](ss.db, ctx, `
		SELECT cu.id AS id,
		       cu.username AS username,
		       COUNT(o.id) AS order_count,
		       COALESCE(SUM(o.total_price), 0) AS total_spent
		FROM customers cu
		JOIN orders o ON o.customer_id = cu.id
		GROUP BY cu.id, cu.username
		ORDER BY total_spent DESC, order_count DESC
		LIMIT ?`, defaultTopLimit)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// GetRevenueRollups computes the daily, weekly and monthly revenue
// windows relative to now. Windows with no orders report zero.
func (ss *StatsService) GetRevenueRollups(ctx context.Context) (*RevenueRollups, error) {
	return ss.revenueRollupsAt(ctx, time.Now())
}

func (ss *StatsService) revenueRollupsAt(ctx context.Context, today time.Time) (*RevenueRollups, error) {
	rollups := &RevenueRollups{
		Daily:   make([]DailyRevenue, 0, dailyWindowCount),
		Weekly:  make([]WeeklyRevenue, 0, weeklyWindowCount),
		Monthly: make([]MonthlyRevenue, 0, monthlyWindowCount),
	}

	for _, day := range DailyBuckets(today, dailyWindowCount) {
		revenue, err := ss.revenueBetween(ctx, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		rollups.Daily = append(rollups.Daily, DailyRevenue{
			Date:    day.Format("2006-01-02"),
			Revenue: revenue,
		})
	}

	for _, week := range WeeklyBuckets(today, weeklyWindowCount) {
		revenue, err := ss.revenueBetween(ctx, week.Start, week.End.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		rollups.Weekly = append(rollups.Weekly, WeeklyRevenue{
			WeekStart: week.Start.Format("2006-01-02"),
			WeekEnd:   week.End.Format("2006-01-02"),
			Revenue:   revenue,
		})
	}

	for _, month := range MonthlyBuckets(today, monthlyWindowCount) {
		start, end := month.Range()
		revenue, err := ss.revenueBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}
		rollups.Monthly = append(rollups.Monthly, MonthlyRevenue{
			Month:   month.String(),
			Revenue: revenue,
		})
	}

	return rollups, nil
}

// revenueBetween sums order totals created within [start, end).
func (ss *StatsService) revenueBetween(ctx context.Context, start, end time.Time) (structs.Money, error) {
	row, err := database.RawQueryOne[sumRow](ss.db, ctx,
		`SELECT COALESCE(SUM(total_price), 0) AS total FROM orders WHERE created_at >= ? AND created_at < ?`,
		start, end)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}
	return structs.Money(row.Total), nil
}
