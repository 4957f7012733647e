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

type OrderService struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	db              *database.DB
	productService  *ProductService
	customerService *CustomerService
	emailService    *EmailService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	productService *ProductService,
	customerService *CustomerService,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		logger:          logger,
		cfg:             cfg,
		db:              db,
		productService:  productService,
		customerService: customerService,
		emailService:    emailService,
	}
}

// OrderListResult wraps the order list response with metadata
type OrderListResult struct {
	Orders     []tables.Order      `json:"orders"`
	Pagination database.Pagination `json:"pagination"`
}

// GetAllOrders returns orders with their items, newest first
func (os *OrderService) GetAllOrders(ctx context.Context, page, pageSize int) (*OrderListResult, error) {
	query := database.Query[tables.Order](os.db).
		Relation("Items").
		OrderBy("created_at", database.DESC)

	paged, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return &OrderListResult{
		Orders:     paged.Data,
		Pagination: paged.Pagination,
	}, nil
}

// GetOrderByID returns an order with its items or lib.ErrNotFound
func (os *OrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("id", id).
		Relation("Items").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// GetOrdersByCustomer returns all orders of one customer, newest first
func (os *OrderService) GetOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]tables.Order, error) {
	orders, err := database.Query[tables.Order](os.db).
		Where("customer_id", customerID).
		Relation("Items").
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return orders, nil
}

// CreateOrder creates an order together with its initial item set in a
// single transaction. Item prices are snapshots: a submitted price is
// kept as-is, a zero price is filled from the product's current price.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.OrderRequest) (*tables.Order, error) {
	if _, err := os.customerService.GetCustomerByID(ctx, req.Customer); err != nil {
		return nil, err
	}

	productMap, err := os.resolveProducts(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	status := tables.OrderStatusPending
	if req.Status != "" {
		status = tables.OrderStatus(req.Status)
	}

	order := &tables.Order{
		ID:              uuid.New(),
		CustomerID:      req.Customer,
		Status:          status,
		TotalPrice:      req.TotalPrice,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	err = database.Transaction(ctx, os.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return err
		}

		plan := PlanSync(nil, os.buildItems(order.ID, req.Items, nil, productMap))
		return ApplySync(ctx, tx, plan, "product_id", "quantity", "price")
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	os.logger.Info("Order created",
		gecho.Field("order_id", order.ID),
		gecho.Field("items", len(req.Items)))
	return os.GetOrderByID(ctx, order.ID)
}

// UpdateOrder applies the whitelisted order fields and reconciles the
// submitted item collection against the persisted set: items matched by
// id are updated in place, unmatched submissions become new items, and
// persisted items omitted from the submission are deleted. The whole
// pass runs in one transaction.
func (os *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, req *structs.OrderRequest) (*tables.Order, error) {
	existing, err := os.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customerID := existing.CustomerID
	if req.Customer != uuid.Nil {
		if _, err := os.customerService.GetCustomerByID(ctx, req.Customer); err != nil {
			return nil, err
		}
		customerID = req.Customer
	}

	status := existing.Status
	if req.Status != "" {
		status = tables.OrderStatus(req.Status)
	}

	productMap, err := os.resolveProducts(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	err = database.Transaction(ctx, os.db, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*tables.Order)(nil)).
			Set("customer_id = ?", customerID).
			Set("status = ?", status).
			Set("total_price = ?", req.TotalPrice).
			Set("shipping_address = ?", req.ShippingAddress).
			Set("payment_method = ?", req.PaymentMethod).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}

		plan := PlanSync(existing.Items, os.buildItems(id, req.Items, existing.Items, productMap))
		return ApplySync(ctx, tx, plan, "product_id", "quantity", "price")
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return os.GetOrderByID(ctx, id)
}

// UpdateOrderStatus transitions an order to a recognized status. An
// unrecognized value is rejected and the order stays unchanged.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error) {
	if !status.IsValid() {
		return nil, lib.ErrInvalidStatus
	}

	order, err := os.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = database.UpdateByID[tables.Order](os.db, ctx, id, map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	// Notify the customer asynchronously; a mail failure never fails
	// the transition.
	go os.notifyStatusChange(order, status)

	return os.GetOrderByID(ctx, id)
}

func (os *OrderService) notifyStatusChange(order *tables.Order, status tables.OrderStatus) {
	customer, err := os.customerService.GetCustomerByID(context.Background(), order.CustomerID)
	if err != nil {
		os.logger.Warn("Failed to resolve customer for status notification",
			gecho.Field("error", err),
			gecho.Field("order_id", order.ID))
		return
	}

	if err := os.emailService.SendOrderStatusEmail(customer, order, status); err != nil {
		os.logger.Error("Failed to send order status email",
			gecho.Field("error", err),
			gecho.Field("order_id", order.ID))
	}
}

// DeleteOrder removes an order and its items in one transaction
func (os *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ctx, os.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*tables.OrderItem)(nil)).
			Where("order_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().
			Model((*tables.Order)(nil)).
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
	return nil
}

// GetOrderItemsByUser returns the order items whose orders belong to
// the given identity's customer record.
func (os *OrderService) GetOrderItemsByUser(ctx context.Context, userID uuid.UUID) ([]tables.OrderItem, error) {
	items, err := database.RawQuery[tables.OrderItem](os.db, ctx, `
		SELECT oi.*
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN customers cu ON cu.id = o.customer_id
		WHERE cu.user_id = ?
		ORDER BY oi.created_at DESC`, userID)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return items, nil
}

// resolveProducts validates that every referenced product exists and is
// active, returning them keyed by id.
func (os *OrderService) resolveProducts(ctx context.Context, items []structs.OrderItemPayload) (map[uuid.UUID]tables.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.Product]; ok {
			continue
		}
		seen[item.Product] = struct{}{}
		ids = append(ids, item.Product)
	}

	products, err := os.productService.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]tables.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}

	for _, id := range ids {
		product, ok := productMap[id]
		if !ok {
			return nil, fmt.Errorf("product %s: %w", id, lib.ErrNotFound)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("product %s (%s) is no longer available", product.ID, product.Name)
		}
	}

	return productMap, nil
}

// buildItems turns submitted item payloads into records ready for
// synchronization. Matched items keep their identity, creation time and
// snapshot price; new items snapshot the current product price when the
// payload carries none.
func (os *OrderService) buildItems(orderID uuid.UUID, payloads []structs.OrderItemPayload, existing []tables.OrderItem, products map[uuid.UUID]tables.Product) []tables.OrderItem {
	known := make(map[uuid.UUID]tables.OrderItem, len(existing))
	for _, item := range existing {
		known[item.ID] = item
	}

	items := make([]tables.OrderItem, 0, len(payloads))
	for _, payload := range payloads {
		item := tables.OrderItem{
			OrderID:   orderID,
			ProductID: payload.Product,
			Quantity:  payload.Quantity,
			Price:     payload.Price,
			CreatedAt: time.Now(),
		}

		if payload.ID != nil {
			if current, ok := known[*payload.ID]; ok {
				item.ID = current.ID
				item.CreatedAt = current.CreatedAt
				if payload.Price == 0 {
					item.Price = current.Price
				}
			} else {
				// Unknown id: treated as a new item
				item.ID = uuid.New()
			}
		} else {
			item.ID = uuid.New()
		}

		if item.Price == 0 {
			if product, ok := products[payload.Product]; ok {
				item.Price = product.Price
			}
		}

		items = append(items, item)
	}
	return items
}
