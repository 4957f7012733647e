package services

import (
	"backoffice_server/database"
	"backoffice_server/lib"
	"backoffice_server/structs"
	"backoffice_server/structs/tables"
	"context"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CustomerService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCustomerService(logger *gecho.Logger, db *database.DB) *CustomerService {
	return &CustomerService{
		logger: logger,
		db:     db,
	}
}

// CustomerListResult wraps the customer list response with metadata
type CustomerListResult struct {
	Customers  []tables.Customer   `json:"customers"`
	Pagination database.Pagination `json:"pagination"`
}

// GetAllCustomers returns customers with pagination, newest first
func (cs *CustomerService) GetAllCustomers(ctx context.Context, page, pageSize int) (*CustomerListResult, error) {
	query := database.Query[tables.Customer](cs.db).
		OrderBy("created_at", database.DESC)

	paged, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return &CustomerListResult{
		Customers:  paged.Data,
		Pagination: paged.Pagination,
	}, nil
}

// GetCustomerByID returns a single customer or lib.ErrNotFound
func (cs *CustomerService) GetCustomerByID(ctx context.Context, id uuid.UUID) (*tables.Customer, error) {
	customer, err := database.FindByID[tables.Customer](cs.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if customer == nil {
		return nil, lib.ErrNotFound
	}
	return customer, nil
}

// GetCustomerByUserID resolves the customer record owned by an identity
func (cs *CustomerService) GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (*tables.Customer, error) {
	customer, err := database.Query[tables.Customer](cs.db).
		Where("user_id", userID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if customer == nil {
		return nil, lib.ErrNotFound
	}
	return customer, nil
}

// CreateCustomer persists a customer profile bound to an identity.
// Each identity owns at most one customer record.
func (cs *CustomerService) CreateCustomer(ctx context.Context, userID uuid.UUID, req *structs.CustomerRequest) (*tables.Customer, error) {
	if existing, err := cs.GetCustomerByUserID(ctx, userID); err == nil && existing != nil {
		return nil, lib.ErrCustomerExists
	}

	customer := &tables.Customer{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	created, err := database.Create(cs.db, ctx, customer)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Customer created",
		gecho.Field("customer_id", created.ID),
		gecho.Field("user_id", userID))
	return created, nil
}

// UpdateCustomer applies the whitelisted request fields onto an existing customer
func (cs *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req *structs.CustomerRequest) (*tables.Customer, error) {
	if _, err := cs.GetCustomerByID(ctx, id); err != nil {
		return nil, err
	}

	_, err := database.UpdateByID[tables.Customer](cs.db, ctx, id, map[string]any{
		"username":   req.Username,
		"email":      req.Email,
		"phone":      req.Phone,
		"address":    req.Address,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return cs.GetCustomerByID(ctx, id)
}

// DeleteCustomer removes a customer profile
func (cs *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	deleted, err := database.DeleteByID[tables.Customer](cs.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if deleted == 0 {
		return lib.ErrNotFound
	}
	return nil
}
