package shop

import (
	"backoffice_server/api/middleware"
	"backoffice_server/handling"
	"backoffice_server/lib"
	"backoffice_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// GetOwnCustomer returns the caller's customer profile.
func (srm *ShopRoutesManager) GetOwnCustomer(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	customer, err := srm.customerService.GetCustomerByUserID(r.Context(), claims.Sub)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("No customer profile yet"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to fetch customer profile", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(customer),
		gecho.Send(),
	)
}

// CreateOwnCustomer creates the caller's customer profile. Each user
// identity gets at most one.
func (srm *ShopRoutesManager) CreateOwnCustomer(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CustomerRequest](r)
	if err != nil {
		srm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please check the customer information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	customer, err := srm.customerService.CreateCustomer(r.Context(), claims.Sub, body)
	if err != nil {
		if errors.Is(err, lib.ErrCustomerExists) {
			gecho.Conflict(w, gecho.WithMessage("You already have a customer profile"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to create customer profile", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(customer),
		gecho.WithMessage("Customer profile created successfully"),
		gecho.Send(),
	)
}

// UpdateOwnCustomer updates the caller's customer profile.
func (srm *ShopRoutesManager) UpdateOwnCustomer(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CustomerRequest](r)
	if err != nil {
		srm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please check the customer information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	existing, err := srm.customerService.GetCustomerByUserID(r.Context(), claims.Sub)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("No customer profile yet"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to fetch customer profile", srm.logger, w)
		return
	}

	customer, err := srm.customerService.UpdateCustomer(r.Context(), existing.ID, body)
	if err != nil {
		handling.HandleError(err, "Failed to update customer profile", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(customer),
		gecho.WithMessage("Customer profile updated successfully"),
		gecho.Send(),
	)
}
