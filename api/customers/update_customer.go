package customers

import (
	"backoffice_server/handling"
	"backoffice_server/lib"
	"backoffice_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (crm *CustomerRoutesManager) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid customer id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CustomerRequest](r)
	if err != nil {
		crm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please check the customer information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	customer, err := crm.customerService.UpdateCustomer(r.Context(), id, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Customer not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to update customer", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(customer),
		gecho.WithMessage("Customer updated successfully"),
		gecho.Send(),
	)
}
