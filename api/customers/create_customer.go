package customers

import (
	"backoffice_server/handling"
	"backoffice_server/lib"
	"backoffice_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

func (crm *CustomerRoutesManager) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CustomerRequest](r)
	if err != nil {
		crm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please check the customer information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	if body.User == uuid.Nil {
		gecho.BadRequest(w, gecho.WithMessage("A user identity is required"), gecho.Send())
		return
	}

	customer, err := crm.customerService.CreateCustomer(r.Context(), body.User, body)
	if err != nil {
		if errors.Is(err, lib.ErrCustomerExists) {
			gecho.Conflict(w, gecho.WithMessage("A customer profile already exists for this user"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to create customer", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(customer),
		gecho.WithMessage("Customer created successfully"),
		gecho.Send(),
	)
}
