package customers

import (
	"backoffice_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (crm *CustomerRoutesManager) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := handling.ParsePagination(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid pagination parameters"), gecho.Send())
		return
	}

	result, err := crm.customerService.GetAllCustomers(r.Context(), page, pageSize)
	if err != nil {
		handling.HandleError(err, "Failed to fetch customers", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}
