package categories

import (
	"backoffice_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (crm *CategoryRoutesManager) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := crm.categoryService.GetAllCategories(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to fetch categories", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(categories),
		gecho.Send(),
	)
}
