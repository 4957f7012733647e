package categories

import (
	"backoffice_server/handling"
	"backoffice_server/lib"
	"backoffice_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (crm *CategoryRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		crm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please check the category information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	category, err := crm.categoryService.CreateCategory(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.BadRequest(w, gecho.WithMessage("Parent category does not exist"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to create category", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(category),
		gecho.WithMessage("Category created successfully"),
		gecho.Send(),
	)
}
