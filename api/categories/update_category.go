package categories

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

func (crm *CategoryRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		crm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please check the category information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	category, err := crm.categoryService.UpdateCategory(r.Context(), id, body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
		case errors.Is(err, lib.ErrCategoryCycle):
			gecho.BadRequest(w, gecho.WithMessage("Category cannot be its own ancestor"), gecho.Send())
		default:
			handling.HandleError(err, "Failed to update category", crm.logger, w)
		}
		return
	}

	gecho.Success(w,
		gecho.WithData(category),
		gecho.WithMessage("Category updated successfully"),
		gecho.Send(),
	)
}
