package categories

import (
	"backoffice_server/handling"
	"backoffice_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (crm *CategoryRoutesManager) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	detail, err := crm.categoryService.GetCategoryDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to fetch category", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(detail),
		gecho.Send(),
	)
}
