package products

import (
	"backoffice_server/handling"
	"backoffice_server/lib"
	"backoffice_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		prm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please check the product information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	product, err := prm.productService.CreateProduct(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.BadRequest(w, gecho.WithMessage("Category does not exist"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to create product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.WithMessage("Product created successfully"),
		gecho.Send(),
	)
}
