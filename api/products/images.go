package products

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

// AddImage attaches a single image to an existing product.
func (prm *ProductRoutesManager) AddImage(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductImageRequest](r)
	if err != nil {
		prm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w, gecho.WithMessage("Please check the image information and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	image, err := prm.productService.AddImage(r.Context(), productID, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to add product image", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(image),
		gecho.WithMessage("Image added successfully"),
		gecho.Send(),
	)
}

// DeleteImage removes an image. The image must belong to the product in
// the URL; a mismatched pair reads as not found.
func (prm *ProductRoutesManager) DeleteImage(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	imageID, err := uuid.Parse(chi.URLParam(r, "image_id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid image id"), gecho.Send())
		return
	}

	if err := prm.productService.DeleteImage(r.Context(), productID, imageID); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Image not found"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to delete product image", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Image deleted successfully"),
		gecho.Send(),
	)
}
