package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	request "cercovibrados/internal/adapter/http/dto/request"
	response "cercovibrados/internal/adapter/http/dto/response"
	"cercovibrados/internal/usecase"
	"cercovibrados/internal/usecase/interfaces"
	"cercovibrados/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	errUnsupportedImage      = pkg.NewDomainErrorSimple("UNSUPPORTED_IMAGE_TYPE", "Only PNG, JPEG and WebP images are accepted", http.StatusBadRequest)
)

// Declared content types accepted for the multipart image part. The storage
// layer re-checks the actual bytes, so a lying client gets caught there.
var allowedImageContentTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
}

// ProductHandler handles the admin product catalog.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// List returns the full catalog sorted by name.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// Create adds a product from a multipart form with an optional image part.
func (h *ProductHandler) Create(c *gin.Context) {
	var form request.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	image, appErr := readImagePart(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	product, err := h.usecase.Create(c.Request.Context(), form.ToEntity(), image)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(product))
}

// Update replaces a product's fields; a new image part also replaces the
// stored image file.
func (h *ProductHandler) Update(c *gin.Context) {
	var form request.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	image, appErr := readImagePart(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	product, err := h.usecase.Update(c.Request.Context(), c.Param("id"), form.ToEntity(), image)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Product deleted"})
}

// readImagePart extracts the optional "image" part. A missing part is fine;
// a present part with a disallowed declared type is a 400.
func readImagePart(c *gin.Context) (*usecase.ImageUpload, *pkg.AppError) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errInvalidProductPayload
	}
	if !allowedImageContentTypes[fileHeader.Header.Get("Content-Type")] {
		return nil, errUnsupportedImage
	}

	data, appErr := readAll(fileHeader)
	if appErr != nil {
		return nil, appErr
	}
	return &usecase.ImageUpload{Filename: fileHeader.Filename, Data: data}, nil
}

func readAll(fileHeader *multipart.FileHeader) ([]byte, *pkg.AppError) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, pkg.NewDomainError("INTERNAL_ERROR", "Could not read uploaded file", err, http.StatusInternalServerError)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, pkg.NewDomainError("INTERNAL_ERROR", "Could not read uploaded file", err, http.StatusInternalServerError)
	}
	return data, nil
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductInput):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrUnsupportedImageType):
		return errUnsupportedImage
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
