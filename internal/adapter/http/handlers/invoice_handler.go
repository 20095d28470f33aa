package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "cercovibrados/internal/adapter/http/dto/request"
	response "cercovibrados/internal/adapter/http/dto/response"
	"cercovibrados/internal/adapter/http/middleware"
	"cercovibrados/internal/usecase"
	"cercovibrados/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles the admin invoice back office.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// Create issues a new invoice with the next sequential number for the year.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), c.GetString(middleware.ContextUserID))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreateInvoiceResponse{
		Message: "Invoice created",
		Invoice: response.FromInvoice(invoice),
	})
}

// List returns a page of invoices filtered by status and free-text search.
func (h *InvoiceHandler) List(c *gin.Context) {
	query := usecase.ListInvoicesQuery{
		Page:   intQuery(c, "page"),
		Limit:  intQuery(c, "limit"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	listing, err := h.usecase.List(c.Request.Context(), query)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceListing(listing))
}

func (h *InvoiceHandler) GetByID(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// Update applies a partial update; absent fields keep their stored value.
func (h *InvoiceHandler) Update(c *gin.Context) {
	var payload request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UpdateInvoiceResponse{
		Message: "Invoice updated",
		Invoice: response.FromInvoice(invoice),
	})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Invoice deleted"})
}

// Stats returns per-status counts plus total and current-month revenue.
func (h *InvoiceHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceStats(stats))
}

// CreatePaymentLink asks the payment provider for a checkout link covering
// the invoice total.
func (h *InvoiceHandler) CreatePaymentLink(c *gin.Context) {
	link, err := h.usecase.CreatePaymentLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentLink(link))
}

func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingInvoiceFields):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Missing required invoice fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceEmail):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_EMAIL", "Invalid email address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_STATUS", "Invalid invoice status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice status does not allow payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateInvoiceNumber):
		return pkg.NewDomainErrorSimple("DUPLICATE_INVOICE_NUMBER", "Invoice number already exists", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
