package handlers

import (
	"errors"
	"net/http"

	request "cercovibrados/internal/adapter/http/dto/request"
	response "cercovibrados/internal/adapter/http/dto/response"
	"cercovibrados/internal/usecase"
	"cercovibrados/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles the public quote form and the admin quote listing.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Submit receives a fence quote request from the public site.
func (h *QuoteHandler) Submit(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SubmitQuoteResponse{
		Message: "Quote request received",
		Quote:   response.FromQuote(quote),
	})
}

// List returns every stored quote, newest first.
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingQuoteFields):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Missing required quote fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteEmail):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_EMAIL", "Invalid email address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteRUT):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_RUT", "Invalid RUT", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
