package routes

import (
	"cercovibrados/internal/adapter/http/handlers"
	"cercovibrados/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathQuotes   = "/quotes"
	PathProducts = "/products"
	PathInvoices = "/invoices"
)

func addAPIRoutes(
	rg *gin.RouterGroup,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	quoteHandler *handlers.QuoteHandler,
	productHandler *handlers.ProductHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// The quote form is the only public route besides auth; everything else
	// is admin-only.
	rg.POST(PathQuotes, quoteHandler.Submit)

	admin := rg.Group("", middleware.AuthRequired(jwtSecret), middleware.RequireAdmin())
	{
		admin.GET(PathQuotes, quoteHandler.List)

		admin.GET(PathProducts, productHandler.List)
		admin.POST(PathProducts, productHandler.Create)
		admin.PUT(PathProducts+"/:id", productHandler.Update)
		admin.DELETE(PathProducts+"/:id", productHandler.Delete)

		admin.POST(PathInvoices, invoiceHandler.Create)
		admin.GET(PathInvoices, invoiceHandler.List)
		admin.GET(PathInvoices+"/stats/summary", invoiceHandler.Stats)
		admin.GET(PathInvoices+"/:id", invoiceHandler.GetByID)
		admin.PUT(PathInvoices+"/:id", invoiceHandler.Update)
		admin.DELETE(PathInvoices+"/:id", invoiceHandler.Delete)
		admin.POST(PathInvoices+"/:id/payment-link", invoiceHandler.CreatePaymentLink)
	}
}
