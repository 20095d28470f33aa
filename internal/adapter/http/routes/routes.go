package routes

import (
	"log"
	"strconv"

	_ "cercovibrados/docs" // This will be auto-generated
	"cercovibrados/internal/adapter/http/handlers"
	repository2 "cercovibrados/internal/adapter/persistence/repository"
	"cercovibrados/internal/infrastructure/config"
	"cercovibrados/internal/infrastructure/database"
	"cercovibrados/internal/infrastructure/payments"
	"cercovibrados/internal/infrastructure/storage"
	"cercovibrados/internal/usecase"
	"cercovibrados/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	counterRepo := repository2.NewInvoiceCounterDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	imageStore, err := storage.NewLocalImageStore(cfg.UploadsDir)
	if err != nil {
		log.Fatalf("Failed to prepare uploads directory: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, cfg.JWTSecret)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, imageStore)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, counterRepo, paymentGateway)

	authHandler := handlers.NewAuthHandler(authUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	// Uploaded product images are served straight from disk.
	router.Static("/uploads", cfg.UploadsDir)

	api := router.Group("/api")
	addPingRoutes(api)
	addAPIRoutes(api, cfg.JWTSecret, authHandler, quoteHandler, productHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
