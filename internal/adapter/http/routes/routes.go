package routes

import (
	"log"
	"os"
	"strconv"

	_ "caca_precos/docs" // swagger registration
	"caca_precos/internal/adapter/http/handlers"
	repository2 "caca_precos/internal/adapter/persistence/repository"
	"caca_precos/internal/infrastructure/database"
	"caca_precos/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid PORT %q: %v", v, err)
		}
		port = parsed
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	priceRepo := repository2.NewPriceDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	storeRepo := repository2.NewStoreDynamoRepository(ddb)
	deviceRepo := repository2.NewDeviceDynamoRepository(ddb)

	ingestionUseCase := usecase.NewIngestionUseCase(priceRepo, productRepo, storeRepo, deviceRepo)
	aggregationUseCase := usecase.NewAggregationUseCase(priceRepo, storeRepo)
	moderationUseCase := usecase.NewModerationUseCase(priceRepo)
	storeCatalogUseCase := usecase.NewStoreCatalogUseCase(storeRepo)
	deviceRegistryUseCase := usecase.NewDeviceRegistryUseCase(deviceRepo, priceRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(priceRepo, productRepo, storeRepo)

	priceHandler := handlers.NewPriceHandler(ingestionUseCase, aggregationUseCase)
	moderationHandler := handlers.NewModerationHandler(moderationUseCase)
	storeHandler := handlers.NewStoreHandler(storeCatalogUseCase)
	deviceHandler := handlers.NewDeviceHandler(deviceRegistryUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPriceRoutes(v1, priceHandler, moderationHandler)
	addCatalogRoutes(v1, storeHandler, deviceHandler)
	addAnalyticsRoutes(v1, analyticsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
