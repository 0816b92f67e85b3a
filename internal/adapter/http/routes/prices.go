package routes

import (
	"caca_precos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPrices    = "/prices"
	PathStores    = "/stores"
	PathDevices   = "/devices"
	PathAnalytics = "/analytics"
)

func addPriceRoutes(
	rg *gin.RouterGroup,
	priceHandler *handlers.PriceHandler,
	moderationHandler *handlers.ModerationHandler,
) {
	prices := rg.Group(PathPrices)
	{
		prices.POST("", priceHandler.SubmitPrice)
		prices.GET("/best/:productId", priceHandler.GetBestPrice)
		prices.GET("/moderation", moderationHandler.ListQueue)
		prices.PATCH("/:id/moderation", moderationHandler.ModeratePrice)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, storeHandler *handlers.StoreHandler, deviceHandler *handlers.DeviceHandler) {
	rg.GET(PathStores, storeHandler.ListStores)
	rg.GET(PathDevices, deviceHandler.ListDevices)
}

func addAnalyticsRoutes(rg *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler) {
	rg.GET(PathAnalytics+"/summary", analyticsHandler.GetSummary)
}
