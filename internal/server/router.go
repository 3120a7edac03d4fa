package server

import (
	arbitration "live-auction/internal/arbitrationService"
	"live-auction/internal/broadcast"
	"live-auction/internal/clock"
	"live-auction/internal/registry"
	handler "live-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(arbitrationSvc *arbitration.ArbitrationService, store registry.AuctionStore, hub *broadcast.Hub, clk clock.Clock) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(store, clk)
	socketHandler := handler.NewSocketHandler(arbitrationSvc, hub)

	items := router.Group("/items")
	{
		items.GET("", auctionHandler.ListAuctionsHandler)
		items.GET("/:item_id", auctionHandler.GetAuctionHandler)
	}

	router.GET("/ws", socketHandler.ServeWS)

	return router
}
