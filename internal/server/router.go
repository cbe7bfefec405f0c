package server

import (
	"net/http"

	"vehicle-auctions/internal/metrics"
	handler "vehicle-auctions/services/auctions/handler"

	"github.com/gin-gonic/gin"
)

// MetricsProvider is a Recorder that can also expose what it recorded
type MetricsProvider interface {
	metrics.Recorder
	Handler() http.Handler
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.AuctionServiceInterface, imageBaseURL string, m MetricsProvider) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())             // recover from panics
	router.Use(RequestLoggerMiddleware(m)) // custom request logging
	router.Use(SessionMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	auctionHandler := handler.NewAuctionHandler(service, imageBaseURL)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/restart", auctionHandler.RestartAuctionHandler)
	}

	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("", auctionHandler.ListVehiclesHandler)
	}

	return router
}
