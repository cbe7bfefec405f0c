package main

import (
	"fmt"
	"os"

	auction "vehicle-auctions/internal/auctionService"
	"vehicle-auctions/internal/backend"
	"vehicle-auctions/internal/config"
	"vehicle-auctions/internal/gate"
	"vehicle-auctions/internal/metrics"
	"vehicle-auctions/internal/repository"
	"vehicle-auctions/internal/server"
	"vehicle-auctions/utils"

	"github.com/joho/godotenv"
)

const userAgent = "vehicle-auctions-client/1.0"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		utils.Warn("could not load .env", map[string]any{"error": err.Error()})
	}

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	api := backend.NewClient(cfg.Backend.BaseURL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithHeader("User-Agent", userAgent),
	)
	repo := repository.NewMemoryRepo()
	prom := metrics.NewPrometheus()

	auctionSvc := auction.NewAuctionService(api, repo, gate.NewEvaluator(nil), prom)

	router := server.SetupRouter(auctionSvc, cfg.Backend.ImageBaseURL, prom)

	utils.Info("Starting auction client", map[string]any{
		"addr":    cfg.Addr(),
		"backend": cfg.Backend.BaseURL,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
