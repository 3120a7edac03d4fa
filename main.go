package main

import (
	"context"
	"fmt"
	"os"
	"time"

	arbitration "live-auction/internal/arbitrationService"
	"live-auction/internal/broadcast"
	"live-auction/internal/clock"
	model "live-auction/internal/models"
	"live-auction/internal/registry"
	"live-auction/internal/server"
	"live-auction/internal/sweeper"
)

func main() {

	clk := clock.Real{}
	hub := broadcast.NewHub()
	reg := registry.NewMemoryRegistry(hub, clk)

	seedAuctions(reg, clk)

	arbitrationSvc := arbitration.NewArbitrationService(reg, clk)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.New(reg, clk, getSweepInterval()).Run(ctx)

	router := server.SetupRouter(arbitrationSvc, reg, hub, clk)

	port := getPort()
	fmt.Printf("Starting live auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedAuctions adds the initial auction set to the registry
func seedAuctions(reg *registry.MemoryRegistry, clk clock.Clock) {
	now := clk.Now()
	auctions := []model.Auction{
		{ID: "1", Title: "MacBook Pro", StartingPrice: 10, EndsAt: now.Add(1000 * time.Minute)},
		{ID: "2", Title: "Internship Stipend", StartingPrice: 300, EndsAt: now.Add(10 * time.Minute)},
		{ID: "3", Title: "Sony Wireless Headphones", StartingPrice: 20, EndsAt: now.Add(1 * time.Minute)},
	}

	for _, a := range auctions {
		reg.Add(a)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// getSweepInterval returns the sweep period from env or defaults to 1s
func getSweepInterval() time.Duration {
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return time.Second
}
