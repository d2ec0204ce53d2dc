package main

// @title Route Optimizer API
// @version 1.0.0
// @description Geocoding and ranked driving-route alternatives on top of Nominatim and OSRM.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/route-optimizer/docs"
	"github.com/route-optimizer/internal/config"
	httpDelivery "github.com/route-optimizer/internal/delivery/http"
	"github.com/route-optimizer/internal/delivery/http/handler"
	"github.com/route-optimizer/internal/infrastructure"
	"github.com/route-optimizer/internal/pkg/logger"
	"github.com/route-optimizer/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Optimizer",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("routing_provider", cfg.Routing.Provider),
		zap.Duration("upstream_timeout", cfg.Upstream.Timeout),
	)

	// 3. Collaborators
	geocoder := infrastructure.NewGeocoder(cfg, log)
	router := infrastructure.NewRouter(cfg, log)

	// 4. Use cases
	geocodeUC := usecase.NewGeocodeUseCase(geocoder, log)
	routeUC := usecase.NewRouteUseCase(router, log)
	planUC := usecase.NewPlanUseCase(geocodeUC, routeUC, log)

	// 5. HTTP
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewGeocodeHandler(geocodeUC, log),
		handler.NewRouteHandler(routeUC, planUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
