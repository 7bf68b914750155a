package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogapi/internal/api"
	"blogapi/internal/api/middleware"
	"blogapi/internal/seed"
	"blogapi/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Failed to build factory: %v\n", err)
		os.Exit(1)
	}

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()

	log.Info("Starting application", map[string]interface{}{"env": cfg.AppEnv})

	userService := appFactory.GetUserService()
	postService := appFactory.GetPostService()

	if cfg.AppEnv == "development" && cfg.Seed.Dir != "" {
		seeder := seed.NewSeeder(userService, postService, log)
		if err := seeder.Run(cfg.Seed.Dir); err != nil {
			log.Fatal("Failed to load seed data", map[string]interface{}{"error": err.Error()})
		}
	}

	validator := appFactory.GetValidator()

	userHandler := api.NewUserHandler(userService, validator, log)
	postHandler := api.NewPostHandler(postService, validator, log)
	healthHandler := api.NewHealthHandler(userService, postService, log)

	mux := http.NewServeMux()

	userHandler.RegisterRoutes(mux)
	postHandler.RegisterRoutes(mux)
	healthHandler.RegisterRoutes(mux)

	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.RequestIDMiddleware(log)(middleware.MetricsMiddleware(mux))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		log.Info("Starting HTTP server", map[string]interface{}{"port": cfg.Server.Port})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start HTTP server", map[string]interface{}{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...", map[string]interface{}{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Failed to shut down server", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Server stopped", map[string]interface{}{})
}
