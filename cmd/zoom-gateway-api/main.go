// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package main is the Zoom gateway service that relays read-only
// meeting queries to the Zoom API using server-to-server OAuth.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/handlers"
	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/infrastructure/zoom/api"
	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/logging"
	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/metrics"
	"github.com/linuxfoundation/lfx-v2-zoom-gateway-service/internal/service"
)

const shutdownTimeout = 25 * time.Second

func main() {
	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructureLogConfig()

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	// Metrics registry and collector
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewPrometheusCollector(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	// Zoom API client: one fixed credential set drives every call
	zoomClient := api.NewClient(api.Config{
		AccountID:    env.Zoom.AccountID,
		ClientID:     env.Zoom.ClientID,
		ClientSecret: env.Zoom.ClientSecret,
		BaseURL:      env.Zoom.BaseURL,
		AuthURL:      env.Zoom.AuthURL,
		Metrics:      collector,
	})

	gatewayService := service.NewGatewayService(zoomClient, collector)
	router := handlers.NewRouter(gatewayService, metricsHandler)

	httpServer := setupHTTPServer(flags, router, &gracefulCloseWG)

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	gracefulShutdown(httpServer, &gracefulCloseWG)
}

// gracefulShutdown drains in-flight requests before the process exits.
func gracefulShutdown(httpServer *http.Server, gracefulCloseWG *sync.WaitGroup) {
	slog.Info("shutting down gateway")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.With(logging.ErrKey, err).Error("http server shutdown error")
	}
	gracefulCloseWG.Done()
	gracefulCloseWG.Wait()

	slog.Info("gateway stopped")
}
