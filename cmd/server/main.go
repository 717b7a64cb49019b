package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	grpcserver "github.com/Beenod004/Networkfault/internal/api/grpc"
	"github.com/Beenod004/Networkfault/internal/api/middleware"
	"github.com/Beenod004/Networkfault/internal/api/rest"
	"github.com/Beenod004/Networkfault/internal/api/websocket"
	"github.com/Beenod004/Networkfault/internal/config"
	"github.com/Beenod004/Networkfault/internal/pkg/logger"
	"github.com/Beenod004/Networkfault/internal/pkg/topologycache"
	"github.com/Beenod004/Networkfault/internal/pkg/tracing"
	"github.com/Beenod004/Networkfault/internal/seed"
	"github.com/Beenod004/Networkfault/internal/service"
)

const serviceName = "networkfault"

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.StdLogger(cfg.LogLevel, cfg.LogJSON)
	slog.SetDefault(log)
	log.Info("configuration loaded", "port", cfg.Port, "grpc_port", cfg.GRPCPort, "seed_enabled", cfg.SeedEnabled)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(serviceName, cfg.TracingEndpoint, cfg.TracingSamplingRate)
	if err != nil {
		log.Warn("tracing disabled", "error", err)
	} else {
		defer shutdownTracing()
	}

	hub := websocket.NewHub(ctx, log)
	go hub.Run()
	defer hub.Stop()

	dashboard := service.NewDashboardService(service.Options{
		Logger:       log,
		Notifier:     hub,
		Cache:        topologycache.New(cfg.ExportCacheSize, time.Duration(cfg.ExportCacheTTLSec)*time.Second),
		MonotonicIDs: cfg.MonotonicIDs,
	})
	if cfg.SeedEnabled {
		ds, err := seed.Load(cfg.SeedPath)
		if err != nil {
			return fmt.Errorf("load seed dataset: %w", err)
		}
		dashboard.Seed(ctx, ds)
	}

	router := mux.NewRouter()
	handler := rest.NewHandler(dashboard)
	router.HandleFunc("/health", handler.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/ws", websocket.NewHandler(ctx, hub, cfg.AllowedOrigins).ServeWS).Methods("GET")
	rest.SetupRoutes(router.PathPrefix("/api/v1").Subrouter(), handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing)
	router.Use(middleware.StructuredLog)
	router.Use(middleware.Recovery(log))
	router.Use(middleware.NewRateLimiter(cfg.RateLimitPerMin).Middleware)
	router.Use(middleware.MaxBodySize(cfg.MaxBodyBytes))

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.ResponseRequestIDHeader},
		ExposedHeaders:   []string{middleware.ResponseRequestIDHeader, middleware.TraceIDHeader},
		AllowCredentials: true,
	})

	timeout := time.Duration(cfg.RequestTimeoutSec) * time.Second
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	var grpcSrv *grpcserver.Server
	if cfg.GRPCPort > 0 {
		grpcSrv = grpcserver.NewServer(cfg.GRPCPort, log)
		g.Go(grpcSrv.Serve)
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
		defer cancel()
		if grpcSrv != nil {
			grpcSrv.Stop(shutdownCtx)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server exited gracefully")
	return nil
}
