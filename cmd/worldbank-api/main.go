// Service worldbank-api caches World Bank indicator time series in a local
// SQLite database and serves read, delete, point-lookup and ranked queries
// against the cached data.
//
//	@title			World Bank Economic Indicators API
//	@version		1.0
//	@description	REST API caching World Bank indicator time series.
//	@host			localhost:8080
//	@BasePath		/
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/collections"
	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/config"
	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/db"
	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/httpx"
	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/models"
	"github.com/z5116890/World-Bank-Economic-Indicators-REST-API/internal/worldbank"

	_ "github.com/z5116890/World-Bank-Economic-Indicators-REST-API/docs/swagger" // swagger spec
)

func main() {
	cfg := config.LoadAPI()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	connCtx, connCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connCancel()

	sqlDB, err := db.Connect(connCtx, cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.Migrate(sqlDB); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	provider := worldbank.NewClient(httpx.NewClient(cfg.UpstreamTimeout), cfg.WorldBankBaseURL)
	store := collections.NewStore(sqlDB)
	importer := collections.NewImporter(store, provider)
	handler := collections.NewHandler(store, importer)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Health probes.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Service: "worldbank-api"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Healthy(r.Context(), sqlDB); err != nil {
			writeJSON(w, http.StatusServiceUnavailable,
				models.HealthResponse{Status: "unavailable", Service: "worldbank-api"})
			return
		}
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ready", Service: "worldbank-api"})
	})

	// API routes.
	r.Post("/collections", handler.CreateCollection)
	r.Get("/collections", handler.ListCollections)
	r.Get("/collections/{id}", handler.GetCollection)
	r.Delete("/collections/{id}", handler.DeleteCollection)
	r.Get("/collections/{id}/{year}", handler.GetRankedEntries)
	r.Get("/collections/{id}/{year}/{country}", handler.GetEntry)

	// Swagger UI.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	serve(cfg.Base, r)
}

func serve(cfg config.Base, handler http.Handler) {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("worldbank-api listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig)
	case err := <-errCh:
		slog.Error("server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
