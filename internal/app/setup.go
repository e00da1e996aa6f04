// Package app contains the application setup for the storefront service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/avolkov/storefront/internal/config"
	"github.com/avolkov/storefront/internal/service"
	"github.com/avolkov/storefront/internal/store"
	"github.com/avolkov/storefront/internal/transport/rest"
	"github.com/avolkov/storefront/pkg/server"
	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	ProductService service.ProductService
	ReviewService  service.ReviewService
	Logger         *slog.Logger
}

func SetupDependencies(catalog *store.MemoryStore, logger *slog.Logger) *Dependencies {
	return &Dependencies{
		ProductService: service.NewService(catalog),
		ReviewService:  service.NewReviewService(catalog, catalog, logger),
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the storefront service.
// Also used by handler-level tests to build the full middleware chain.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the storefront service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	catalogHandler := rest.NewHandler(deps.ProductService, deps.ReviewService, deps.Logger)
	catalogHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the storefront service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
