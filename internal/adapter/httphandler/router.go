package httphandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/niksmo/emporium/internal/core/port"
)

type RouterConfig struct {
	Products       port.ProductsManager
	Orders         port.OrdersManager
	Reviews        port.ReviewsManager
	Catalog        port.CatalogReader
	Metrics        *Metrics
	RequestTimeout time.Duration
}

// NewRouter mounts the API under /api next to /health and /metrics.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(AllowJSON)
		RegisterProducts(r, cfg.Products)
		RegisterOrders(r, cfg.Orders)
		RegisterReviews(r, cfg.Reviews)
		RegisterCatalog(r, cfg.Catalog)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Kind: kindNotFound, Message: "route not found",
		})
	})
	return r
}
