// internal/handlers/routes.go
package handlers

import (
	"net/http"
	"time"

	"github.com/ammerola/kasir-rental/internal/handlers/middleware"
	"github.com/ammerola/kasir-rental/internal/pkg/config"
	"github.com/ammerola/kasir-rental/internal/pkg/logger"
)

// Handlers groups everything mounted under /api/v1
type Handlers struct {
	Health   *HealthHandler
	Catalog  *CatalogHandler
	Shift    *ShiftHandler
	Checkout *CheckoutHandler
	Rentals  *RentalHandler
	Reports  *ReportHandler
}

// NewRouter registers every route and wraps the mux in the middleware chain
func NewRouter(h Handlers, cfg *config.Config, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Readiness)
	mux.HandleFunc("GET /api/v1/health", h.Health.Health)
	mux.HandleFunc("GET /api/v1/ready", h.Health.Readiness)

	mux.HandleFunc("GET /api/v1/stores", h.Catalog.ListStores)
	mux.HandleFunc("GET /api/v1/staff", h.Catalog.ListStaff)
	mux.HandleFunc("GET /api/v1/customers", h.Catalog.LookupCustomers)
	mux.HandleFunc("GET /api/v1/films", h.Catalog.LookupFilms)
	mux.HandleFunc("GET /api/v1/films/{id}/availability", h.Catalog.FilmAvailability)

	mux.HandleFunc("GET /api/v1/shift", h.Shift.GetShift)
	mux.HandleFunc("POST /api/v1/shift", h.Shift.StartShift)
	mux.HandleFunc("DELETE /api/v1/shift", h.Shift.EndShift)

	mux.HandleFunc("POST /api/v1/checkout", h.Checkout.Checkout)
	mux.HandleFunc("GET /api/v1/checkouts/recent", h.Checkout.RecentCheckouts)

	mux.HandleFunc("GET /api/v1/rentals/open", h.Rentals.ListOpenRentals)
	mux.HandleFunc("POST /api/v1/rentals/return", h.Rentals.ReturnRentals)
	mux.HandleFunc("GET /api/v1/invoices/{id}", h.Rentals.GetInvoice)
	mux.HandleFunc("POST /api/v1/payments", h.Rentals.PayInvoice)

	if h.Reports != nil {
		mux.HandleFunc("POST /api/v1/reports/open-rentals", h.Reports.EnqueueOpenRentals)
		mux.HandleFunc("GET /api/v1/reports/{taskId}", h.Reports.GetReport)
	}

	chain := []func(http.Handler) http.Handler{
		middleware.Logger(log.Logger),
		middleware.Recovery(log.Logger),
		middleware.RateLimit(cfg.Security.RateLimitRequests, rateWindow(cfg.Security.RateLimitDuration)),
		middleware.CORS(cfg.Security.AllowedOrigins),
	}
	if cfg.Security.SecureHeaders {
		chain = append(chain, middleware.SecureHeaders)
	}
	chain = append(chain, middleware.Compression)

	return middleware.Chain(mux, chain...)
}

func rateWindow(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Minute
	}
	return d
}
