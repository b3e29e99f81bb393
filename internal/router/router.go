package router

import (
	"net/http"
	"time"

	"github.com/Rangggase/Holy-Grail/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Cashier routes
	r.Get("/menu", h.GetMenu)
	r.Get("/customers", h.SearchCustomers)
	r.Post("/recommendations", h.GetRecommendations)
	r.Post("/checkout", h.Checkout)

	// Admin routes
	r.Post("/admin/login", h.AdminLogin)
	r.Route("/admin/dashboard", func(r chi.Router) {
		r.Use(h.Auth().Middleware)
		r.Get("/summary", h.DashboardSummary)
		r.Get("/segments", h.DashboardSegments)
		r.Get("/hourly", h.DashboardHourly)
		r.Get("/top-menu", h.DashboardTopMenu)
		r.Get("/transactions", h.DashboardTransactions)
	})

	r.Get("/health", healthCheck)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
