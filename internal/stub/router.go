/**
 * @description
 * This file sets up the HTTP router for the API stub using the go-chi/chi
 * router. CORS is open because the original web client fetches the API
 * cross-origin during local development.
 */
package stub

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new Chi router and registers the Remote Account API routes.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("LiMobile API stub is healthy"))
	})

	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
	r.Get("/user/{id}/accounts", h.handleListAccounts)
	r.Get("/user/{id}/transactions", h.handleListTransactions)
	r.Post("/user/{id}/add-account", h.handleAddAccount)
	r.Post("/transfer", h.handleTransfer)
	r.Post("/forfait", h.handlePurchase)

	return r
}
