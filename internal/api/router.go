// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"shopku-api/internal/api/handler"
	"shopku-api/internal/auth"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Public routes
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/products", productHandler.List)
	r.Get("/products/{productID}", productHandler.Get)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(handler.Authenticator(tokens, logger))

		r.Get("/me", authHandler.Me)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.List)
			r.Post("/", cartHandler.Add)
			r.Put("/", cartHandler.Update)
			r.Delete("/", cartHandler.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.Create)
			r.Get("/", orderHandler.List)
			r.Get("/{orderID}", orderHandler.Get)
			r.Post("/{orderID}/pay", orderHandler.Pay)
		})
	})

	return r
}
