// Package server assembles the HTTP router and runs the listener.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/viniciusbarbosa/agendabarber-api/internal/config"
	"github.com/viniciusbarbosa/agendabarber-api/internal/handler"
)

// NewRouter builds the chi router with the shared middleware stack and all
// API routes.
func NewRouter(cfg *config.Config, logger *zerolog.Logger, h *handler.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/cadastrar", h.Register)
		r.Post("/agendar", h.Book)
		r.Get("/agendamentos", h.ListBookings)
		r.Post("/forgot-password", h.ForgotPassword)
		r.Post("/reset-password/{token}", h.ResetPassword)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Rota não encontrada."}`))
	})

	return r
}

// New creates the HTTP server bound to the configured address.
func New(cfg *config.Config, logger *zerolog.Logger, h *handler.Handler) *http.Server {
	return &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: NewRouter(cfg, logger, h),
	}
}
