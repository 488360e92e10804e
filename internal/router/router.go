package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/Hema-A-05/MERN-flasklite/internal/config"
	"github.com/Hema-A-05/MERN-flasklite/internal/handlers"
	"github.com/Hema-A-05/MERN-flasklite/internal/middleware"
	"github.com/Hema-A-05/MERN-flasklite/internal/service"
)

// Services bundles what the HTTP layer calls into.
type Services struct {
	Auth          *service.AuthService
	Agents        *service.AgentService
	Distributions *service.DistributionService

	// Ping checks the backing store for /healthz; nil for the memory store.
	Ping func(context.Context) error
}

func New(log zerolog.Logger, svc Services, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.Origin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.TokenHeader},
	}))
	if cfg.RateLimitRPM > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitRPM, time.Minute))
	}

	// Health
	r.Get("/healthz", handlers.Health(svc.Ping))

	ah := handlers.NewAuthHTTP(svc.Auth, log)
	gh := handlers.NewAgentHTTP(svc.Agents)
	dh := handlers.NewDistributionHTTP(svc.Distributions, cfg.MaxUploadBytes, log)

	r.Post("/login", ah.Login())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireToken(log, svc.Auth))

		r.Post("/agents", gh.Create())
		r.Get("/agents", gh.List())
		r.Post("/upload-csv", dh.Upload())
		r.Get("/distributed-lists", dh.List())
	})

	return r
}
