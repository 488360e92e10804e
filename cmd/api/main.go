package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hema-A-05/MERN-flasklite/internal/config"
	"github.com/Hema-A-05/MERN-flasklite/internal/database"
	"github.com/Hema-A-05/MERN-flasklite/internal/router"
	"github.com/Hema-A-05/MERN-flasklite/internal/service"
	"github.com/Hema-A-05/MERN-flasklite/internal/utils"
	"github.com/Hema-A-05/MERN-flasklite/pkg/logger"
)

func main() {
	// config + logger
	cfg, err := config.Load()
	l := logger.New(cfg.Env)
	if err != nil {
		l.Fatal().Err(err).Msg("config")
	}

	// store
	repos, err := database.OpenRepos(context.Background(), cfg)
	if err != nil {
		l.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("store open failed")
	}
	defer repos.Close()

	// services
	auth := service.NewAuthService(repos.Users, utils.NewJWTIssuer(cfg.SessionSecret, cfg.TokenTTL))
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		_, created, err := auth.EnsureUser(context.Background(), cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			l.Fatal().Err(err).Msg("bootstrap admin")
		}
		l.Info().Str("email", cfg.AdminEmail).Bool("created", created).Msg("bootstrap admin")
	}
	svc := router.Services{
		Auth:          auth,
		Agents:        service.NewAgentService(repos.Agents),
		Distributions: service.NewDistributionService(repos.Agents, repos.Distributions, l),
		Ping:          repos.Ping,
	}

	// http
	r := router.New(l, svc, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Str("store", cfg.StoreDriver).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
