// @title           Elite Home API
// @version         1.0
// @description     Apartment listing records with account registration and login.
// @host            localhost:8080
// @BasePath        /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DoaaAltair/Elite-Home/internal/app"
	"github.com/DoaaAltair/Elite-Home/internal/config"
	"github.com/DoaaAltair/Elite-Home/internal/logger"

	"github.com/joho/godotenv"

	_ "github.com/DoaaAltair/Elite-Home/docs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Logger config may itself be broken, write straight to stderr.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.App, cfg.Log)
	log.Info().Msg("config loaded, connecting to DB and Redis")

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("app init")
	}
	log.Info().Msg("app ready, starting HTTP server")

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := application.Close(); err != nil {
		log.Error().Err(err).Msg("app close")
	}
}
