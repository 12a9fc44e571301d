package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/outfit-recommender/internal/api/http"
	"github.com/i474232898/outfit-recommender/internal/logging"
	"github.com/i474232898/outfit-recommender/internal/scheduler"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the watch-city scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	// Scheduler that periodically refreshes recommendations for watched cities.
	sched := scheduler.New(cfg.WatchLocations(), cfg.RefreshInterval, a.service)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	app := httpapi.NewApp(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.HTTPTimeout + 10*time.Second,
	})
	httpapi.RegisterRoutes(app, a.service, a.store, cfg.HistoryLimit)

	go func() {
		logging.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("starting HTTP server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logging.Error().Err(err).Msg("fiber server stopped")
		}
	}()

	// Wait for termination signal
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("error during shutdown")
	}
	logging.Info().Msg("server stopped")
	return nil
}
