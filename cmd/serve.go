package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"clementus360/habit-dashboard/config"
	"clementus360/habit-dashboard/habitica"
	"clementus360/habit-dashboard/handlers"
	"clementus360/habit-dashboard/routes"
	"clementus360/habit-dashboard/web"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	config.LoadEnv()
	cfg, err := config.Load(configPath)
	if err != nil {
		// Missing required settings are fatal; the server never starts half-configured.
		config.Logger.Fatal("Invalid configuration: ", err)
	}
	config.InitLogger(cfg.Server.LogLevel)

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	s := handlers.New(cfg, habitica.NewFromConfig(cfg), renderer)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewHandler(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		config.Logger.Infof("Server is running on port %d", cfg.Server.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	config.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
