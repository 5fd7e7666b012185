package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/atrium-ui/atrium/examples/landing"
	"github.com/atrium-ui/atrium/internal/config"
	"github.com/atrium-ui/atrium/pkg/metric"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		dev        bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo landing site",
		Long: `Start the HTTP server for the demo landing site.

Settings come from atrium.yaml (see --config), overridable with
ATRIUM_* environment variables. The --addr flag wins over both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				settings.Server.Addr = addr
			}

			logger := settings.NewLogger()
			slog.SetDefault(logger)

			app := landing.NewApp(landing.Options{
				Source: metric.NewMockSource(
					metric.WithDelay(300*time.Millisecond),
					metric.WithTTL(settings.Live.Interval),
				),
				StaticDir: settings.Server.StaticDir,
				DevMode:   dev,
				Logger:    logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(),
				syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Run(settings.Server.Addr)
			}()

			logger.Info("serving demo site", "addr", settings.Server.Addr, "dev", dev)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to atrium.yaml")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides config)")
	cmd.Flags().BoolVar(&dev, "dev", false, "Enable development mode")

	return cmd
}
