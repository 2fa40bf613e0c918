package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/cli"
	"github.com/aretw0/boardchain/internal/metrics"
	"github.com/aretw0/boardchain/internal/service"
	httpAdapter "github.com/aretw0/boardchain/pkg/adapters/http"
	"github.com/aretw0/boardchain/pkg/adapters/memory"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves regularity checks, steady states and transition rows as JSON over HTTP.
Query parameters override the configured board per request. Prometheus metrics
are exposed at /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(settings(cmd))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.HTTPPort, _ = cmd.Flags().GetInt("port")
		}
		logger := cli.NewLogger(cfg)

		cache, err := memory.NewCache(memory.DefaultMaxEdges)
		if err != nil {
			return err
		}
		defer cache.Close()

		prom := metrics.NewPrometheus()
		svc := service.New(cfg,
			boardchain.WithLogger(logger),
			boardchain.WithMetrics(prom),
			boardchain.WithCache(cache),
		)
		handler := httpAdapter.NewHandler(svc,
			httpAdapter.WithMetrics(prom.Handler()),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, gctx := errgroup.WithContext(ctx)
		cli.Announce(cmd.ErrOrStderr(), "HTTP API", srv.Addr)
		g.Go(func() error {
			logger.Info("starting boardchain server", "address", srv.Addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("graceful shutdown did not complete: %w", err)
			}
			logger.Info("boardchain server stopped gracefully")
			return nil
		})
		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
