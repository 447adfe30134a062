package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/iho/payengine/internal/adapter/csvio"
	httpadapter "github.com/iho/payengine/internal/adapter/http"
	"github.com/iho/payengine/internal/adapter/http/handler"
	"github.com/iho/payengine/internal/infrastructure/config"
	"github.com/iho/payengine/internal/infrastructure/logger"
	"github.com/iho/payengine/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "payengine <transactions.csv>",
		Short: "Transaction stream payments engine",
		Long: `payengine replays a stream of deposit, withdrawal, dispute, resolve and
chargeback events against per-client accounts and prints the final
available/held/total balances and lock state as CSV on stdout.
Per-row diagnostics go to stderr; a row failure never stops the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage only helps for argument mistakes, which are
			// already validated at this point.
			cmd.SilenceUsage = true
			return runProcess(cmd, args[0])
		},
	}

	root.AddCommand(newServeCmd())

	return root
}

func runProcess(cmd *cobra.Command, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
		With().Str("run_id", ulid.Make().String()).Logger()

	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("cannot open transactions file")
		return err
	}
	defer f.Close()

	uc := usecase.NewLedgerUseCase(log)
	stats := uc.Run(cmd.Context(), csvio.NewReader(f))

	log.Info().
		Int("rows", stats.Rows).
		Int("applied", stats.Applied).
		Int("rejected", stats.Rejected).
		Int("parse_failures", stats.ParseFailures).
		Msg("run complete")

	return uc.WriteReport(csvio.NewWriter(cmd.OutOrStdout(), cfg.ReportPrecision))
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	uc := usecase.NewLedgerUseCase(log)

	router := httpadapter.NewRouter(httpadapter.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(uc),
		AccountHandler:     handler.NewAccountHandler(uc),
		HealthHandler:      handler.NewHealthHandler(),
		Logger:             log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("server failed")
		return err
	case <-quit:
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}
