package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RichardoC/senior-care/internal/api"
	"github.com/RichardoC/senior-care/internal/config"
	"github.com/RichardoC/senior-care/internal/db"
	"github.com/RichardoC/senior-care/internal/llm"
	"github.com/RichardoC/senior-care/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	database, err := db.New(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to initialize database",
			zap.Error(err),
			zap.String("dbPath", cfg.Database.Path))
		return err
	}
	defer database.Close()

	token, source, err := config.ResolveAPIKey(cfg.Secrets.Path)
	if err != nil {
		return err
	}
	if source == config.SourceNone {
		logger.Warn("OPENROUTER_API_KEY is not set; consultations will be refused",
			zap.String("secretsPath", cfg.Secrets.Path))
	} else {
		logger.Info("loaded API credential", zap.String("source", string(source)))
	}

	llmService, err := llm.New(cfg.LLM, token, database, logger)
	if err != nil {
		logger.Error("failed to initialize LLM service", zap.Error(err))
		return err
	}

	handler := api.NewHandler(llmService, database, session.NewManager(), logger)

	mux := http.NewServeMux()
	handler.Register(mux)
	if cfg.Server.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.Server.StaticDir)))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
