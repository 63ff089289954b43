package main

import (
	"classical-cipher-backend/handlers"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the cipher HTTP API",
		Long: `Starts the HTTP API:
  GET  /api/v1/health                 - Health check
  GET  /api/v1/ciphers                - Supported algorithms
  POST /api/v1/cipher/transform       - Encrypt or decrypt text
  POST /api/v1/cipher/transform-file  - Encrypt or decrypt an uploaded text file
  POST /api/v1/cipher/hill-inverse    - Decryption key for a Hill key`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.serve(cmd.Context())
		},
	}
}

func (app *cli) serve(parent context.Context) error {
	if !app.verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    app.cfg.Addr(),
		Handler: handlers.NewRouter(app.cfg, app.logger),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.logger.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.Strings("allowed_origins", app.cfg.Server.AllowedOrigins))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info("Server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
