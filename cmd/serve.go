package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kirbygold/goldsuite/internal/dashboard"
	"github.com/kirbygold/goldsuite/internal/feed"
	"github.com/kirbygold/goldsuite/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	Long:  `Starts the Gold Suite HTTP server: the server-rendered dashboard, its JSON API and the /ws/prices quote stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		source, closeSource, err := openSource(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeSource()

		secret := cfg.Auth.TokenSecret
		if secret == "" {
			secret = uuid.NewString()
			logger.Warn().Msg("auth.token_secret is empty; sessions will not survive a restart")
		}

		dash, err := dashboard.New(dashboard.Options{
			Source:       source,
			Feed:         feed.NewFixtureFeed(source, nil),
			Auth:         cfg.Authenticator(),
			TokenSecret:  []byte(secret),
			TokenTTL:     cfg.Auth.TokenTTL,
			FeedInterval: cfg.Feed.Interval,
			Logger:       logger,
		})
		if err != nil {
			return fmt.Errorf("creating dashboard: %w", err)
		}

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowAll:       cfg.Server.AllowAllOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
		}, logger)
		dash.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fixtureSource := "embedded"
		switch {
		case cfg.Fixtures.Database != "":
			fixtureSource = cfg.Fixtures.Database
		case cfg.Fixtures.File != "":
			fixtureSource = cfg.Fixtures.File
		}
		logger.Info().
			Str("version", Version).
			Int("port", cfg.Server.Port).
			Str("fixtures", fixtureSource).
			Msg("goldsuite starting")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
