package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/clinicsync/internal/config"
	"github.com/iudanet/clinicsync/internal/logging"
	"github.com/iudanet/clinicsync/internal/server"
	"github.com/iudanet/clinicsync/internal/server/handlers"
	"github.com/iudanet/clinicsync/internal/server/middleware"
	"github.com/iudanet/clinicsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// shutdownTimeout время на завершение активных запросов
const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:           "clinicsync-server",
		Short:         "Reference server for clinicsync clients",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServer(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := root.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default is $HOME/"+config.FileName+")")
	flags.String("addr", "", "listen address")
	flags.String("db", "", "path to SQLite database")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	for key, name := range map[string]string{
		"addr":      "addr",
		"db":        "db",
		"log.level": "log-level",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ClinicSync Server\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
				Version, BuildDate, GitCommit)
			return err
		},
	})

	return root
}

func run(ctx context.Context, cfg *config.Server) error {
	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logCloser.Close()

	db, err := sqlite.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
	defer limiter.Stop()

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: server.Router{
			Logger:  logger,
			Store:   db,
			Limiter: limiter,
			Version: Version,
			JWT: handlers.JWTConfig{
				Secret:         []byte(cfg.JWT.Secret),
				AccessTokenTTL: cfg.JWT.AccessTTL,
			},
		}.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server listening", "addr", cfg.Addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
