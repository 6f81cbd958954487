package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/clinicsync/internal/client/api"
	"github.com/iudanet/clinicsync/internal/client/auth"
	"github.com/iudanet/clinicsync/internal/client/cli"
	"github.com/iudanet/clinicsync/internal/client/data"
	"github.com/iudanet/clinicsync/internal/client/iocli"
	"github.com/iudanet/clinicsync/internal/client/netstate"
	"github.com/iudanet/clinicsync/internal/client/storage/boltdb"
	"github.com/iudanet/clinicsync/internal/client/sync"
	"github.com/iudanet/clinicsync/internal/config"
	"github.com/iudanet/clinicsync/internal/conflict"
	"github.com/iudanet/clinicsync/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// app держит ресурсы, открытые для одной команды
type app struct {
	cli     *cli.Cli
	closers []io.Closer
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close resource: %v\n", err)
		}
	}
	a.closers = nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{}
	err := newRootCommand(a).ExecuteContext(ctx)
	a.close()
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(a *app) *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:           "clinicsync",
		Short:         "Offline-first client for practice records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient(v, configFile)
			if err != nil {
				return err
			}
			return a.init(cmd.Context(), cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is $HOME/"+config.FileName+")")
	flags.String("server", "", "server URL")
	flags.String("db", "", "path to local database")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("policy", "", "conflict policy: most-recent-wins, server-wins, client-wins")

	for key, name := range map[string]string{
		"server":      "server",
		"db":          "db",
		"log.level":   "log-level",
		"sync.policy": "policy",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(cli.Commands(func() *cli.Cli { return a.cli })...)
	root.AddCommand(versionCommand())

	return root
}

func (a *app) init(ctx context.Context, cfg *config.Client) error {
	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	a.closers = append(a.closers, logCloser)

	store, err := boltdb.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.closers = append(a.closers, store)

	resolver, err := conflict.ByName(cfg.Sync.Policy)
	if err != nil {
		return err
	}

	apiClient := api.NewClient(cfg.Server, api.WithTimeout(cfg.HTTP.Timeout))
	authService := auth.NewService(apiClient, store, logger)

	gate := netstate.NewGate(netstate.NewProbeMonitor(apiClient, cfg.Sync.Metered, 0, logger), logger)
	adapters := sync.NewAdapters(apiClient, sync.Deps{
		Store:    store,
		Resolver: resolver,
		Logger:   logger,
	})
	coordinator := sync.NewCoordinator(gate, store, store, adapters, logger)

	a.cli = cli.New(
		iocli.NewStdio(),
		authService,
		data.NewService(store),
		coordinator,
		cfg.Sync.Interval,
		logger,
	)

	logger.Debug("Client initialized", "server", cfg.Server, "db", cfg.DB, "policy", cfg.Sync.Policy)
	return nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// конфигурация и база для вывода версии не нужны
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, err := fmt.Fprintf(out, "ClinicSync Client\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
				Version, BuildDate, GitCommit)
			return err
		},
	}
}
