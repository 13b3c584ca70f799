package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tummy-arcade/internal/analytics"
	"github.com/vovakirdan/tummy-arcade/internal/config"
	"github.com/vovakirdan/tummy-arcade/internal/content"
	"github.com/vovakirdan/tummy-arcade/internal/storage"
)

var (
	flagAPIAddr      string
	flagServerConfig string
	flagNoSeed       bool
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the content and auth HTTP service",
	Long: `Serve recipes, games, the hero banner, and register/login over HTTP.

Configuration is read from --server-config, ~/.tummy/configs/server.yaml,
./configs/server.yaml, or built-in defaults. TUMMY_SECRET_KEY overrides the
token signing key.

Examples:
  tummy api
  tummy api --addr :8080
  TUMMY_SECRET_KEY=change-me tummy api --server-config ./server.yaml`,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", "", "Listen address (overrides config)")
	apiCmd.Flags().StringVar(&flagServerConfig, "server-config", "", "Path to server config YAML")
	apiCmd.Flags().BoolVar(&flagNoSeed, "no-seed", false, "Do not seed empty content tables")
}

func runAPI(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tummy-api",
	})

	cfg, err := config.LoadServer(flagServerConfig)
	if err != nil {
		return err
	}
	if flagAPIAddr != "" {
		cfg.Address = flagAPIAddr
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if cfg.SecretKey == config.DefaultServerConfig().SecretKey {
		logger.Warn("using the built-in token secret; set " + config.SecretKeyEnv + " in production")
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedContent && !flagNoSeed {
		if err := store.SeedContent(ctx); err != nil {
			return err
		}
	}

	sink := analytics.NewStoreSink(store, 256, logger)
	defer sink.Close()
	tracker := analytics.NewTracker(analytics.Multi(
		analytics.NewLogSink(logger.WithPrefix("analytics")),
		sink,
	))

	srv := content.NewServer(store, cfg, logger, tracker)
	return srv.ListenAndServe(ctx)
}
