// Package main provides the CLI entrypoint for the OnTrack survey service.
// It wires subcommands (serve, migrate, seed, take), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"ontrack/internal/config"
	"ontrack/internal/reference"
	"ontrack/pkg/logger"
	"ontrack/pkg/storage"
	"ontrack/pkg/storage/postgres"
	"ontrack/pkg/storage/sheet"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// loadReference builds the reference store from the configured source. It
// exits the process when the data cannot be loaded or fails validation.
func loadReference(ctx context.Context, cfg *config.Config) *reference.Store {
	var src storage.ReferenceSource
	switch cfg.Reference.Source {
	case config.ReferenceSourcePostgres:
		pgsql, closeStrg := getPostgres(ctx, cfg)
		defer closeStrg()
		src = pgsql
	default:
		wb, err := sheet.Open(cfg.Reference.Path)
		if err != nil {
			logger.Fatal(ctx, "could not open reference sheet export",
				zap.String("path", cfg.Reference.Path), zap.Error(err))
		}
		src = wb
	}

	store, err := reference.Load(ctx, src)
	if err != nil {
		logger.Fatal(ctx, "could not load reference data",
			zap.String("source", cfg.Reference.Source), zap.Error(err))
	}

	questions, profiles, industries := store.Stats()
	logger.Info(ctx, "reference data loaded",
		zap.String("source", cfg.Reference.Source),
		zap.Int("questions", questions),
		zap.Int("profiles", profiles),
		zap.Int("industries", industries))

	return store
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "ontrack",
		Short: "RIASEC career interest survey service",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet("ontrack", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	configPath := flags.String("c", "config.yml", "The config file path")
	// subcommand flags are unknown here; only -c matters before cobra runs
	_ = flags.Parse(leadingConfigFlag(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		seedCommand(cfg),
		takeCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// leadingConfigFlag extracts the -c/--config flag and its value from args so
// the standard flag package does not trip over subcommand flags.
func leadingConfigFlag(args []string) []string {
	for i, arg := range args {
		switch arg {
		case "-c", "--c", "-config", "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		}
		for _, prefix := range []string{"-c=", "--c=", "-config=", "--config="} {
			if v, ok := strings.CutPrefix(arg, prefix); ok && v != "" {
				return []string{"-c", v}
			}
		}
	}

	return nil
}
