package main

import (
	"context"
	"database/sql"
	"fmt"
	root "ontrack"
	"ontrack/internal/config"
	"ontrack/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	ctx context.Context
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	logger.Info(l.ctx, fmt.Sprintf(format, v...))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	logger.Fatal(l.ctx, fmt.Sprintf(format, v...))
}

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			goose.SetBaseFS(root.Migrations)
			goose.SetLogger(gooseLogger{ctx: ctx})

			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}
			if err := goose.UpContext(ctx, strg.DB.(*sql.DB), "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			version, err := goose.GetDBVersionContext(ctx, strg.DB.(*sql.DB))
			if err != nil {
				logger.Fatal(ctx, "could not read schema version", zap.Error(err))
			}
			logger.Info(ctx, "database is up to date", zap.Int64("version", version))
		},
	}

	return cmd
}
