package main

import (
	"context"
	"ontrack/internal/config"
	"ontrack/internal/reference"
	"ontrack/pkg/logger"
	"ontrack/pkg/storage"
	"ontrack/pkg/storage/sheet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCommand imports a workbook export into postgres. The dataset is
// validated first and written in a single transaction, so a bad export never
// replaces good data.
func seedCommand(cfg *config.Config) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Imports a reference sheet export into the database",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			wb, err := sheet.Open(path)
			if err != nil {
				logger.Fatal(ctx, "could not open reference sheet export", zap.String("path", path), zap.Error(err))
			}

			questions, _ := wb.Questions(ctx)
			profiles, _ := wb.Profiles(ctx)
			industries, _ := wb.Industries(ctx)
			if _, err := reference.New(ctx, questions, profiles, industries); err != nil {
				logger.Fatal(ctx, "reference sheet export is invalid", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			err = strg.WithTx(ctx, func(tx storage.AllStorage) error {
				if err := tx.ReplaceQuestions(ctx, questions); err != nil {
					return err
				}
				if err := tx.ReplaceProfiles(ctx, profiles); err != nil {
					return err
				}

				return tx.ReplaceIndustries(ctx, industries)
			})
			if err != nil {
				logger.Fatal(ctx, "could not seed reference data", zap.Error(err))
			}

			logger.Info(ctx, "reference data seeded",
				zap.Int("questions", len(questions)),
				zap.Int("profiles", len(profiles)),
				zap.Int("industries", len(industries)))
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", cfg.Reference.Path, "Reference sheet export to import")

	return cmd
}
