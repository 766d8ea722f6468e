package commands

import (
	"github.com/mx-space/blog/cmd/blogctl/output"
	"github.com/mx-space/blog/internal/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	Long: `Create every table, unique index and foreign key the blog needs.
Running it again on an up-to-date database is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg)
		defer logger.Sync()

		if err := database.EnsureSchema(cfg); err != nil {
			logger.Error("migration failed", zap.Error(err))
			return err
		}
		logger.Info("schema migrated", zap.String("driver", cfg.Database.Driver))
		output.Success(cmd.OutOrStdout(), "Schema is up to date (%s)", cfg.Database.Driver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
