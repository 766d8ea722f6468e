package commands

import (
	"errors"
	"io/fs"
	"os"

	"github.com/mx-space/blog/cmd/blogctl/output"
	"github.com/mx-space/blog/internal/app"
	"github.com/mx-space/blog/internal/config"
	"github.com/mx-space/blog/internal/pkg/nativelog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Operate the blog database",
	Long: `blogctl manages the blog schema and its records from the command line.

It reads the same YAML config as the rest of the blog and talks to MySQL,
PostgreSQL or SQLite depending on database.driver.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Also print logs to stdout")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// loadConfig reads --config. A missing default file falls back to built-in defaults.
func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	cfg, err := config.Load(configPath)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		output.Warning(cmd.ErrOrStderr(), "%s not found, using built-in defaults", configPath)
		def := config.Default()
		return &def, nil
	}
	return nil, err
}

func newLogger(cfg *config.AppConfig) *zap.Logger {
	logger, err := nativelog.NewZapLogger(nativelog.Options{
		Dir:   cfg.LogDir(),
		Debug: cfg.IsDev(),
		Quiet: !verbose,
	})
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openApp loads the config and connects. The returned func releases everything.
func openApp(cmd *cobra.Command, autoMigrate bool) (*app.App, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(cfg)

	a, err := app.New(logger, cfg, autoMigrate)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	return a, func() {
		if err := a.Close(); err != nil {
			logger.Warn("close failed", zap.Error(err))
		}
		_ = logger.Sync()
	}, nil
}
