package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lpg-backoffice/internal/config"
	"lpg-backoffice/internal/database"
	"lpg-backoffice/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// Global flags
	logLevel    string
	databaseURL string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lpgctl",
	Short: "Operator tooling for the LPG back office",
	Long: `lpgctl runs maintenance tasks against the back office database:
seeding the super admin and role defaults, exporting and restoring tenant
backups, and purging spent one-time codes.

Configuration is read the same way as the server (.env, config.yaml, environment).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			logrus.Debug("No .env file found, using system environment variables")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "overrides DATABASE_URL")
}

// env is what every subcommand needs
type env struct {
	cfg *config.Config
	db  *gorm.DB
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	return &env{cfg: cfg, db: db}, nil
}

func (e *env) Close() {
	_ = database.Close(e.db)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
