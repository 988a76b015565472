package main

import (
	"fmt"
	"os"

	"lucky-money/pkg/config"
	"lucky-money/pkg/database"
	"lucky-money/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "admin",
		Short:        "Operator commands for the lucky money database",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(createAdminCmd())
	rootCmd.AddCommand(promoteCmd())
	rootCmd.AddCommand(recalcGoalsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect() (*gorm.DB, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.NewWithEnv(cfg.AppEnv).With("cmd", "admin")

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, log, nil
}
