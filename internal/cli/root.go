// Package cli defines the cobra command tree for homebase.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vbonduro/homebase/internal/config"
	"github.com/vbonduro/homebase/internal/db"
)

var flagEnvFile string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "homebase",
		Short:         "Family blog and visit planner API",
		Long:          "homebase serves a small family blog with image uploads and a planner for family visits and their meal requests.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "dotenv file to load before reading the environment (default: ./.env if present)")

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
	)

	return root
}

// loadConfig reads the env file named by --env-file, then the environment.
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(flagEnvFile); err != nil {
		return nil, err
	}
	return config.Load()
}

// closeDB closes the database, logging any error.
func closeDB(database *db.DB, logger *slog.Logger) {
	if err := database.Close(); err != nil {
		if logger != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
