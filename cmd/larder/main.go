// cmd/larder/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/amelnyk/larder/internal/adapters/file"
	"github.com/amelnyk/larder/internal/core/services"
	"github.com/amelnyk/larder/internal/pkg/config"
	"github.com/amelnyk/larder/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "larder",
	Short: "larder — a file-backed inventory ledger",
	Long: "larder tracks products and their sale history in a JSON file.\n" +
		"Run it interactively, seed a sample ledger, or export reports to Excel.",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)

	rootCmd.PersistentFlags().String("file", "", "inventory file path (overrides INVENTORY_FILE)")
}

// setup wires the dependency chain shared by every subcommand.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, *services.Ledger, error) {
	slogger := logger.SetupLogger("info", "text")

	cfg, err := config.Load(slogger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting larder",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("environment", cfg.App.Environment))

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		cfg.Ledger.FilePath = path
	}

	store := file.NewStore(cfg.Ledger.FilePath, slogger)
	ledger := services.NewLedger(store, slogger)

	return cfg, slogger, ledger, nil
}
