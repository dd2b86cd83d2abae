package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udisondev/tussle/internal/config"
)

const DefaultConfigPath = "config/arena.yaml"

var (
	configPath string
	cfg        config.Arena
)

var rootCmd = &cobra.Command{
	Use:           "arena",
	Short:         "Turn-based combat arena",
	Long:          `Runs battles between the parties of a roster file and records their narration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = DefaultConfigPath
			if p := os.Getenv("TUSSLE_CONFIG"); p != "" {
				path = p
			}
		}

		loaded, err := config.LoadArena(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: parseLogLevel(cfg.LogLevel),
		})))
		slog.Debug("config loaded", "path", path, "roster", cfg.Roster)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $TUSSLE_CONFIG or "+DefaultConfigPath+")")
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
