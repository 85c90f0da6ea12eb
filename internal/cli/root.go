package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/guikarist/gym-tictactoe/internal/config"
)

var (
	configPath string

	conf   *config.Config
	logger *slog.Logger
)

// RootCommand loads the config and the logger before any subcommand runs.
func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gym-tictactoe",
		Short:        "Tic-tac-toe environment for reinforcement learning agents",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			conf = config.MustLoad(configPath)
			logger = initLogger(conf.LogLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config, environment only when empty")

	cmd.AddCommand(
		PlayCommand(),
		ServeCommand(),
	)

	return cmd
}

// initialize logger.
func initLogger(logLevel string) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
