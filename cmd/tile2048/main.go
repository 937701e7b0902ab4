// tile2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	tile2048 play            - Play locally
//	tile2048 serve           - Start SSH server for remote play
//	tile2048 scores          - Show the leaderboard and game history
//	tile2048 name [new-name] - Show or set the display name
//	tile2048 manifest        - Print app metadata as JSON
//
// Global flags:
//
//	--config <path>   - Config file (default: search ~/.tile2048, ./configs)
//	--db <path>       - Database path (default from config)
//	--fps <rate>      - Tick rate (default from config)
//	--seed <value>    - RNG seed for reproducible games
//	--log-file <path> - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/profile"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tile2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `tile2048 is the 2048 puzzle for the terminal. Slide the tiles,
merge equal neighbors and reach 2048.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  name     - Show or set your display name
  manifest - Print app metadata

Examples:
  tile2048 play
  tile2048 play --name Ada --seed 42
  tile2048 serve --ssh :2222
  tile2048 scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(manifestCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagFPS > 0 {
		cfg.UI.TickRate = flagFPS
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file, or to fallback when the
// flag is unset. The returned func closes the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.NewWithOptions(fallback, log.Options{
			ReportTimestamp: true,
			Prefix:          prefix,
		}), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// gameOptions maps the config to board rules.
func gameOptions(cfg config.Config) t2048.Options {
	return t2048.Options{
		Spawn4Probability: cfg.Game.Spawn4Probability,
		InitialTiles:      cfg.Game.InitialTiles,
		WinTile:           cfg.Game.WinTile,
	}
}

// profileOptions maps the config to profile options for one namespace.
func profileOptions(cfg config.Config, namespace string, logger *log.Logger) profile.Options {
	return profile.Options{
		Prefix:          cfg.Storage.KeyPrefix,
		Namespace:       namespace,
		DefaultName:     cfg.Player.DefaultName,
		LeaderboardSize: cfg.Leaderboard.Size,
		Logger:          logger,
	}
}
