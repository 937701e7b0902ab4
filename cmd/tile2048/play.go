package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/platform/tui"
	"github.com/vovakirdan/tile2048/internal/profile"
	"github.com/vovakirdan/tile2048/internal/storage"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a local session with the main menu.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - New game
  P                - Pause
  Enter/C          - Keep going after reaching 2048
  Esc/B            - Back to menu (when paused or game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  tile2048 play
  tile2048 play --name Ada
  tile2048 play --seed 42 --log-file /tmp/tile2048.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Set display name before playing")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "tile2048")
	if err != nil {
		return err
	}
	defer closeLog()

	var kv storage.KV
	var history tui.HistoryStore
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue in memory - the game still works
		kv = storage.NewMemory()
	} else {
		defer store.Close()
		kv = store
		history = store
	}

	p := profile.New(kv, profileOptions(cfg, "", logger))
	p.Load()
	if flagName != "" {
		if err := p.SetName(flagName); err != nil {
			return err
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.UI.TickRate,
		Seed:     flagSeed,
	}

	logger.Info("starting session", "player", p.Name(), "best", p.BestScore())

	return tui.Run(rc, tui.SessionOptions{
		Game:          gameOptions(cfg),
		Profile:       p,
		History:       history,
		Logger:        logger,
		ScreenshotDir: config.UserPath("screenshots"),
	})
}
