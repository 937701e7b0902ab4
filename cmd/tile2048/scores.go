package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/profile"
	"github.com/vovakirdan/tile2048/internal/storage"
)

var (
	flagUser         string
	flagClearHistory bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the shared top-10 leaderboard, the best score and the
finished-game statistics of a player.

Examples:
  tile2048 scores
  tile2048 scores --user alice          # best score of SSH user alice
  tile2048 scores --clear-history`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagUser, "user", "", "SSH user whose best score and history to show")
	scoresCmd.Flags().BoolVar(&flagClearHistory, "clear-history", false, "Delete the player's game history")
}

// openProfile opens the store and loads the profile for --user.
func openProfile() (*storage.Store, *profile.Profile, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, err
	}

	p := profile.New(store, profileOptions(cfg, flagUser, log.New(io.Discard)))
	p.Load()
	return store, p, nil
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, p, err := openProfile()
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	player := p.HistoryPlayer()

	if flagClearHistory {
		if err := store.ClearScores(player); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared game history of %s\n", player)
		return nil
	}

	entries := p.Leaderboard()

	fmt.Fprintln(out, "Leaderboard - Top 10")
	fmt.Fprintln(out)

	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tile2048 play' to set the first high score!")
	} else {
		fmt.Fprintf(out, "  %-4s  %-20s  %-10s  %s\n", "Rank", "Name", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-20s  %-10s  %s\n", "----", "----", "-----", "----")
		for i, e := range entries {
			dateStr := e.Timestamp.Local().Format("2006-01-02 15:04")
			fmt.Fprintf(out, "  %-4d  %-20s  %-10d  %s\n", i+1, e.Name, e.Score, dateStr)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best (%s): %d\n", p.Name(), p.BestScore())

	stats, err := store.GetPlayerStats(player)
	if err != nil {
		return err
	}
	if stats.GamesCount > 0 {
		fmt.Fprintf(out, "Games: %d  High: %d  Avg: %.0f  Last: %s\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore,
			stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
