package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name [new-name]",
	Short: "Show or set the display name",
	Long: `Show the display name used for leaderboard entries, or set it.
Names are trimmed and cut to 20 characters.

Examples:
  tile2048 name
  tile2048 name Ada
  tile2048 name --user alice Alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runName,
}

func init() {
	nameCmd.Flags().StringVar(&flagUser, "user", "", "SSH user whose name to show or set")
}

func runName(cmd *cobra.Command, args []string) error {
	store, p, err := openProfile()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		if err := p.SetName(args[0]); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), p.Name())
	return nil
}
