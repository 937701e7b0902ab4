package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tile2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Spawn4Probability: 0.1,
			InitialTiles:      2,
			WinTile:           2048,
		},
		Leaderboard: LeaderboardConfig{
			Size: 10,
		},
		Player: PlayerConfig{
			DefaultName: "Player",
		},
		Storage: StorageConfig{
			DBPath:    "~/.tile2048/data.db",
			KeyPrefix: "2048",
		},
		UI: UIConfig{
			TickRate: 60,
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
