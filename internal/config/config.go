// Package config provides YAML-based configuration loading for tile2048.
package config

import (
	"fmt"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Game        GameConfig        `yaml:"game"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Player      PlayerConfig      `yaml:"player"`
	Storage     StorageConfig     `yaml:"storage"`
	UI          UIConfig          `yaml:"ui"`
	Server      ServerConfig      `yaml:"server"`
}

// GameConfig defines board rules.
type GameConfig struct {
	Spawn4Probability float64 `yaml:"spawn4_probability"`
	InitialTiles      int     `yaml:"initial_tiles"`
	WinTile           int     `yaml:"win_tile"`
}

// LeaderboardConfig defines leaderboard limits.
type LeaderboardConfig struct {
	Size int `yaml:"size"`
}

// PlayerConfig defines player defaults.
type PlayerConfig struct {
	DefaultName string `yaml:"default_name"`
}

// StorageConfig defines where player data lives.
type StorageConfig struct {
	DBPath    string `yaml:"db_path"`
	KeyPrefix string `yaml:"key_prefix"`
}

// UIConfig defines terminal UI parameters.
type UIConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that values are usable.
func (c Config) Validate() error {
	if c.Game.Spawn4Probability < 0 || c.Game.Spawn4Probability > 1 {
		return fmt.Errorf("config: game.spawn4_probability must be within [0, 1], got %v", c.Game.Spawn4Probability)
	}
	if c.Game.InitialTiles < 1 || c.Game.InitialTiles > 16 {
		return fmt.Errorf("config: game.initial_tiles must be within [1, 16], got %d", c.Game.InitialTiles)
	}
	if !isPowerOfTwo(c.Game.WinTile) || c.Game.WinTile < 4 {
		return fmt.Errorf("config: game.win_tile must be a power of two >= 4, got %d", c.Game.WinTile)
	}
	if c.Leaderboard.Size < 1 {
		return fmt.Errorf("config: leaderboard.size must be positive, got %d", c.Leaderboard.Size)
	}
	if c.UI.TickRate < 1 {
		return fmt.Errorf("config: ui.tick_rate must be positive, got %d", c.UI.TickRate)
	}
	if c.Storage.KeyPrefix == "" {
		return fmt.Errorf("config: storage.key_prefix must not be empty")
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
