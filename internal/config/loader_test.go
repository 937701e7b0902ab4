package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
game:
  spawn4_probability: 0.25
player:
  default_name: "ada"
server:
  idle_timeout: 5m
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Game.Spawn4Probability != 0.25 {
		t.Errorf("Spawn4Probability = %v, want 0.25", cfg.Game.Spawn4Probability)
	}
	if cfg.Player.DefaultName != "ada" {
		t.Errorf("DefaultName = %q, want ada", cfg.Player.DefaultName)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.Server.IdleTimeout)
	}
	// Unset values keep their defaults
	if cfg.Game.WinTile != 2048 || cfg.Leaderboard.Size != 10 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("game: [not, a, map"), 0o600)
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("game:\n  win_tile: 1000\n"), 0o600)
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "win_tile") {
		t.Errorf("Load() error = %v, want win_tile validation error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative probability", func(c *Config) { c.Game.Spawn4Probability = -0.1 }},
		{"probability above one", func(c *Config) { c.Game.Spawn4Probability = 1.5 }},
		{"no initial tiles", func(c *Config) { c.Game.InitialTiles = 0 }},
		{"win tile not power of two", func(c *Config) { c.Game.WinTile = 100 }},
		{"win tile too small", func(c *Config) { c.Game.WinTile = 2 }},
		{"empty leaderboard", func(c *Config) { c.Leaderboard.Size = 0 }},
		{"zero tick rate", func(c *Config) { c.UI.TickRate = 0 }},
		{"empty key prefix", func(c *Config) { c.Storage.KeyPrefix = "" }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}
