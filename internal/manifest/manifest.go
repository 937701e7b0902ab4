// Package manifest exposes static descriptive metadata about the game.
package manifest

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var manifestYAML []byte

// Manifest holds display metadata for hosting and discovery.
type Manifest struct {
	Name        string   `yaml:"name" json:"name"`
	ShortName   string   `yaml:"short_name" json:"short_name"`
	Description string   `yaml:"description" json:"description"`
	Version     string   `yaml:"version" json:"version"`
	Icon        string   `yaml:"icon" json:"icon"`
	Category    string   `yaml:"category" json:"category"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
}

// Load parses the embedded manifest.
func Load() (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(manifestYAML, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: cannot parse: %w", err)
	}
	if m.Name == "" {
		return Manifest{}, fmt.Errorf("manifest: name is required")
	}
	return m, nil
}

// JSON renders the manifest as indented JSON.
func (m Manifest) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
