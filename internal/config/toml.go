// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Sound    SoundConfig    `toml:"sound"`
	Display  DisplayConfig  `toml:"display"`
	Bridge   BridgeConfig   `toml:"bridge"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Lang    *string `toml:"lang"`
	Shuffle *bool   `toml:"shuffle"`
}

// SoundConfig maps cue playback settings.
type SoundConfig struct {
	Mute     *bool   `toml:"mute"`
	Bell     *bool   `toml:"bell"`
	Player   *string `toml:"player"`
	AssetDir *string `toml:"asset-dir"`
}

// DisplayConfig maps terminal geometry used to convert cells to pixels.
type DisplayConfig struct {
	CellWidth  *float64 `toml:"cell-width"`
	CellHeight *float64 `toml:"cell-height"`
}

// BridgeConfig maps the host bridge listener.
type BridgeConfig struct {
	Addr           *string  `toml:"addr"`
	AllowedOrigins []string `toml:"allowed-origins"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
