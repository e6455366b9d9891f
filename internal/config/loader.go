package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.tui2048/config.yaml -> ./configs/game.yaml
// -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/game.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui2048", filename)
}

// normalize fills in unusable values so callers never see a zero board or a
// negative probability.
func normalize(cfg Config) Config {
	def := Default()
	if cfg.Game.BoardSize < 2 {
		cfg.Game.BoardSize = def.Game.BoardSize
	}
	if cfg.Game.SpawnFour < 0 || cfg.Game.SpawnFour > 1 {
		cfg.Game.SpawnFour = def.Game.SpawnFour
	}
	if cfg.Game.StartTiles < 1 || cfg.Game.StartTiles > cfg.Game.BoardSize*cfg.Game.BoardSize {
		cfg.Game.StartTiles = def.Game.StartTiles
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = def.Storage.DBPath
	}
	if cfg.SSH.Address == "" {
		cfg.SSH.Address = def.SSH.Address
	}
	if cfg.SSH.IdleTimeoutMinutes <= 0 {
		cfg.SSH.IdleTimeoutMinutes = def.SSH.IdleTimeoutMinutes
	}
	return cfg
}
