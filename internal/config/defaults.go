package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			BoardSize:  4,
			SpawnFour:  0.10,
			StartTiles: 2,
		},
		Storage: StorageConfig{
			DBPath: "~/.tui2048/scores.db",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for tooling
// that wants to show or regenerate it.
func DefaultYAML() []byte {
	return defaultYAML
}
