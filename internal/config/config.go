// Package config provides YAML-based configuration for the puzzle shell:
// board geometry, spawn odds, score database location, and SSH serving.
package config

// Config is the full configuration tree.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GameConfig defines the board and spawn parameters. The winning tile value
// is fixed by the rules and is not configurable.
type GameConfig struct {
	BoardSize  int     `yaml:"board_size"`
	SpawnFour  float64 `yaml:"spawn_four"`  // Probability a spawned tile is a 4 (0.0-1.0)
	StartTiles int     `yaml:"start_tiles"` // Tiles placed before the first move
}

// StorageConfig defines score persistence parameters.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the SSH server parameters.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"` // Auto-generated if empty
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
