// Package config provides YAML-based configuration loading for tui-pipes.
package config

import "time"

// PipesConfig contains all configuration for the game and its front ends.
type PipesConfig struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig defines puzzle parameters.
type GameConfig struct {
	Complexity ComplexityPreset `yaml:"complexity"`
	LevelsDir  string           `yaml:"levels_dir"` // Extra level files, merged over the built-in ones
	Player     string           `yaml:"player"`     // Name recorded with local results
}

// DisplayConfig defines terminal loop parameters.
type DisplayConfig struct {
	TickRate int    `yaml:"tick_rate"` // Frames per second
	Theme    string `yaml:"theme"`     // "default" or "mono"
}

// StorageConfig defines where results are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH front end.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxSessions int           `yaml:"max_sessions"`
}
