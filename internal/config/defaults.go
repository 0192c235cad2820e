package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pipes.yaml
var defaultPipesYAML []byte

// DefaultPipesConfig returns the hardcoded configuration.
// It matches defaults/pipes.yaml and is used when no file can be read.
func DefaultPipesConfig() PipesConfig {
	return PipesConfig{
		Game: GameConfig{
			Complexity: ComplexityMedium,
			LevelsDir:  "~/.pipes/levels",
			Player:     "local",
		},
		Display: DisplayConfig{
			TickRate: 30,
			Theme:    "default",
		},
		Storage: StorageConfig{
			DBPath: "~/.pipes/pipes.db",
		},
		Server: ServerConfig{
			Address:     "0.0.0.0:2323",
			HostKeyPath: ".ssh/pipes_ed25519",
			IdleTimeout: 10 * time.Minute,
			MaxSessions: 32,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPipesYAML
}
