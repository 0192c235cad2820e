package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "pipes.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.pipes/configs/pipes.yaml -> ./configs/pipes.yaml
// -> embedded default -> hardcoded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (PipesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return PipesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PipesConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPipesYAML)
	if err != nil {
		return DefaultPipesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (PipesConfig, error) {
	cfg := DefaultPipesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PipesConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PipesConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c PipesConfig) Validate() error {
	if _, err := c.Game.Complexity.Complexity(); err != nil {
		return err
	}
	if c.Display.TickRate < 1 || c.Display.TickRate > 120 {
		return fmt.Errorf("display.tick_rate %d out of range [1, 120]", c.Display.TickRate)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout must not be negative")
	}
	if c.Server.MaxSessions < 0 {
		return fmt.Errorf("server.max_sessions must not be negative")
	}
	return nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pipes", "configs", filename)
}
