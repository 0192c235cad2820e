package config

import (
	"fmt"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

// ComplexityPreset represents a named step-budget multiplier.
type ComplexityPreset string

const (
	ComplexityEasy   ComplexityPreset = "easy"
	ComplexityMedium ComplexityPreset = "medium"
	ComplexityHard   ComplexityPreset = "hard"
)

// Complexity returns the engine value for the preset.
func (p ComplexityPreset) Complexity() (core.Complexity, error) {
	c, err := core.ParseComplexity(string(p))
	if err != nil {
		return 0, fmt.Errorf("complexity preset: %w", err)
	}
	return c, nil
}

// Complexity returns the configured engine complexity,
// falling back to medium for an unknown preset.
func (c PipesConfig) Complexity() core.Complexity {
	v, err := c.Game.Complexity.Complexity()
	if err != nil {
		return core.ComplexityMedium
	}
	return v
}

// ApplyComplexityPreset overrides the configured preset.
// An empty preset leaves the config unchanged.
func ApplyComplexityPreset(cfg *PipesConfig, preset string) error {
	if preset == "" {
		return nil
	}
	p := ComplexityPreset(preset)
	if _, err := p.Complexity(); err != nil {
		return err
	}
	cfg.Game.Complexity = p
	return nil
}
