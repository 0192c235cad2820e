package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultPipesConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultPipesConfig())
	}
}

func TestLoadCustomPathKeepsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "game:\n  complexity: hard\nserver:\n  idle_timeout: 90s\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.Complexity != ComplexityHard {
		t.Errorf("complexity = %q, want hard", cfg.Game.Complexity)
	}
	if cfg.Complexity() != core.ComplexityHard {
		t.Errorf("engine complexity = %v, want hard", cfg.Complexity())
	}
	if cfg.Server.IdleTimeout != 90*time.Second {
		t.Errorf("idle timeout = %v, want 90s", cfg.Server.IdleTimeout)
	}
	if cfg.Display.TickRate != 30 {
		t.Errorf("tick rate = %d, want default 30", cfg.Display.TickRate)
	}
	if cfg.Storage.DBPath != "~/.pipes/pipes.db" {
		t.Errorf("db path = %q, want default", cfg.Storage.DBPath)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeConfig(t, bad, "game:\n  complexity: insane\n")
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "complexity") {
		t.Errorf("Load error = %v, want complexity error", err)
	}

	rate := filepath.Join(dir, "rate.yaml")
	writeConfig(t, rate, "display:\n  tick_rate: 0\n")
	if _, err := Load(rate); err == nil {
		t.Error("expected error for zero tick rate")
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, filepath.Join(home, ".pipes", "configs", FileName), "game:\n  player: ada\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.Player != "ada" {
		t.Errorf("player = %q, want ada", cfg.Game.Player)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	// An unreadable user file is skipped rather than fatal.
	writeConfig(t, filepath.Join(home, ".pipes", "configs", FileName), "display: [")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultPipesConfig() {
		t.Errorf("Load = %+v, want defaults", cfg)
	}
}

func TestApplyComplexityPreset(t *testing.T) {
	cfg := DefaultPipesConfig()

	if err := ApplyComplexityPreset(&cfg, ""); err != nil || cfg.Game.Complexity != ComplexityMedium {
		t.Errorf("empty preset changed config: %v, %q", err, cfg.Game.Complexity)
	}
	if err := ApplyComplexityPreset(&cfg, "easy"); err != nil {
		t.Fatalf("ApplyComplexityPreset(easy): %v", err)
	}
	if cfg.Complexity() != core.ComplexityEasy {
		t.Errorf("complexity = %v, want easy", cfg.Complexity())
	}
	if err := ApplyComplexityPreset(&cfg, "brutal"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if cfg.Game.Complexity != ComplexityEasy {
		t.Errorf("failed preset changed config to %q", cfg.Game.Complexity)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/x/y.db"); got != filepath.Join(home, "x", "y.db") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome changed absolute path: %q", got)
	}
}
