package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	pipescore "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

func testServerConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	return SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(t.TempDir(), "keys", "host_ed25519"),
		IdleTimeout: time.Minute,
		MaxSessions: 2,
		TickRate:    30,
		Complexity:  pipescore.ComplexityMedium,
		Theme:       DefaultTheme(),
	}
}

func TestNewSSHServerRequiresLevels(t *testing.T) {
	_, err := NewSSHServer(testServerConfig(t), nil, nil, log.New(io.Discard))
	if !errors.Is(err, pipes.ErrNoLevels) {
		t.Errorf("NewSSHServer() error = %v, want ErrNoLevels", err)
	}
}

func TestSSHServerLifecycle(t *testing.T) {
	cfg := testServerConfig(t)
	srv, err := NewSSHServer(cfg, testCatalog(t), nil, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}

	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, want %q", srv.Addr(), cfg.Address)
	}
	if n := srv.ActiveSessions(); n != 0 {
		t.Errorf("ActiveSessions() = %d before any connection", n)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
