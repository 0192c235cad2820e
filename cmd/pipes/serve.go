package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pipes SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the level menu. Rounds are
recorded under the SSH user name in the server's results database, so all
players share one results board.

Host key handling:
  - Uses --host-key, or server.host_key_path from the configuration
  - The key is generated on first start when the file is missing

Examples:
  pipes serve                        # Listen on the configured address
  pipes serve --ssh :2222            # Listen on port 2222
  pipes serve --host-key ./host_key  # Use specific host key
  pipes serve --max-sessions 8       # Limit concurrent players

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (e.g. 10m)")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", -1, "Maximum concurrent sessions (0 = unlimited)")
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	srvCfg := a.cfg.Server
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = flagIdleTimeout
	}
	if flagMaxSessions >= 0 {
		srvCfg.MaxSessions = flagMaxSessions
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     srvCfg.Address,
		HostKeyPath: config.ExpandHome(srvCfg.HostKeyPath),
		IdleTimeout: srvCfg.IdleTimeout,
		MaxSessions: srvCfg.MaxSessions,
		TickRate:    a.cfg.Display.TickRate,
		Complexity:  a.complexity,
		Theme:       a.theme,
	}, a.catalog, store, a.logger.WithPrefix("pipes-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Starting Pipes SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
