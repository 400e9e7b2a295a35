//go:build !windows

package main

import (
	"bytes"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/termgrid/internal/cli"
	"github.com/andyrewlee/termgrid/internal/logging"
	"github.com/andyrewlee/termgrid/internal/safego"
)

// Version info set via ldflags
var version = "dev"

func main() {
	cli.Version = version
	startSignalDebug()
	startPprof()

	args := resolveArgs(os.Args[1:], term.IsTerminal(os.Stdin.Fd()))
	os.Exit(cli.Run(args))
}

// resolveArgs makes a bare `termgrid` with piped input behave like
// `termgrid dump`.
func resolveArgs(args []string, stdinIsTTY bool) []string {
	if len(args) == 0 && !stdinIsTTY {
		return []string{"dump"}
	}
	return args
}

func startPprof() {
	raw := strings.TrimSpace(os.Getenv("TERMGRID_PPROF"))
	if raw == "" {
		return
	}
	switch strings.ToLower(raw) {
	case "0", "false", "no":
		return
	}

	addr := raw
	if raw == "1" || strings.ToLower(raw) == "true" {
		addr = "127.0.0.1:6060"
	} else if _, err := strconv.Atoi(raw); err == nil {
		addr = "127.0.0.1:" + raw
	}

	safego.Go("pprof", func() {
		logging.Info("pprof listening on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			logging.Warn("pprof server stopped: %v", err)
		}
	})
}

// startSignalDebug registers a SIGUSR1 handler for goroutine dumps in dev
// builds or when TERMGRID_DEBUG_SIGNALS is set.
func startSignalDebug() {
	if version != "dev" && strings.TrimSpace(os.Getenv("TERMGRID_DEBUG_SIGNALS")) == "" {
		return
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGUSR1)
	safego.Go("signal-debug", func() {
		for range ch {
			var buf bytes.Buffer
			if err := pprof.Lookup("goroutine").WriteTo(&buf, 2); err != nil {
				logging.Warn("Failed to write goroutine dump: %v", err)
				continue
			}
			logging.Warn("GOROUTINE DUMP\n%s", buf.String())
		}
	})
}
