// Package pty runs commands under a pseudo-terminal and pumps their output
// into a writer, typically a feed.Session.
package pty

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"

	"github.com/andyrewlee/termgrid/internal/logging"
	"github.com/andyrewlee/termgrid/internal/safego"
)

// killGrace is how long Close waits after SIGTERM before SIGKILL.
const killGrace = 200 * time.Millisecond

// Terminal wraps a PTY with an associated command
type Terminal struct {
	mu      sync.Mutex
	ptyFile *os.File
	cmd     *exec.Cmd
	closed  bool

	waitOnce sync.Once
	waitErr  error
}

// New creates a new terminal with the given command and no explicit size.
func New(command string, dir string, env []string) (*Terminal, error) {
	return NewWithSize(command, dir, env, 0, 0)
}

// NewWithSize creates a terminal whose PTY starts at rows x cols. Zero
// dimensions leave the size to the PTY default.
func NewWithSize(command string, dir string, env []string, rows, cols uint16) (*Terminal, error) {
	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Env = append(cmd.Env, "TERM=dumb")

	var (
		ptmx *os.File
		err  error
	)
	if rows > 0 && cols > 0 {
		ptmx, err = pty.StartWithSize(cmd, &pty.Winsize{Rows: rows, Cols: cols})
	} else {
		ptmx, err = pty.Start(cmd)
	}
	if err != nil {
		return nil, fmt.Errorf("start %q: %w", command, err)
	}
	logging.Debug("pty started pid=%d size=%dx%d cmd=%q", cmd.Process.Pid, cols, rows, command)

	return &Terminal{
		ptyFile: ptmx,
		cmd:     cmd,
	}, nil
}

// SetSize sets the terminal size
func (t *Terminal) SetSize(rows, cols uint16) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.ptyFile == nil {
		return nil
	}

	return pty.Setsize(t.ptyFile, &pty.Winsize{
		Rows: rows,
		Cols: cols,
	})
}

// Write sends input to the terminal
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	closed := t.closed
	ptyFile := t.ptyFile
	t.mu.Unlock()

	if closed || ptyFile == nil {
		return 0, io.ErrClosedPipe
	}

	return ptyFile.Write(p)
}

// Read reads output from the terminal.
// The mutex is not held during the blocking read.
func (t *Terminal) Read(p []byte) (int, error) {
	t.mu.Lock()
	closed := t.closed
	ptyFile := t.ptyFile
	t.mu.Unlock()

	if closed || ptyFile == nil {
		return 0, io.EOF
	}

	n, err := ptyFile.Read(p)
	// Linux reports EIO on the master once the child side is gone.
	if errors.Is(err, syscall.EIO) {
		err = io.EOF
	}
	return n, err
}

// SendInterrupt sends Ctrl+C to the terminal
func (t *Terminal) SendInterrupt() error {
	_, err := t.Write([]byte{0x03})
	return err
}

// Pump copies terminal output into w until the command's output ends or ctx
// is done. Cancellation closes the terminal. The returned error is nil on a
// clean end of output.
func (t *Terminal) Pump(ctx context.Context, w io.Writer) error {
	stop := make(chan struct{})
	defer close(stop)
	safego.Go("pty.pump.cancel", func() {
		select {
		case <-ctx.Done():
			_ = t.Close()
		case <-stop:
		}
	})

	buf := make([]byte, 32*1024)
	for {
		n, err := t.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fmt.Errorf("pump write: %w", werr)
			}
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return fmt.Errorf("pump read: %w", err)
		}
	}
}

// Wait waits for the command to exit and returns its exit code.
func (t *Terminal) Wait() (int, error) {
	t.waitOnce.Do(func() {
		t.waitErr = t.cmd.Wait()
	})
	var exitErr *exec.ExitError
	if errors.As(t.waitErr, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if t.waitErr != nil {
		return -1, t.waitErr
	}
	return 0, nil
}

// Close closes the terminal
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	t.closed = true

	if t.ptyFile != nil {
		_ = t.ptyFile.Close()
		t.ptyFile = nil
	}

	if t.cmd != nil && t.cmd.Process != nil && t.cmd.ProcessState == nil {
		if err := killGroup(t.cmd.Process.Pid, killGrace); err != nil {
			logging.Warn("pty kill pid=%d: %v", t.cmd.Process.Pid, err)
			_ = t.cmd.Process.Kill()
		}
		_, _ = t.Wait()
	}

	return nil
}

// IsClosed reports whether Close has been called.
func (t *Terminal) IsClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Running returns whether the terminal is still running
func (t *Terminal) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.cmd == nil {
		return false
	}

	// Check if process is still running
	return t.cmd.ProcessState == nil
}

// File returns the underlying PTY file, or nil once closed.
func (t *Terminal) File() *os.File {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ptyFile
}
