package viewer

import (
	"fmt"
	"runtime/debug"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/termgrid/internal/logging"
)

// errMsg reports a failure from a background command.
type errMsg struct {
	err error
}

// safeCmd wraps a command with panic recovery.
func safeCmd(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				logging.Error("panic in command: %v\n%s", r, debug.Stack())
				msg = errMsg{err: fmt.Errorf("command panic: %v", r)}
			}
		}()
		return cmd()
	}
}
