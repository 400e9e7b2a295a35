package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/termgrid/internal/feed"
	"github.com/andyrewlee/termgrid/internal/logging"
	"github.com/andyrewlee/termgrid/internal/pty"
	"github.com/andyrewlee/termgrid/internal/termbuf"
)

func buildRunCommand(e *env) *cobra.Command {
	var out outputOptions
	var dir string

	cmd := &cobra.Command{
		Use:   "run -- command [args...]",
		Short: "Run a command under a PTY and print the final screen",
		Long: `Run a command under a pseudo-terminal sized to the buffer, feed its
output into the buffer and print the screen when it exits. The command's
exit code becomes termgrid's exit code.

Examples:
  termgrid run -- ls -la
  termgrid run --all --trim -- make test`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			session := e.newSession(feed.ModeOverwrite)

			term, err := pty.NewWithSize(command, dir, nil, uint16(e.cfg.Buffer.Height), uint16(e.cfg.Buffer.Width))
			if err != nil {
				return err
			}
			defer term.Close()

			pumpErr := term.Pump(cmd.Context(), session)
			session.Flush()

			var text string
			session.Snapshot(func(b *termbuf.Buffer) {
				text = out.render(b)
			})
			fmt.Fprintln(cliStdout, text)

			if pumpErr != nil {
				if errors.Is(pumpErr, cmd.Context().Err()) {
					return exitError{code: 130}
				}
				return pumpErr
			}
			code, err := term.Wait()
			if err != nil {
				return fmt.Errorf("wait %q: %w", command, err)
			}
			logging.Info("run %q exited with %d", command, code)
			if code != 0 {
				return exitError{code: code}
			}
			return nil
		},
	}
	out.register(cmd)
	cmd.Flags().StringVar(&dir, "dir", "", "working directory for the command")
	return cmd
}
