package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/andyrewlee/termgrid/internal/feed"
	"github.com/andyrewlee/termgrid/internal/safego"
	"github.com/andyrewlee/termgrid/internal/termbuf"
	"github.com/andyrewlee/termgrid/internal/viewer"
	"github.com/andyrewlee/termgrid/internal/watch"
)

// runViewer runs the interactive viewer until the user quits. When stdin
// carried the content, keys are read from the controlling terminal instead.
// It is swapped out in tests.
var runViewer = func(ctx context.Context, session *feed.Session, stdinUsed bool) error {
	m := viewer.New(session)
	defer m.Close()
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithFilter(viewer.NewWheelFilter().Filter)}
	if stdinUsed {
		in, out, err := tea.OpenTTY()
		if err != nil {
			return err
		}
		defer in.Close()
		defer out.Close()
		opts = append(opts, tea.WithInput(in))
	}
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func buildFollowCommand(e *env) *cobra.Command {
	var out outputOptions
	var view bool

	cmd := &cobra.Command{
		Use:   "follow <file>",
		Short: "Tail a growing file into the buffer",
		Long: `Feed a file into the buffer and keep feeding whatever is appended to it.
Without --view the screen is printed after every change; with --view the
interactive viewer is opened instead. A truncated file is re-read from the
start.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			session := e.newSession(feed.ModeOverwrite)
			policy := watch.DefaultRestartPolicy()

			if !view {
				onUpdate := func(int) {
					session.Snapshot(func(b *termbuf.Buffer) {
						fmt.Fprintln(cliStdout, out.render(b))
					})
					fmt.Fprintln(cliStdout, "---")
				}
				err := watch.Follow(ctx, args[0], session, policy, onUpdate)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

			done := safego.GoErr("follow.watch", func() error {
				return watch.Follow(ctx, args[0], session, policy, nil)
			})
			viewErr := runViewer(ctx, session, false)
			cancel()
			if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return viewErr
		},
	}
	out.register(cmd)
	cmd.Flags().BoolVar(&view, "view", false, "open the interactive viewer")
	return cmd
}

func buildViewCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a file's (or stdin's) screen and scrollback interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := e.newSession(feed.ModeOverwrite)
			if len(args) == 1 {
				if err := feedFile(session, args[0]); err != nil {
					return err
				}
				return runViewer(cmd.Context(), session, false)
			}
			if _, err := io.Copy(session, cliStdin); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			session.Flush()
			return runViewer(cmd.Context(), session, true)
		},
	}
	return cmd
}
