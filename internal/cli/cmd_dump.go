package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/andyrewlee/termgrid/internal/feed"
	"github.com/andyrewlee/termgrid/internal/render"
	"github.com/andyrewlee/termgrid/internal/termbuf"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type outputOptions struct {
	all       bool
	color     bool
	trim      bool
	clipboard bool
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.all, "all", false, "include scrollback above the screen")
	cmd.Flags().BoolVar(&o.color, "color", false, "render attributes as ANSI styles")
	cmd.Flags().BoolVar(&o.trim, "trim", false, "strip trailing blanks and blank trailing rows")
}

// render formats the buffer per the options.
func (o *outputOptions) render(b *termbuf.Buffer) string {
	r := &render.Renderer{Styled: o.color}
	var out string
	if o.all {
		out = r.All(b)
	} else {
		out = r.Screen(b)
	}
	if o.trim {
		out = trimOutput(out)
	}
	return out
}

func trimOutput(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func buildDumpCommand(e *env) *cobra.Command {
	var out outputOptions
	var insert bool

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Feed a file (or stdin) into a buffer and print it",
		Long: `Feed a file, or stdin when no file is given, into a fresh buffer and
print the resulting screen.

Examples:
  termgrid dump build.log                  # Final screen of a log
  termgrid dump --all --trim build.log     # Scrollback and screen
  some-cmd | termgrid dump --width 120     # Wider buffer from a pipe`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := feed.ModeOverwrite
			if insert {
				mode = feed.ModeInsert
			}
			session := e.newSession(mode)
			if len(args) == 1 {
				if err := feedFile(session, args[0]); err != nil {
					return err
				}
			} else {
				if _, err := io.Copy(session, cliStdin); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				session.Flush()
			}

			var text string
			session.Snapshot(func(b *termbuf.Buffer) {
				text = out.render(b)
			})
			fmt.Fprintln(cliStdout, text)

			if out.clipboard {
				if err := writeClipboard(text); err != nil {
					return fmt.Errorf("clipboard: %w", err)
				}
			}
			return nil
		},
	}
	out.register(cmd)
	cmd.Flags().BoolVar(&insert, "insert", false, "write in insert mode instead of overwrite")
	cmd.Flags().BoolVar(&out.clipboard, "clipboard", false, "also copy the output to the clipboard")
	return cmd
}

func feedFile(session *feed.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(session, f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	session.Flush()
	return nil
}
