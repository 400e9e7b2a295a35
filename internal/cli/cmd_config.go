package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func buildConfigCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"path":   e.cfg.Paths.ConfigPath,
				"buffer": e.cfg.Buffer,
				"log":    e.cfg.Log,
				"render": e.cfg.Render,
				"perf":   e.cfg.Perf,
			}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cliStdout, string(data))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cliStdout, "Wrote %s\n", e.cfg.Paths.ConfigPath)
			return nil
		},
	})
	return cmd
}
