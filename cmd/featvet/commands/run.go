package commands

import (
	"github.com/featvet/featvet/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Check every feature combination of the project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := resolveConfigPath(cmd, args)
			manifest, _ := cmd.Flags().GetString("manifest")
			jobs, _ := cmd.Flags().GetInt("jobs")
			noTUI, _ := cmd.Flags().GetBool("no-tui")
			quiet, _ := cmd.Flags().GetBool("quiet")

			mode := ""
			if noTUI {
				mode = "linear"
			}
			if quiet {
				mode = "silent"
			}

			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath:       configPath,
				ManifestOverride: manifest,
				Jobs:             jobs,
				OutputMode:       mode,
			})
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of parallel check lanes (defaults to the configured concurrency)")
	cmd.Flags().Bool("no-tui", false, "Disable the interactive progress view")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")
	return cmd
}
