package commands

import (
	"github.com/featvet/featvet/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newCombosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combos [path]",
		Short: "Print the combinations a run would vet, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := resolveConfigPath(cmd, args)
			manifest, _ := cmd.Flags().GetString("manifest")

			return c.app.Combos(app.RunOptions{
				ConfigPath:       configPath,
				ManifestOverride: manifest,
			})
		},
	}
}
