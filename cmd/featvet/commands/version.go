package commands

import (
	"fmt"

	"github.com/featvet/featvet/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(_ *cobra.Command, _ []string) {
			if build.Commit != "" {
				fmt.Printf("featvet version %s (%s)\n", build.Version, build.Commit)
				return
			}
			fmt.Printf("featvet version %s\n", build.Version)
		},
	}
}
