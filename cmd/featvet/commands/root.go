// Package commands implements the CLI commands for the featvet tool.
package commands

import (
	"context"
	"path/filepath"

	"github.com/featvet/featvet/internal/app"
	"github.com/featvet/featvet/internal/build"
	"github.com/featvet/featvet/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for featvet.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "featvet",
		Short:         "Vet every feature combination of a Cargo project",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigFile, "Path to the configuration file")
	rootCmd.PersistentFlags().StringP("manifest", "m", "", "Path to the manifest (defaults to Cargo.toml beside the config)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCombosCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// resolveConfigPath derives the configuration path from the optional
// positional project path. An explicit --config flag wins over it.
func resolveConfigPath(cmd *cobra.Command, args []string) string {
	configPath, _ := cmd.Flags().GetString("config")
	if len(args) == 1 && !cmd.Flags().Changed("config") {
		configPath = filepath.Join(args[0], domain.DefaultConfigFile)
	}
	return configPath
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
