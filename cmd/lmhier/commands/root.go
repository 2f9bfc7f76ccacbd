// Package commands implements the CLI commands for the lmhier tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/IHP-GmbH/LibMan-sub000/internal/app"
	"github.com/IHP-GmbH/LibMan-sub000/internal/build"
)

// CLI represents the command line interface for lmhier.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance over the given application components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lmhier",
		Short:         "Read cell hierarchies from GDSII and OASIS layout libraries",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	cli := &CLI{
		components: c,
		rootCmd:    rootCmd,
	}

	rootCmd.AddCommand(cli.newTreeCmd())
	rootCmd.AddCommand(cli.newTopsCmd())
	rootCmd.AddCommand(cli.newCellsCmd())
	rootCmd.AddCommand(cli.newLoadCmd())
	rootCmd.AddCommand(cli.newStatsCmd())
	rootCmd.AddCommand(cli.newCreateCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
