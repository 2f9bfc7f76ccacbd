package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <file>",
		Short: "Create an empty GDSII library containing one cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, _ := cmd.Flags().GetString("cell")
			lib, _ := cmd.Flags().GetString("lib")

			if err := c.components.App.CreateLibrary(args[0], lib, cell); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s with cell %s\n", args[0], cell)
			return nil
		},
	}
	cmd.Flags().String("cell", "", "Name of the single cell in the new library")
	cmd.Flags().String("lib", "", "Library name, defaults to the cell name")
	_ = cmd.MarkFlagRequired("cell")
	return cmd
}
