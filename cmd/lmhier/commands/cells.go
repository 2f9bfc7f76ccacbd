package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTopsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tops <file>",
		Short: "Print the top-level cells of a layout library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := c.components.App.Hierarchy(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, top := range model.TopCells() {
				fmt.Fprintln(out, top)
			}
			return nil
		},
	}
}

func (c *CLI) newCellsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cells <file>",
		Short: "Print all cells of a layout library, sorted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := c.components.App.Hierarchy(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for cell := range model.Cells() {
				fmt.Fprintln(out, cell)
			}
			return nil
		},
	}
}
