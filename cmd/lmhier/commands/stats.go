package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Decode a library and print size figures and journal comparison",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, previous, err := c.components.App.Stats(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:       %s\n", current.Path)
			fmt.Fprintf(out, "format:     %s\n", current.Format)
			fmt.Fprintf(out, "cells:      %d\n", current.CellCount)
			fmt.Fprintf(out, "top cells:  %d\n", current.TopCellCount)
			fmt.Fprintf(out, "placements: %d\n", current.EdgeCount)
			fmt.Fprintf(out, "duration:   %s\n", current.Duration.Round(time.Millisecond))

			switch {
			case previous == nil:
				fmt.Fprintln(out, "journal:    first decode")
			case previous.FileHash == current.FileHash:
				fmt.Fprintf(out, "journal:    unchanged since %s\n",
					previous.Timestamp.Format(time.RFC3339))
			default:
				fmt.Fprintf(out, "journal:    file changed since %s\n",
					previous.Timestamp.Format(time.RFC3339))
			}
			return nil
		},
	}
}
