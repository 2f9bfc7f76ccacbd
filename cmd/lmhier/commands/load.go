package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/IHP-GmbH/LibMan-sub000/internal/engine/loader"
	"github.com/IHP-GmbH/LibMan-sub000/internal/tui"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <path>...",
		Short: "Decode layout libraries, walking directories for layout files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			progress, _ := cmd.Flags().GetBool("progress")

			var entries []*loader.Entry
			var loadErr error
			if progress {
				entries, loadErr = c.loadWithProgress(cmd, args, jobs)
			} else {
				entries, loadErr = c.components.App.LoadAll(cmd.Context(), args, jobs)
			}
			if loadErr != nil {
				return loadErr
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, entry := range entries {
				if entry.Failed() {
					failed++
					fmt.Fprintf(out, "✗ %s: %s\n", entry.Path(), entry.Errors()[0])
					continue
				}
				info := entry.Info()
				fmt.Fprintf(out, "✓ %s: %d cells, %d tops, %d placements in %s\n",
					entry.Path(), info.CellCount, info.TopCellCount, info.EdgeCount,
					info.Duration.Round(time.Millisecond))
			}
			if failed > 0 {
				return zerr.With(zerr.New("some libraries failed to decode"), "failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Maximum concurrent decodes, 0 uses the configured parallelism")
	cmd.Flags().BoolP("progress", "p", false, "Render a live progress view while decoding")
	return cmd
}

// loadWithProgress runs the batch load while a Bubble Tea program drains
// the telemetry tape. The decode side closes the tape when it is done,
// which ends the program.
func (c *CLI) loadWithProgress(cmd *cobra.Command, args []string, jobs int) ([]*loader.Entry, error) {
	program := tea.NewProgram(
		tui.NewModel(c.components.Tape),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	var entries []*loader.Entry
	var loadErr error
	done := make(chan struct{})
	go func() {
		entries, loadErr = c.components.App.LoadAll(cmd.Context(), args, jobs)
		close(done)
		_ = c.components.Tape.Close()
	}()

	final, err := program.Run()
	if err != nil {
		return nil, zerr.Wrap(err, "progress view failed")
	}
	// Ctrl-C quits the view before the tape ends; in raw mode no signal
	// reaches the process, so the batch is still running and its results
	// are not safe to read.
	if model, ok := final.(*tui.Model); ok && model.Interrupted() {
		return nil, zerr.New("load interrupted")
	}
	<-done
	return entries, loadErr
}
