package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
)

func (c *CLI) newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the cell hierarchy of a layout library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("cell")
			depth, _ := cmd.Flags().GetInt("depth")

			model, err := c.components.App.Hierarchy(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			roots := model.TopCells()
			if root != "" {
				name := domain.NewCellName(root)
				if !model.Contains(name) {
					return zerr.With(zerr.New("cell not found in library"), "cell", root)
				}
				roots = []domain.CellName{name}
			}

			out := cmd.OutOrStdout()
			for _, top := range roots {
				printTree(out, model, top, 0, depth, nil)
			}
			return nil
		},
	}
	cmd.Flags().String("cell", "", "Print the subtree under this cell instead of the top cells")
	cmd.Flags().Int("depth", 0, "Limit the printed depth, 0 means unlimited")
	return cmd
}

// printTree prints cell and its placements indented by level. onPath
// holds the cells on the current root-to-node path so a recursive
// library (a cycle) prints once and stops instead of recursing forever.
func printTree(w io.Writer, model *domain.Hierarchy, cell domain.CellName, level, maxDepth int, onPath []domain.CellName) {
	indent := strings.Repeat("  ", level)
	for _, ancestor := range onPath {
		if ancestor == cell {
			fmt.Fprintf(w, "%s%s (recursive)\n", indent, cell)
			return
		}
	}
	fmt.Fprintf(w, "%s%s\n", indent, cell)

	if maxDepth > 0 && level+1 >= maxDepth {
		return
	}
	onPath = append(onPath, cell)
	for _, child := range model.Children(cell) {
		printTree(w, model, child, level+1, maxDepth, onPath)
	}
}
