package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print every piece rotation",
	Long:  `Prints each piece of the standard catalog in all four rotations, in its 4x4 box.`,
	Args:  cobra.NoArgs,
	Run:   runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	fmt.Print(formatCatalog(engine.StandardCatalog()))
}

// formatCatalog draws each piece's rotations side by side.
func formatCatalog(cat *engine.Catalog) string {
	const box = engine.CellsPerPiece

	var b strings.Builder
	for _, t := range cat.Types() {
		fmt.Fprintf(&b, "%s\n", cat.Name(t))

		var grids [engine.RotationCount][box][box]bool
		for r := range engine.RotationCount {
			for _, o := range cat.Offsets(t, r) {
				if o.DX >= 0 && o.DX < box && o.DY >= 0 && o.DY < box {
					grids[r][o.DY][o.DX] = true
				}
			}
		}

		for row := range box {
			parts := make([]string, 0, engine.RotationCount)
			for r := range engine.RotationCount {
				var line strings.Builder
				for col := range box {
					if grids[r][row][col] {
						line.WriteString("[]")
					} else {
						line.WriteString(" .")
					}
				}
				parts = append(parts, line.String())
			}
			b.WriteString(strings.Join(parts, "   "))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
