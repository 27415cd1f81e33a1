package engine

import "github.com/kamstrup/intmap"

// lineScores maps the number of rows cleared at once to the points awarded.
var lineScores = [...]int{0, 40, 100, 300, 1200}

// ScoreForLines returns the points for clearing n rows in a single pass.
// Anything beyond four rows is scored as four.
func ScoreForLines(n int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(lineScores) {
		return lineScores[len(lineScores)-1]
	}
	return lineScores[n]
}

// ClearResult describes a single ClearFullRows pass.
type ClearResult struct {
	Rows       []int  // Indices of the cleared rows, top to bottom
	Cleared    []Cell // Cells removed, at their pre-clear positions
	ScoreDelta int
}

// Count returns the number of rows cleared.
func (r ClearResult) Count() int {
	return len(r.Rows)
}

// ClearFullRows removes every full row and drops the rows above it.
//
// Each surviving cell moves down by the number of cleared rows below it,
// computed from the pre-clear positions in one pass.
func (b *Board) ClearFullRows() ClearResult {
	counts := make([]int, b.height)
	for _, c := range b.Cells() {
		counts[c.Row]++
	}

	var result ClearResult
	for row, n := range counts {
		if n >= b.width {
			result.Rows = append(result.Rows, row)
		}
	}
	if len(result.Rows) == 0 {
		return result
	}

	// shift[row] = number of cleared rows strictly below row; -1 marks a cleared row.
	shift := make([]int, b.height)
	below := 0
	full := 0
	for row := b.height - 1; row >= 0; row-- {
		if full < len(result.Rows) && result.Rows[len(result.Rows)-1-full] == row {
			shift[row] = -1
			below++
			full++
			continue
		}
		shift[row] = below
	}

	compacted := intmap.New[int, Cell](b.width * b.height)
	for _, c := range b.Cells() {
		if shift[c.Row] < 0 {
			result.Cleared = append(result.Cleared, c)
			continue
		}
		moved := Cell{Col: c.Col, Row: c.Row + shift[c.Row]}
		compacted.Put(b.key(moved), moved)
	}
	b.settled = compacted

	result.ScoreDelta = ScoreForLines(len(result.Rows))
	return result
}
