package game

import (
	"fmt"
	"strings"
)

// Snapshot captures the complete engine state for the UI, persistence, and
// determinism tests.
type Snapshot struct {
	Size     int
	Values   [][]int // indexed [row][col], top row first, 0 = empty
	Score    int
	MaxScore int
	MaxTile  int
	Over     bool
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	n := e.Size()
	values := make([][]int, n)
	for i := range values {
		values[i] = make([]int, n)
		for col := 0; col < n; col++ {
			if t := e.TileAt(col, n-1-i); t != nil {
				values[i][col] = t.Value
			}
		}
	}
	return Snapshot{
		Size:     n,
		Values:   values,
		Score:    e.score,
		MaxScore: e.maxScore,
		MaxTile:  e.MaxTile(),
		Over:     e.GameOver(),
	}
}

// MaxTile returns the largest tile value on the board, or 0 when it is
// empty.
func (e *Engine) MaxTile() int {
	maxVal := 0
	for col := 0; col < e.Size(); col++ {
		for row := 0; row < e.Size(); row++ {
			if t := e.TileAt(col, row); t != nil && t.Value > maxVal {
				maxVal = t.Value
			}
		}
	}
	return maxVal
}

// Equal reports structural equality with other: same size, same cell
// values, same score and max score. The text rendering plays no part.
func (e *Engine) Equal(other *Engine) bool {
	if other == nil || e.Size() != other.Size() {
		return false
	}
	if e.score != other.score || e.maxScore != other.maxScore {
		return false
	}
	for col := 0; col < e.Size(); col++ {
		for row := 0; row < e.Size(); row++ {
			a, b := e.TileAt(col, row), other.TileAt(col, row)
			switch {
			case a == nil && b == nil:
			case a == nil || b == nil:
				return false
			case a.Value != b.Value:
				return false
			}
		}
	}
	return true
}

// String renders the board in a fixed text format: rows top to bottom, each
// cell four characters wide and right-justified, followed by a score and
// status line. Presentation only; equality does not depend on it.
func (e *Engine) String() string {
	var sb strings.Builder
	sb.WriteString("\n[\n")
	for row := e.Size() - 1; row >= 0; row-- {
		for col := 0; col < e.Size(); col++ {
			if t := e.TileAt(col, row); t == nil {
				sb.WriteString("|    ")
			} else {
				fmt.Fprintf(&sb, "|%4d", t.Value)
			}
		}
		sb.WriteString("|\n")
	}
	status := "not over"
	if e.GameOver() {
		status = "over"
	}
	fmt.Fprintf(&sb, "] %d (max: %d) (game is %s)\n", e.score, e.maxScore, status)
	return sb.String()
}
