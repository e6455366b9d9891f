package game

// MaxPiece is the winning tile value. Its presence on the board ends the
// game.
const MaxPiece = 2048

// Engine owns the board and the score and implements the tilt state
// machine. One Engine serves exactly one game and assumes exclusive
// single-threaded access; concurrent sessions each need their own Engine.
type Engine struct {
	board    *Board
	score    int
	maxScore int
}

// New returns an engine with an empty size×size board and score 0.
func New(size int) *Engine {
	return &Engine{board: NewBoard(size)}
}

// NewFromValues builds an engine from a raw value matrix for deterministic
// scenario setup, bypassing normal play. values is indexed [row][col] and
// reads the way a board is displayed: values[0] is the top row. A value of
// 0 means the cell is empty.
func NewFromValues(values [][]int, score, maxScore int) *Engine {
	n := len(values)
	e := &Engine{board: NewBoard(n), score: score, maxScore: maxScore}
	for i, rowValues := range values {
		if len(rowValues) != n {
			panic("game: value matrix is not square")
		}
		for col, v := range rowValues {
			if v != 0 {
				e.board.AddTile(&Tile{Value: v, Col: col, Row: n - 1 - i})
			}
		}
	}
	return e
}

// Size returns the number of squares on one side of the board.
func (e *Engine) Size() int {
	return e.board.Size()
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// MaxScore returns the best score recorded at a game-over instant. It never
// decreases.
func (e *Engine) MaxScore() int {
	return e.maxScore
}

// TileAt returns the tile at canonical (col, row), or nil if the cell is
// empty.
func (e *Engine) TileAt(col, row int) *Tile {
	return e.board.TileAt(col, row)
}

// Board returns a read-only view of the underlying board for the free
// predicates and display code.
func (e *Engine) Board() *Board {
	return e.board
}

// Clear empties the board and resets the score. The max score survives: it
// tracks the best finished game, not the current one.
func (e *Engine) Clear() {
	e.score = 0
	e.board.Clear()
}

// AddTile places t on the board (the target cell must be empty) and
// re-checks the game-over condition, since a placed tile can fill the last
// free cell or be the winning piece.
func (e *Engine) AddTile(t *Tile) {
	e.board.AddTile(t)
	e.checkGameOver()
}

// GameOver reports whether the winning tile is on the board or no move
// remains. Pure query over canonical coordinates.
func (e *Engine) GameOver() bool {
	return MaxTileExists(e.board) || !AtLeastOneMoveExists(e.board)
}

// checkGameOver records the score as the max score at the instant the game
// becomes over.
func (e *Engine) checkGameOver() {
	if e.GameOver() && e.score > e.maxScore {
		e.maxScore = e.score
	}
}

// Tilt slides every tile toward dir, merging equal adjacent pairs and
// adding each merged value to the score. A tile merges at most once per
// tilt; of three equal tiles in a row, the two nearest the sliding edge
// merge and the third stays. The perspective switch lets rearrangeColumn
// serve all four directions and is restored before game-over is re-checked.
func (e *Engine) Tilt(dir Direction) {
	e.board.SetPerspective(dir)
	for col := 0; col < e.board.Size(); col++ {
		e.rearrangeColumn(col)
	}
	e.board.SetPerspective(DirUp)
	e.checkGameOver()
}

// rearrangeColumn compacts and merges one logical column, scanning from the
// edge tiles slide toward (row size-1) back toward row 0. blank is the slot
// the next tile lands in; sealing it (moving it down one row) after a merge
// or a blocked placement is what limits every slot to a single merge per
// tilt. Four outcomes per tile: slide into the open slot, merge with the
// next equal tile below, get sealed in place by a different value, or end
// the column.
func (e *Engine) rearrangeColumn(col int) {
	blank := e.board.Size() - 1
	for row := e.board.Size() - 1; row >= 0; row-- {
		t := e.board.TileAt(col, row)
		if t == nil {
			continue
		}
		e.board.Move(col, blank, t)

		next := e.nextOccupiedRow(col, row-1)
		switch {
		case next < 0:
			// Rest of the column is empty; nothing left to place.
		case e.board.TileAt(col, next).Value == t.Value:
			e.board.Move(col, blank, e.board.TileAt(col, next))
			e.score += 2 * t.Value
			blank--
		default:
			// Blocked by a different value: t is final at blank.
			blank--
		}
	}
}

// nextOccupiedRow returns the highest row at or below start holding a tile
// in the given logical column, or -1 if the rest of the column is empty.
func (e *Engine) nextOccupiedRow(col, start int) int {
	for row := start; row >= 0; row-- {
		if e.board.TileAt(col, row) != nil {
			return row
		}
	}
	return -1
}

// EmptySpaceExists reports whether any cell on b is empty.
func EmptySpaceExists(b *Board) bool {
	for col := range b.cells {
		for row := range b.cells[col] {
			if b.cells[col][row] == nil {
				return true
			}
		}
	}
	return false
}

// MaxTileExists reports whether any tile on b has the winning value.
func MaxTileExists(b *Board) bool {
	for col := range b.cells {
		for row := range b.cells[col] {
			if t := b.cells[col][row]; t != nil && t.Value == MaxPiece {
				return true
			}
		}
	}
	return false
}

// AtLeastOneMoveExists reports whether a tilt in some direction would change
// b: an empty cell exists, or two equal tiles are adjacent. Only the north
// and east neighbors are checked; the relation is symmetric, so the full
// scan still sees every adjacent pair.
func AtLeastOneMoveExists(b *Board) bool {
	n := b.size
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			t := b.cells[col][row]
			if t == nil {
				return true
			}
			if row+1 < n && b.cells[col][row+1] != nil && b.cells[col][row+1].Value == t.Value {
				return true
			}
			if col+1 < n && b.cells[col+1][row] != nil && b.cells[col+1][row].Value == t.Value {
				return true
			}
		}
	}
	return false
}
