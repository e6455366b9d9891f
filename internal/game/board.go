package game

import "fmt"

// Direction is a tilt direction, relative to a fixed canonical orientation
// in which row 0 is the bottom edge of the board and row N-1 the top.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Board stores the N×N tile grid together with a viewing perspective. The
// perspective remaps logical (col, row) accesses onto physical cells so
// that under perspective d, logical row N-1 is always the edge tiles slide
// toward; one column-sweep algorithm then serves all four tilt directions.
// Changing the perspective never touches the stored tiles.
//
// Invariant: a tile stored at physical cell (c, r) carries Col=c, Row=r.
type Board struct {
	size  int
	cells [][]*Tile // indexed [col][row], physical frame
	view  Direction
}

// NewBoard creates an empty size×size board with the canonical (up)
// perspective.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("game: invalid board size %d", size))
	}
	cells := make([][]*Tile, size)
	for c := range cells {
		cells[c] = make([]*Tile, size)
	}
	return &Board{size: size, cells: cells, view: DirUp}
}

// Size returns the number of squares on one side of the board.
func (b *Board) Size() int {
	return b.size
}

// SetPerspective changes the viewing perspective. Pure view change, O(1).
func (b *Board) SetPerspective(d Direction) {
	b.view = d
}

// Perspective returns the current viewing perspective.
func (b *Board) Perspective() Direction {
	return b.view
}

// toPhysical translates logical (col, row) under the current perspective
// into physical coordinates. Each mapping is a rotation of the axes chosen
// so that logical row size-1 lands on the edge tiles slide toward.
func (b *Board) toPhysical(col, row int) (int, int) {
	b.checkBounds(col, row)
	n := b.size - 1
	switch b.view {
	case DirUp:
		return col, row
	case DirDown:
		return n - col, n - row
	case DirLeft:
		return n - row, col
	case DirRight:
		return row, n - col
	default:
		panic(fmt.Sprintf("game: invalid perspective %d", int(b.view)))
	}
}

// checkBounds panics on out-of-range coordinates. Passing them is a caller
// bug, not a recoverable game condition.
func (b *Board) checkBounds(col, row int) {
	if col < 0 || col >= b.size || row < 0 || row >= b.size {
		panic(fmt.Sprintf("game: coordinates (%d, %d) out of range for board size %d", col, row, b.size))
	}
}

// TileAt returns the tile at logical (col, row) under the current
// perspective, or nil if the cell is empty.
func (b *Board) TileAt(col, row int) *Tile {
	pc, pr := b.toPhysical(col, row)
	return b.cells[pc][pr]
}

// AddTile places t at its own (Col, Row) in the physical frame, regardless
// of the current perspective. The cell must be empty; placing onto an
// occupied cell panics rather than silently overwriting.
func (b *Board) AddTile(t *Tile) {
	b.checkBounds(t.Col, t.Row)
	if b.cells[t.Col][t.Row] != nil {
		panic(fmt.Sprintf("game: cell (%d, %d) is already occupied", t.Col, t.Row))
	}
	b.cells[t.Col][t.Row] = t
}

// Move relocates t to logical (col, row) under the current perspective.
// An empty target means a plain slide: the tile lands there and Move
// reports false. An occupied target means the cell holds a tile placed
// earlier in the same tilt pass; the two combine into one tile of doubled
// value and Move reports true. Moving a tile onto its own cell is a no-op.
//
// Move trusts its caller: an occupied target must hold a tile of equal
// value, and a given cell must receive at most one merge per tilt. Both are
// guaranteed by the engine's traversal order.
func (b *Board) Move(col, row int, t *Tile) bool {
	pc, pr := b.toPhysical(col, row)
	if t.Col == pc && t.Row == pr {
		return false
	}
	dst := b.cells[pc][pr]
	b.cells[t.Col][t.Row] = nil
	if dst == nil {
		b.cells[pc][pr] = &Tile{Value: t.Value, Col: pc, Row: pr}
		return false
	}
	b.cells[pc][pr] = &Tile{Value: 2 * t.Value, Col: pc, Row: pr}
	return true
}

// Clear removes every tile. Size and perspective are unchanged.
func (b *Board) Clear() {
	for c := range b.cells {
		for r := range b.cells[c] {
			b.cells[c][r] = nil
		}
	}
}
