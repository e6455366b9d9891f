// Package game implements the rules engine of an N×N sliding-tile merge
// puzzle: the board, the score, and the tilt algorithm that slides and
// merges tiles. Input handling, rendering, and the random spawn policy live
// outside the engine and only need read access to board contents, the
// score, and the game-over status.
package game

// Tile is an immutable board piece. Tiles are never mutated in place:
// sliding or merging replaces a tile with a new one at the new position.
type Tile struct {
	Value int // Power-of-two tile value
	Col   int // Column at last placement, physical frame
	Row   int // Row at last placement, physical frame
}
