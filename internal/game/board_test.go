package game

import "testing"

func TestPerspectiveBijection(t *testing.T) {
	const size = 4
	b := NewBoard(size)

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(dir.String(), func(t *testing.T) {
			b.SetPerspective(dir)
			seen := make(map[[2]int]bool)
			for col := 0; col < size; col++ {
				for row := 0; row < size; row++ {
					pc, pr := b.toPhysical(col, row)
					if pc < 0 || pc >= size || pr < 0 || pr >= size {
						t.Fatalf("toPhysical(%d, %d) = (%d, %d), out of range", col, row, pc, pr)
					}
					key := [2]int{pc, pr}
					if seen[key] {
						t.Fatalf("toPhysical(%d, %d) = (%d, %d) already produced by another cell", col, row, pc, pr)
					}
					seen[key] = true
				}
			}
		})
	}
}

func TestPerspectiveSlideEdge(t *testing.T) {
	// Logical row size-1 must map onto the edge tiles slide toward.
	const size = 4
	b := NewBoard(size)

	tests := []struct {
		dir   Direction
		check func(pc, pr int) bool
		edge  string
	}{
		{DirUp, func(pc, pr int) bool { return pr == size-1 }, "top row"},
		{DirDown, func(pc, pr int) bool { return pr == 0 }, "bottom row"},
		{DirLeft, func(pc, pr int) bool { return pc == 0 }, "left column"},
		{DirRight, func(pc, pr int) bool { return pc == size-1 }, "right column"},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			b.SetPerspective(tt.dir)
			for col := 0; col < size; col++ {
				pc, pr := b.toPhysical(col, size-1)
				if !tt.check(pc, pr) {
					t.Errorf("logical (%d, %d) maps to (%d, %d), want a cell on the %s", col, size-1, pc, pr, tt.edge)
				}
			}
		})
	}
}

func TestSetPerspectiveDoesNotMoveTiles(t *testing.T) {
	b := NewBoard(4)
	b.AddTile(&Tile{Value: 2, Col: 1, Row: 2})

	b.SetPerspective(DirLeft)
	b.SetPerspective(DirUp)

	if tile := b.TileAt(1, 2); tile == nil || tile.Value != 2 {
		t.Errorf("tile moved after perspective round-trip: got %v at (1, 2)", tile)
	}
}

func TestTileAtOutOfRangePanics(t *testing.T) {
	b := NewBoard(4)

	defer func() {
		if recover() == nil {
			t.Error("TileAt(4, 0) on a 4x4 board should panic")
		}
	}()
	b.TileAt(4, 0)
}

func TestAddTileOccupiedPanics(t *testing.T) {
	b := NewBoard(4)
	b.AddTile(&Tile{Value: 2, Col: 0, Row: 0})

	defer func() {
		if recover() == nil {
			t.Error("AddTile onto an occupied cell should panic")
		}
	}()
	b.AddTile(&Tile{Value: 4, Col: 0, Row: 0})
}

func TestMoveIntoEmpty(t *testing.T) {
	b := NewBoard(4)
	tile := &Tile{Value: 2, Col: 0, Row: 0}
	b.AddTile(tile)

	if merged := b.Move(0, 3, tile); merged {
		t.Error("Move into an empty cell should report no merge")
	}

	if b.TileAt(0, 0) != nil {
		t.Error("source cell should be empty after Move")
	}
	moved := b.TileAt(0, 3)
	if moved == nil || moved.Value != 2 {
		t.Fatalf("TileAt(0, 3) = %v, want value 2", moved)
	}
	if moved.Col != 0 || moved.Row != 3 {
		t.Errorf("moved tile records position (%d, %d), want (0, 3)", moved.Col, moved.Row)
	}
}

func TestMoveMerge(t *testing.T) {
	b := NewBoard(4)
	target := &Tile{Value: 2, Col: 0, Row: 3}
	mover := &Tile{Value: 2, Col: 0, Row: 1}
	b.AddTile(target)
	b.AddTile(mover)

	if merged := b.Move(0, 3, mover); !merged {
		t.Error("Move onto an equal tile should report a merge")
	}

	if b.TileAt(0, 1) != nil {
		t.Error("moving tile should be removed from its source cell")
	}
	result := b.TileAt(0, 3)
	if result == nil || result.Value != 4 {
		t.Fatalf("TileAt(0, 3) = %v, want merged value 4", result)
	}
}

func TestMoveOntoOwnCellIsNoop(t *testing.T) {
	b := NewBoard(4)
	tile := &Tile{Value: 2, Col: 0, Row: 3}
	b.AddTile(tile)

	if merged := b.Move(0, 3, tile); merged {
		t.Error("moving a tile onto its own cell should not merge")
	}
	if got := b.TileAt(0, 3); got == nil || got.Value != 2 {
		t.Errorf("TileAt(0, 3) = %v, want the original tile", got)
	}
}

func TestMoveUnderPerspective(t *testing.T) {
	// Under the left perspective, logical (0, size-1) is physical (0, 0).
	b := NewBoard(4)
	tile := &Tile{Value: 2, Col: 2, Row: 0}
	b.AddTile(tile)

	b.SetPerspective(DirLeft)
	b.Move(0, 3, tile)
	b.SetPerspective(DirUp)

	moved := b.TileAt(0, 0)
	if moved == nil || moved.Value != 2 {
		t.Fatalf("TileAt(0, 0) = %v, want value 2", moved)
	}
	if moved.Col != 0 || moved.Row != 0 {
		t.Errorf("moved tile records position (%d, %d), want physical (0, 0)", moved.Col, moved.Row)
	}
}

func TestClearKeepsSizeAndPerspective(t *testing.T) {
	b := NewBoard(4)
	b.AddTile(&Tile{Value: 2, Col: 1, Row: 1})
	b.SetPerspective(DirRight)

	b.Clear()

	if b.Size() != 4 {
		t.Errorf("Size() = %d after Clear, want 4", b.Size())
	}
	if b.Perspective() != DirRight {
		t.Errorf("Perspective() = %v after Clear, want right", b.Perspective())
	}
	b.SetPerspective(DirUp)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if b.TileAt(col, row) != nil {
				t.Errorf("cell (%d, %d) not empty after Clear", col, row)
			}
		}
	}
}
