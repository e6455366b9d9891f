package game

import "math/rand"

// Spawner implements the random tile placement policy. It sits outside the
// rules engine proper: the engine only ever sees AddTile calls.
type Spawner struct {
	rng        *rand.Rand
	fourChance float64
}

// NewSpawner creates a spawner with its own RNG so that a fixed seed gives a
// reproducible game. fourChance is the probability a spawned tile is a 4
// instead of a 2.
func NewSpawner(seed int64, fourChance float64) *Spawner {
	return &Spawner{
		rng:        rand.New(rand.NewSource(seed)),
		fourChance: fourChance,
	}
}

// Spawn places a new tile in a random empty cell and reports whether a free
// cell existed.
func (s *Spawner) Spawn(e *Engine) bool {
	var free [][2]int
	for col := 0; col < e.Size(); col++ {
		for row := 0; row < e.Size(); row++ {
			if e.TileAt(col, row) == nil {
				free = append(free, [2]int{col, row})
			}
		}
	}
	if len(free) == 0 {
		return false
	}

	cell := free[s.rng.Intn(len(free))]
	value := 2
	if s.rng.Float64() < s.fourChance {
		value = 4
	}
	e.AddTile(&Tile{Value: value, Col: cell[0], Row: cell[1]})
	return true
}
