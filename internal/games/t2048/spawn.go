package t2048

// DefaultSpawnFourProb is the chance that a spawned tile is a 4.
const DefaultSpawnFourProb = 0.10

// Source is the randomness used for spawning. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Spawn records a tile placed after a move.
type Spawn struct {
	Cell
	Value int
}

// Spawner places new tiles on empty cells.
type Spawner struct {
	src      Source
	fourProb float64
}

// NewSpawner creates a spawner drawing from src.
// fourProb outside [0, 1] falls back to DefaultSpawnFourProb.
func NewSpawner(src Source, fourProb float64) *Spawner {
	if fourProb < 0 || fourProb > 1 {
		fourProb = DefaultSpawnFourProb
	}
	return &Spawner{src: src, fourProb: fourProb}
}

// FourProb returns the probability of spawning a 4.
func (s *Spawner) FourProb() float64 {
	return s.fourProb
}

// Spawn puts a 2 or a 4 on a uniformly chosen empty cell of g.
// The cell is drawn before the value. Returns false if g is full.
func (s *Spawner) Spawn(g *Grid) (Spawn, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Spawn{}, false
	}

	cell := empty[s.src.Intn(len(empty))]

	value := 2
	if s.src.Float64() < s.fourProb {
		value = 4
	}

	g[cell.Row][cell.Col] = value
	return Spawn{Cell: cell, Value: value}, true
}
