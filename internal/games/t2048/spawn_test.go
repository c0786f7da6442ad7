package t2048

import (
	"math/rand"
	"testing"
)

// scriptedSource replays fixed draws. Intn answers are reduced modulo n;
// once a script runs out it keeps returning 0 and 0.99.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestSpawnPicksEmptyCell(t *testing.T) {
	g := Grid{
		{2, 0, 2, 2},
		{2, 2, 2, 2},
		{2, 2, 0, 2},
		{2, 2, 2, 2},
	}
	src := &scriptedSource{ints: []int{1}, floats: []float64{0.5}}

	s, ok := NewSpawner(src, 0.1).Spawn(&g)
	if !ok {
		t.Fatal("Spawn should succeed with empty cells")
	}
	if s.Cell != (Cell{Row: 2, Col: 2}) {
		t.Errorf("spawned at %+v, want second empty cell (2,2)", s.Cell)
	}
	if s.Value != 2 || g[2][2] != 2 {
		t.Errorf("spawned value %d (grid %d), want 2", s.Value, g[2][2])
	}
}

func TestSpawnFourBelowProbability(t *testing.T) {
	var g Grid
	src := &scriptedSource{floats: []float64{0.05}}

	s, ok := NewSpawner(src, 0.1).Spawn(&g)
	if !ok || s.Value != 4 {
		t.Errorf("Spawn = %+v, %v; want a 4", s, ok)
	}
}

func TestSpawnFullGrid(t *testing.T) {
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	before := g

	if _, ok := NewSpawner(&scriptedSource{}, 0.1).Spawn(&g); ok {
		t.Error("Spawn on a full grid should report no spawn")
	}
	if g != before {
		t.Error("Spawn on a full grid should not change it")
	}
}

func TestSpawnerProbabilityFallback(t *testing.T) {
	for _, p := range []float64{-0.1, 1.5} {
		if got := NewSpawner(&scriptedSource{}, p).FourProb(); got != DefaultSpawnFourProb {
			t.Errorf("NewSpawner(%v).FourProb() = %v, want %v", p, got, DefaultSpawnFourProb)
		}
	}
}

func TestSpawnDistribution(t *testing.T) {
	spawner := NewSpawner(rand.New(rand.NewSource(99)), DefaultSpawnFourProb)

	fours := 0
	const n = 10000
	for i := 0; i < n; i++ {
		var g Grid
		s, _ := spawner.Spawn(&g)
		if s.Value == 4 {
			fours++
		}
	}

	ratio := float64(fours) / n
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("4-tile ratio = %.3f, want about 0.10", ratio)
	}
}
