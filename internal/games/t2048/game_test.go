package t2048

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func newSeededGame(seed int64, ledger *ScoreLedger, opts ...Option) *Game {
	spawner := NewSpawner(rand.New(rand.NewSource(seed)), DefaultSpawnFourProb)
	return New(spawner, ledger, opts...)
}

func countTiles(g Grid) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewWithoutSpawner(t *testing.T) {
	g := New(nil, nil)

	if n := countTiles(g.Grid()); n != 2 {
		t.Fatalf("new game has %d tiles, want 2", n)
	}
	if g.spawner == nil || g.spawner.FourProb() != DefaultSpawnFourProb {
		t.Error("nil spawner should default to a seeded one with the default 4-chance")
	}
	g.Reset()
	if n := countTiles(g.Grid()); n != 2 {
		t.Errorf("reset dealt %d tiles, want 2", n)
	}
}

func TestNewGameDealsTwoTiles(t *testing.T) {
	g := newSeededGame(1, nil)

	if n := countTiles(g.Grid()); n != 2 {
		t.Errorf("new game has %d tiles, want 2", n)
	}
	if g.Score() != 0 || g.Won() || g.Over() || g.Moves() != 0 {
		t.Errorf("new game state = %+v, want fresh", g.Snapshot())
	}
	if g.LastSpawn() == nil {
		t.Error("new game should record the last spawn")
	}
}

func TestDeterministicSpawn(t *testing.T) {
	g1 := newSeededGame(12345, nil)
	g2 := newSeededGame(12345, nil)

	if g1.Grid() != g2.Grid() {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.Grid(), g2.Grid())
	}

	for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft} {
		g1.Move(dir)
		g2.Move(dir)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Same seed and moves should produce same state:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestMoveAppliesScoreAndSpawn(t *testing.T) {
	g := newSeededGame(42, nil)
	g.grid = Grid{{2, 2, 0, 0}}

	out, ok := g.Move(DirLeft)
	if !ok {
		t.Fatal("expected move to succeed")
	}
	if out.ScoreGain != 4 || g.Score() != 4 {
		t.Errorf("gain = %d, score = %d, want 4 and 4", out.ScoreGain, g.Score())
	}
	if out.Spawn == nil {
		t.Fatal("accepted move should spawn a tile")
	}
	if out.Grid != g.Grid() {
		t.Error("outcome grid should include the spawned tile")
	}
	if v := g.Grid()[out.Spawn.Row][out.Spawn.Col]; v != out.Spawn.Value {
		t.Errorf("grid at spawn = %d, want %d", v, out.Spawn.Value)
	}
	if g.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", g.Moves())
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := newSeededGame(42, nil)
	g.grid = Grid{{4, 2, 0, 0}}
	before := g.Snapshot()

	if _, ok := g.Move(DirLeft); ok {
		t.Error("move that changes nothing should be rejected")
	}
	if g.Snapshot() != before {
		t.Errorf("rejected move changed state:\n%+v\nvs\n%+v", g.Snapshot(), before)
	}
}

func TestInvalidDirectionIsNoOp(t *testing.T) {
	g := newSeededGame(42, nil)
	before := g.Snapshot()

	if _, ok := g.Move(Direction(17)); ok {
		t.Error("invalid direction should be rejected")
	}
	if _, ok := g.Handle(core.ActionQuit); ok {
		t.Error("non-move action should not produce an outcome")
	}
	if g.Snapshot() != before {
		t.Error("invalid commands should not change state")
	}
}

func TestGameOver(t *testing.T) {
	g := newSeededGame(42, nil)
	// One move away from a locked board: sliding right fills the last gap.
	g.grid = Grid{
		{2, 4, 8, 0},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	g.spawner = NewSpawner(&scriptedSource{floats: []float64{0.99}}, DefaultSpawnFourProb)

	if _, ok := g.Move(DirRight); !ok {
		t.Fatal("expected move to succeed")
	}
	// Row 0 becomes 2(spawned),2,4,8 which still merges.
	if g.Over() {
		t.Fatalf("board with a pair should not be over:\n%v", g.Grid())
	}

	g.grid = Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 0},
	}
	g.spawner = NewSpawner(&scriptedSource{floats: []float64{0.0}}, DefaultSpawnFourProb)
	if _, ok := g.Move(DirRight); !ok {
		t.Fatal("expected move to succeed")
	}
	// Row 3 becomes 4(spawned),8192,16384,32768: no pairs anywhere.
	if !g.Over() {
		t.Fatalf("locked board should be over:\n%v", g.Grid())
	}

	for _, dir := range Directions {
		if _, ok := g.Move(dir); ok {
			t.Errorf("move %s accepted after game over", dir)
		}
	}
}

func TestWonLatches(t *testing.T) {
	g := newSeededGame(7, nil)
	g.grid = Grid{{1024, 1024, 0, 0}}

	if _, ok := g.Move(DirLeft); !ok {
		t.Fatal("expected merge to succeed")
	}
	if !g.Won() {
		t.Fatal("creating 2048 should set Won")
	}

	// Remove the winning tile; the flag must stay.
	g.grid = Grid{{2, 0, 0, 0}}
	if _, ok := g.Move(DirRight); !ok {
		t.Fatal("expected move to succeed")
	}
	if !g.Won() {
		t.Error("Won should stay latched")
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("State = %s, want %s", g.Snapshot().State, StateWon)
	}
}

func TestCustomTarget(t *testing.T) {
	g := newSeededGame(7, nil, WithTarget(128))
	g.grid = Grid{{64, 64, 0, 0}}

	g.Move(DirLeft)
	if !g.Won() {
		t.Error("reaching a custom target should set Won")
	}
}

func TestResetKeepsLedger(t *testing.T) {
	ledger := NewScoreLedger(nil, nil)
	g := newSeededGame(5, ledger)
	g.grid = Grid{{8, 8, 0, 0}}
	g.Move(DirLeft)

	if _, ok := g.Handle(core.ActionRestart); ok {
		t.Error("restart should not return a move outcome")
	}
	if g.Score() != 0 || g.Moves() != 0 || g.Won() || g.Over() {
		t.Errorf("state after restart = %+v", g.Snapshot())
	}
	if n := countTiles(g.Grid()); n != 2 {
		t.Errorf("restart dealt %d tiles, want 2", n)
	}
	if g.BestScore() != 16 || g.TotalScore() != 16 {
		t.Errorf("ledger after restart = best %d total %d, want 16/16", g.BestScore(), g.TotalScore())
	}
}

func TestScoreForwardedToLedger(t *testing.T) {
	store := &memStore{}
	g := newSeededGame(3, NewScoreLedger(store, nil))
	g.grid = Grid{{2, 2, 4, 4}}

	g.Move(DirLeft)
	if store.ledger != (Ledger{BestScore: 12, TotalScore: 12}) {
		t.Errorf("stored ledger = %+v, want {12 12}", store.ledger)
	}

	g.grid = Grid{{2, 0, 0, 0}}
	saves := store.saves
	g.Move(DirRight)
	if store.saves != saves {
		t.Error("move without merge should not save the ledger")
	}
}

func TestConservation(t *testing.T) {
	for _, seed := range []int64{7, 36, 2024} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g := newSeededGame(seed, nil)
			rng := rand.New(rand.NewSource(seed))
			sum := g.Grid().Sum()
			gains := 0

			for i := 0; i < 2000 && !g.Over(); i++ {
				out, ok := g.Move(Directions[rng.Intn(len(Directions))])
				if !ok {
					continue
				}
				// Merges keep the grid sum; only spawns add to it
				if out.Spawn != nil {
					sum += out.Spawn.Value
				}
				gains += out.ScoreGain
				if got := g.Grid().Sum(); got != sum {
					t.Fatalf("move %d: grid sum %d, want %d", i, got, sum)
				}
			}
			if gains != g.Score() {
				t.Errorf("sum of score gains = %d, score = %d", gains, g.Score())
			}
		})
	}
}

func TestHandleDirections(t *testing.T) {
	tests := []struct {
		action core.Action
		grid   Grid
	}{
		{core.ActionLeft, Grid{{0, 0, 0, 2}}},
		{core.ActionRight, Grid{{2, 0, 0, 0}}},
		{core.ActionUp, Grid{{}, {}, {}, {2, 0, 0, 0}}},
		{core.ActionDown, Grid{{2, 0, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			g := newSeededGame(1, nil)
			g.grid = tt.grid
			if _, ok := g.Handle(tt.action); !ok {
				t.Errorf("Handle(%s) should move the tile", tt.action)
			}
		})
	}
}

func TestMaxTile(t *testing.T) {
	g := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := g.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestEmptyCells(t *testing.T) {
	g := Grid{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := g.EmptyCells()
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Cell{Row: 0, Col: 1}) {
		t.Errorf("first empty cell = %+v, want (0,1)", cells[0])
	}
}

func TestSnapshotStates(t *testing.T) {
	g := newSeededGame(42, nil)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", g.Snapshot().State)
	}

	g.won, g.over = true, true
	if g.Snapshot().State != StateWonOver {
		t.Errorf("Snapshot State = %s, want won_over", g.Snapshot().State)
	}

	g.won = false
	if g.Snapshot().State != StateOver {
		t.Errorf("Snapshot State = %s, want over", g.Snapshot().State)
	}
}
