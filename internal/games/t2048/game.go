package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// WinTile is the default tile value that wins the game.
const WinTile = 2048

// Game owns the grid, session score and terminal flags and runs one turn
// per command. It is not safe for concurrent use.
type Game struct {
	spawner *Spawner
	ledger  *ScoreLedger
	target  int

	grid      Grid
	score     int
	moves     int
	won       bool
	over      bool
	lastSpawn *Spawn
}

// Option configures a Game.
type Option func(*Game)

// WithTarget sets the tile value that latches the win flag.
func WithTarget(target int) Option {
	return func(g *Game) {
		if target > 0 {
			g.target = target
		}
	}
}

// New creates a game and deals the first two tiles.
// A nil spawner draws from a time-seeded source with the default
// 4-chance. A nil ledger keeps aggregates in memory only.
func New(spawner *Spawner, ledger *ScoreLedger, opts ...Option) *Game {
	if spawner == nil {
		spawner = NewSpawner(rand.New(rand.NewSource(time.Now().UnixNano())), DefaultSpawnFourProb)
	}
	if ledger == nil {
		ledger = NewScoreLedger(nil, nil)
	}

	g := &Game{
		spawner: spawner,
		ledger:  ledger,
		target:  WinTile,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Reset()
	return g
}

// Reset starts a new session. Ledger aggregates are kept.
func (g *Game) Reset() {
	g.grid = Grid{}
	g.score = 0
	g.moves = 0
	g.won = false
	g.over = false
	g.lastSpawn = nil

	// Spawn initial tiles (2 tiles)
	g.spawnTile()
	g.spawnTile()
}

// spawnTile spawns a new tile and records it as the last spawn.
func (g *Game) spawnTile() *Spawn {
	spawn, ok := g.spawner.Spawn(&g.grid)
	if !ok {
		return nil
	}
	g.lastSpawn = &spawn
	return g.lastSpawn
}

// Handle applies an input action. Direction actions return the move
// outcome; restart resets the game. Anything else is a no-op.
func (g *Game) Handle(a core.Action) (MoveOutcome, bool) {
	switch a {
	case core.ActionUp:
		return g.Move(DirUp)
	case core.ActionDown:
		return g.Move(DirDown)
	case core.ActionLeft:
		return g.Move(DirLeft)
	case core.ActionRight:
		return g.Move(DirRight)
	case core.ActionRestart:
		g.Reset()
	}
	return MoveOutcome{}, false
}

// Move runs one turn in dir. It returns false, leaving the game untouched,
// when dir is invalid, the game is over, or nothing would move.
func (g *Game) Move(dir Direction) (MoveOutcome, bool) {
	if g.over {
		return MoveOutcome{}, false
	}

	out, ok := Slide(g.grid, dir)
	if !ok || !out.Moved {
		return MoveOutcome{}, false
	}

	g.grid = out.Grid
	g.score += out.ScoreGain
	g.moves++
	g.ledger.RecordGain(g.score, out.ScoreGain)

	if g.grid.Reached(g.target) {
		g.won = true
	}

	if g.spawnTile() != nil {
		out.Spawn = g.LastSpawn()
	}
	out.Grid = g.grid

	g.over = !g.grid.CanMove()

	return out, true
}

// Grid returns a copy of the current grid.
func (g *Game) Grid() Grid {
	return g.grid
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.score
}

// BestScore returns the best session score ever recorded.
func (g *Game) BestScore() int {
	return g.ledger.Best()
}

// TotalScore returns the score accumulated across all sessions.
func (g *Game) TotalScore() int {
	return g.ledger.Total()
}

// Moves returns the number of accepted moves this session.
func (g *Game) Moves() int {
	return g.moves
}

// Won reports whether the target tile has appeared this session.
func (g *Game) Won() bool {
	return g.won
}

// Over reports whether no direction can change the grid.
func (g *Game) Over() bool {
	return g.over
}

// Target returns the winning tile value.
func (g *Game) Target() int {
	return g.target
}

// LastSpawn returns the most recent spawn, or nil.
func (g *Game) LastSpawn() *Spawn {
	if g.lastSpawn == nil {
		return nil
	}
	s := *g.lastSpawn
	return &s
}

// MaxTile returns the highest tile on the grid.
func (g *Game) MaxTile() int {
	return g.grid.MaxTile()
}
