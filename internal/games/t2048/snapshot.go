package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StateWon     GameStateType = "won"
	StateOver    GameStateType = "over"
	StateWonOver GameStateType = "won_over"
)

// Snapshot captures the complete game state for rendering and determinism testing.
type Snapshot struct {
	Grid       Grid
	Score      int
	BestScore  int
	TotalScore int
	Moves      int
	MaxTile    int
	Target     int
	Won        bool
	Over       bool
	LastSpawn  Spawn // zero Value when nothing has spawned
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won && g.over:
		state = StateWonOver
	case g.over:
		state = StateOver
	case g.won:
		state = StateWon
	}

	var spawn Spawn
	if g.lastSpawn != nil {
		spawn = *g.lastSpawn
	}

	return Snapshot{
		Grid:       g.grid,
		Score:      g.score,
		BestScore:  g.ledger.Best(),
		TotalScore: g.ledger.Total(),
		Moves:      g.moves,
		MaxTile:    g.grid.MaxTile(),
		Target:     g.target,
		Won:        g.won,
		Over:       g.over,
		LastSpawn:  spawn,
		State:      state,
	}
}
