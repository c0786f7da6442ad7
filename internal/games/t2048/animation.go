package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// Animation constants
const (
	slideAnimationTicks = 8 // ~133ms at 60fps
	popAnimationTicks   = 6 // ~100ms at 60fps
)

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// TileAnimation represents an animated tile.
type TileAnimation struct {
	Value    int
	From     Cell
	To       Cell
	Progress float64 // 0.0 → 1.0
	Merged   bool
	IsNew    bool // spawned tile, drawn with a pop
}

// Animator turns move outcomes into per-tick tile animations: a slide of
// the moved tiles followed by a pop of the spawned tile.
type Animator struct {
	phase   AnimationPhase
	ticks   int
	tiles   []TileAnimation
	pending *Spawn
}

// Start begins animating an accepted move. Stationary unmerged tiles are
// dropped so nothing is animated as a zero-length slide.
func (a *Animator) Start(out MoveOutcome) {
	a.tiles = a.tiles[:0]
	for _, m := range out.Movements {
		if !m.Displaced() && !m.Merged {
			continue
		}
		a.tiles = append(a.tiles, TileAnimation{
			Value:  m.Value,
			From:   m.From,
			To:     m.To,
			Merged: m.Merged,
		})
	}
	a.pending = out.Spawn

	if len(a.tiles) == 0 {
		a.startPop()
		return
	}
	a.phase = PhaseSlide
	a.ticks = 0
}

// startPop begins the pop of the pending spawn, if any.
func (a *Animator) startPop() {
	if a.pending == nil {
		a.Stop()
		return
	}
	s := a.pending
	a.pending = nil
	a.tiles = []TileAnimation{{
		Value: s.Value,
		From:  s.Cell,
		To:    s.Cell,
		IsNew: true,
	}}
	a.phase = PhasePop
	a.ticks = 0
}

// Step advances the animation by one tick.
// Returns true if animation is still in progress.
func (a *Animator) Step() bool {
	var duration int
	switch a.phase {
	case PhaseSlide:
		duration = slideAnimationTicks
	case PhasePop:
		duration = popAnimationTicks
	default:
		return false
	}

	a.ticks++
	progress := core.ClampF(float64(a.ticks)/float64(duration), 0, 1)
	for i := range a.tiles {
		a.tiles[i].Progress = progress
	}

	if a.ticks < duration {
		return true
	}

	if a.phase == PhaseSlide {
		a.startPop()
		return a.phase != PhaseNone
	}
	a.Stop()
	return false
}

// Stop cancels any running animation.
func (a *Animator) Stop() {
	a.phase = PhaseNone
	a.ticks = 0
	a.tiles = nil
	a.pending = nil
}

// Active reports whether an animation is running.
func (a *Animator) Active() bool {
	return a.phase != PhaseNone
}

// Phase returns the current phase.
func (a *Animator) Phase() AnimationPhase {
	return a.phase
}

// Tiles returns the tiles being animated.
func (a *Animator) Tiles() []TileAnimation {
	return a.tiles
}

// Covers reports whether c is the destination of an animated tile, so the
// static grid should not draw it yet.
func (a *Animator) Covers(c Cell) bool {
	for _, t := range a.tiles {
		if t.To == c {
			return true
		}
	}
	return false
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// Position returns the interpolated row and column of the tile.
func (t TileAnimation) Position() (row, col float64) {
	p := easeOutQuad(t.Progress)
	row = float64(t.From.Row) + (float64(t.To.Row)-float64(t.From.Row))*p
	col = float64(t.From.Col) + (float64(t.To.Col)-float64(t.From.Col))*p
	return row, col
}
