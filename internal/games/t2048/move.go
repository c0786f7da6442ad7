package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the direction name.
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
		return "invalid"
	}
}

// TileMovement is one tile's displacement during a single turn.
// Value is the tile value before any merge.
type TileMovement struct {
	From   Cell
	To     Cell
	Value  int
	Merged bool
}

// Displaced reports whether the tile changed position.
func (m TileMovement) Displaced() bool {
	return m.From != m.To
}

// mirror maps a movement from the row-reversed frame back to the original.
func (m TileMovement) mirror() TileMovement {
	m.From.Col = Size - 1 - m.From.Col
	m.To.Col = Size - 1 - m.To.Col
	return m
}

// transpose maps a movement from the transposed frame back to the original.
func (m TileMovement) transpose() TileMovement {
	m.From.Row, m.From.Col = m.From.Col, m.From.Row
	m.To.Row, m.To.Col = m.To.Col, m.To.Row
	return m
}

// MoveOutcome is the result of one directional attempt.
type MoveOutcome struct {
	Grid      Grid
	ScoreGain int
	Moved     bool
	Movements []TileMovement
	Spawn     *Spawn // set by the game after a successful move
}

func (o *MoveOutcome) mapMovements(fn func(TileMovement) TileMovement) {
	for i := range o.Movements {
		o.Movements[i] = fn(o.Movements[i])
	}
}

// slideRow slides and merges a single row to the left.
// row is the row index reported in the movements.
func slideRow(line [Size]int, row int) (result [Size]int, score int, moves []TileMovement) {
	type tile struct{ value, col int }

	tiles := make([]tile, 0, Size)
	for c, v := range line {
		if v != 0 {
			tiles = append(tiles, tile{value: v, col: c})
		}
	}

	writePos := 0
	for i := 0; i < len(tiles); writePos++ {
		cur := tiles[i]
		dest := Cell{Row: row, Col: writePos}

		if i+1 < len(tiles) && tiles[i+1].value == cur.value {
			next := tiles[i+1]
			result[writePos] = cur.value * 2
			score += cur.value * 2
			moves = append(moves,
				TileMovement{From: Cell{Row: row, Col: cur.col}, To: dest, Value: cur.value, Merged: true},
				TileMovement{From: Cell{Row: row, Col: next.col}, To: dest, Value: next.value, Merged: true},
			)
			i += 2
			continue
		}

		result[writePos] = cur.value
		moves = append(moves, TileMovement{From: Cell{Row: row, Col: cur.col}, To: dest, Value: cur.value})
		i++
	}

	return result, score, moves
}

// slideLeft slides all rows left. Every other direction is expressed
// through it.
func slideLeft(g Grid) MoveOutcome {
	out := MoveOutcome{}
	for r := range Size {
		newRow, score, moves := slideRow(g[r], r)
		out.Grid[r] = newRow
		out.ScoreGain += score
		out.Movements = append(out.Movements, moves...)
		if newRow != g[r] {
			out.Moved = true
		}
	}
	return out
}

// Slide computes the outcome of moving g in dir without spawning.
// ok is false when dir is not a valid direction.
func Slide(g Grid, dir Direction) (out MoveOutcome, ok bool) {
	switch dir {
	case DirLeft:
		out = slideLeft(g)
	case DirRight:
		out = slideLeft(g.Reverse())
		out.Grid = out.Grid.Reverse()
		out.mapMovements(TileMovement.mirror)
	case DirUp:
		out = slideLeft(g.Transpose())
		out.Grid = out.Grid.Transpose()
		out.mapMovements(TileMovement.transpose)
	case DirDown:
		out = slideLeft(g.Transpose().Reverse())
		out.Grid = out.Grid.Reverse().Transpose()
		out.mapMovements(func(m TileMovement) TileMovement {
			return m.mirror().transpose()
		})
	default:
		return MoveOutcome{}, false
	}
	return out, true
}
