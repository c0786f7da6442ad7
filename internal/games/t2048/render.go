package t2048

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// MinScreenW and MinScreenH are the smallest screen the board fits on.
const (
	MinScreenW = Size*cellWidth + 3
	MinScreenH = Size*cellHeight + hudHeight + 4
)

// View is everything the renderer needs for one frame.
type View struct {
	Snapshot
	Anim     *Animator // may be nil
	ShowWin  bool      // show the win overlay (until the player keeps going)
	LastGain int       // score gained by the last move, 0 to hide
}

// tilePalette is indexed by log2(value).
var tilePalette = []core.Color{
	core.ColorGray,          // 1 (unused)
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorRed,           // 32
	core.ColorBrightRed,     // 64
	core.ColorBrightYellow,  // 128
	core.ColorMagenta,       // 256
	core.ColorBrightMagenta, // 512
	core.ColorGreen,         // 1024
	core.ColorBrightGreen,   // 2048
}

// Button is a clickable label on the game screen.
type Button struct {
	Label  string
	Action core.Action
	Rect   core.Rect
}

// controlButtons are drawn in a row under the board.
var controlButtons = []struct {
	label  string
	action core.Action
}{
	{"[↑]", core.ActionUp},
	{"[↓]", core.ActionDown},
	{"[←]", core.ActionLeft},
	{"[→]", core.ActionRight},
	{"[New]", core.ActionRestart},
	{"[Quit]", core.ActionQuit},
}

// overlayButtons are drawn on the last line of an overlay.
var overlayButtons = []struct {
	label  string
	action core.Action
}{
	{"[Replay]", core.ActionRestart},
	{"[Exit]", core.ActionQuit},
}

const buttonGap = 1

// TileColor returns the color used to draw a tile value.
func TileColor(value int) core.Color {
	if value <= 0 {
		return core.ColorDefault
	}
	idx := bits.Len(uint(value)) - 1
	if idx >= len(tilePalette) {
		return core.ColorBrightCyan
	}
	return tilePalette[idx]
}

// Render draws the view to the screen.
func Render(dst *core.Screen, v View) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	board := boardRect(dst.Width())

	renderHUD(dst, v, board.X, board.W)
	renderGridLines(dst, board.X, board.Y)
	renderTiles(dst, v, board.X, board.Y)
	for _, b := range Buttons(dst.Width(), dst.Height(), v) {
		color := core.ColorGray
		if b.Action.IsDirection() {
			color = core.ColorWhite
		}
		dst.DrawTextColored(b.Rect.X, b.Rect.Y, b.Label, color)
	}
	renderOverlays(dst, v, board)

	dst.DrawTextCentered(board.Bottom()+1, Controls())
}

// boardRect returns the board area on a screen of the given width.
func boardRect(width int) core.Rect {
	w := Size*cellWidth + 1
	h := Size*cellHeight + 1
	return core.NewRect((width-w)/2, hudHeight+1, w, h)
}

// Buttons returns the clickable buttons of a frame drawn on a w x h
// screen. While an overlay is shown only its buttons are active.
func Buttons(w, h int, v View) []Button {
	if w < MinScreenW || h < MinScreenH {
		return nil
	}
	board := boardRect(w)

	if lines := overlayLines(v); lines != nil {
		box := overlayBox(board, lines)
		return buttonRow(overlayButtons, box, box.Bottom()-2)
	}
	return buttonRow(controlButtons, board, board.Bottom())
}

// ButtonAt returns the action of the button under (x, y), if any.
func ButtonAt(w, h int, v View, x, y int) (core.Action, bool) {
	for _, b := range Buttons(w, h, v) {
		if b.Rect.Contains(x, y) {
			return b.Action, true
		}
	}
	return core.ActionNone, false
}

// buttonRow lays labels out on row y, centered inside area.
func buttonRow(labels []struct {
	label  string
	action core.Action
}, area core.Rect, y int) []Button {
	total := buttonGap * (len(labels) - 1)
	for _, l := range labels {
		total += utf8.RuneCountInString(l.label)
	}

	buttons := make([]Button, 0, len(labels))
	x := area.X + (area.W-total)/2
	for _, l := range labels {
		n := utf8.RuneCountInString(l.label)
		buttons = append(buttons, Button{Label: l.label, Action: l.action, Rect: core.NewRect(x, y, n, 1)})
		x += n + buttonGap
	}
	return buttons
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score, best and total.
func renderHUD(dst *core.Screen, v View, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", v.Score)
	dst.DrawText(boardX, 1, scoreStr)
	if v.LastGain > 0 {
		dst.DrawTextColored(boardX+len(scoreStr)+1, 1, "+"+strconv.Itoa(v.LastGain), core.ColorOrange)
	}

	bestStr := fmt.Sprintf("Best: %d", v.BestScore)
	dst.DrawText(boardX+boardW-len(bestStr), 1, bestStr)

	totalStr := fmt.Sprintf("Total: %d", v.TotalScore)
	dst.DrawTextColored(boardX+boardW-len(totalStr), 2, totalStr, core.ColorGray)
	dst.DrawTextColored(boardX, 2, fmt.Sprintf("Moves: %d", v.Moves), core.ColorGray)
}

// renderGridLines draws the board borders and cell separators.
func renderGridLines(dst *core.Screen, boardX, boardY int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == Size:
				corner = '┐'
			case y == Size && x == 0:
				corner = '└'
			case y == Size && x == Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws static tiles, then the animated ones on top.
func renderTiles(dst *core.Screen, v View, boardX, boardY int) {
	animating := v.Anim != nil && v.Anim.Active()

	for r := range Size {
		for c := range Size {
			val := v.Grid[r][c]
			if val == 0 {
				continue
			}
			if animating && v.Anim.Covers(Cell{Row: r, Col: c}) {
				continue
			}
			drawTile(dst, boardX, boardY, float64(r), float64(c), val, TileColor(val))
		}
	}

	if !animating {
		return
	}
	for _, t := range v.Anim.Tiles() {
		row, col := t.Position()
		color := TileColor(t.Value)
		if t.IsNew && t.Progress < 0.5 {
			drawTile(dst, boardX, boardY, row, col, 0, core.ColorGray)
			continue
		}
		drawTile(dst, boardX, boardY, row, col, t.Value, color)
	}
}

// drawTile draws a value centered in the cell at a (possibly fractional)
// board position. A zero value draws a placeholder dot.
func drawTile(dst *core.Screen, boardX, boardY int, row, col float64, value int, color core.Color) {
	x := boardX + int(math.Round(col*cellWidth)) + 1
	y := boardY + int(math.Round(row*cellHeight)) + 1

	text := "·"
	if value > 0 {
		text = strconv.Itoa(value)
	}
	pad := max((cellWidth-1-len([]rune(text)))/2, 0)
	dst.DrawTextColored(x+pad, y, text, color)
}

// overlayLines returns the text of the overlay to show, or nil. Game over
// wins over the win message; the win message shows until the player keeps
// going. The last line is left blank for the buttons.
func overlayLines(v View) []string {
	switch {
	case v.Won && v.Over:
		return []string{"VICTORY & NO MOVES!", fmt.Sprintf("Score: %d", v.Score), "Press R to restart", ""}
	case v.Over:
		return []string{"GAME OVER", fmt.Sprintf("Max tile: %d", v.MaxTile), "Press R to restart", ""}
	case v.Won && v.ShowWin:
		return []string{fmt.Sprintf("You made %d!", v.Target), "Enter: keep going", "Press R to restart", ""}
	}
	return nil
}

// overlayBox returns the framed area for lines centered over the board.
func overlayBox(board core.Rect, lines []string) core.Rect {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}
	return board.Centered(maxLen+4, len(lines)+2)
}

// renderOverlays draws the current overlay box and its text.
func renderOverlays(dst *core.Screen, v View, board core.Rect) {
	lines := overlayLines(v)
	if lines == nil {
		return
	}

	box := overlayBox(board, lines)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
	for _, b := range buttonRow(overlayButtons, box, box.Bottom()-2) {
		dst.DrawTextColored(b.Rect.X, b.Rect.Y, b.Label, core.ColorBrightYellow)
	}
}

// Controls returns the control hints for the game.
func Controls() string {
	return "Arrows/WASD/hjkl: Move | Enter: Keep going | R: Restart | T: Scores | Q: Quit"
}
