package t2048

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestButtonsDrawnWhereClickable(t *testing.T) {
	tests := []struct {
		name    string
		view    View
		actions []core.Action
	}{
		{"playing", View{}, []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionRestart, core.ActionQuit}},
		{"over", View{Snapshot: Snapshot{Over: true}}, []core.Action{core.ActionRestart, core.ActionQuit}},
		{"won", View{Snapshot: Snapshot{Won: true, Target: 2048}, ShowWin: true}, []core.Action{core.ActionRestart, core.ActionQuit}},
		{"won dismissed", View{Snapshot: Snapshot{Won: true, Target: 2048}}, []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionRestart, core.ActionQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := core.NewScreen(80, 23)
			Render(screen, tt.view)

			buttons := Buttons(screen.Width(), screen.Height(), tt.view)
			if len(buttons) != len(tt.actions) {
				t.Fatalf("got %d buttons, want %d", len(buttons), len(tt.actions))
			}
			for i, b := range buttons {
				if b.Action != tt.actions[i] {
					t.Errorf("button %d action = %v, want %v", i, b.Action, tt.actions[i])
				}
				row := []rune(screen.Row(b.Rect.Y))
				if got := string(row[b.Rect.X:b.Rect.Right()]); got != b.Label {
					t.Errorf("screen shows %q at %q's area:\n%s", got, b.Label, screen.String())
				}
				if i > 0 && buttons[i-1].Rect.Right() >= b.Rect.X {
					t.Errorf("buttons %q and %q touch", buttons[i-1].Label, b.Label)
				}

				action, ok := ButtonAt(screen.Width(), screen.Height(), tt.view, b.Rect.Right()-1, b.Rect.Y)
				if !ok || action != b.Action {
					t.Errorf("ButtonAt on %q = %v, %v", b.Label, action, ok)
				}
			}
		})
	}
}

func TestButtonAtMisses(t *testing.T) {
	if _, ok := ButtonAt(80, 23, View{}, 0, 0); ok {
		t.Error("corner of the screen should not hit a button")
	}
	if got := Buttons(20, 5, View{}); got != nil {
		t.Errorf("too small screen has buttons: %+v", got)
	}
}
