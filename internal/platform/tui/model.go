package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// HistoryRecorder stores finished games. Backends without a history
// simply don't implement it.
type HistoryRecorder interface {
	RecordGame(snap t2048.Snapshot) (string, error)
}

// Options configures the game screen.
type Options struct {
	Runtime    core.RuntimeConfig
	Animations bool
	Ledger     *t2048.ScoreLedger // shown on the scores screen
	History    HistoryRecorder    // may be nil
	Scores     ScoreSource        // may be nil
	Logger     *log.Logger        // may be nil
}

// Model is the Bubble Tea model for playing a game.
type Model struct {
	game     *t2048.Game
	anim     *t2048.Animator
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	scores   *ScoreboardModel // non-nil while the scores screen is open
	ticking  bool
	showWin  bool
	winSeen  bool
	lastGain int
	gainSeq  int // identifies the latest gain for expiry
	recorded bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *t2048.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	defaults := core.DefaultConfig()
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = defaults.ScreenW, defaults.ScreenH
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = defaults.TickRate
	}
	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH

	return Model{
		game:   game,
		anim:   &t2048.Animator{},
		screen: core.NewScreen(w, h-1),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
		logger: logger,
	}
}

// Init initializes the model. Ticks only run while something animates.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case gainExpiredMsg:
		if msg.seq == m.gainSeq {
			m.lastGain = 0
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
	}

	updated, cmd := m.scores.Update(msg)
	sb := updated.(ScoreboardModel)
	switch {
	case sb.IsQuitting():
		m.finishGame("quit")
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}
	m.scores = &sb
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// The win overlay holds the board until the player keeps going.
	if m.showWin && key.Matches(msg, m.keys.KeepGoing) {
		m.showWin = false
		return m, nil
	}

	return m.dispatch(m.keys.Action(msg))
}

// handleMouse maps a left click on an on-screen button to its action.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	action, ok := t2048.ButtonAt(m.screen.Width(), m.screen.Height(), m.view(), msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	return m.dispatch(action)
}

// dispatch runs an action coming from any input device.
func (m Model) dispatch(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.finishGame("quit")
		m.quitting = true
		return m, tea.Quit

	case core.ActionScores:
		sb := NewScoreboardModel(m.opts.Ledger, m.opts.Scores, m.screen.Width(), m.screen.Height()+1)
		sb.embedded = true
		m.scores = &sb
		return m, nil

	case core.ActionRestart:
		m.finishGame("restart")
		m.game.Handle(action)
		m.anim.Stop()
		m.showWin, m.winSeen, m.recorded = false, false, false
		m.lastGain = 0
		m.logger.Debug("new game")
		return m, nil
	}

	if !action.IsDirection() || m.showWin {
		return m, nil
	}
	return m.applyMove(action)
}

// applyMove forwards a direction to the game and starts its animation.
func (m Model) applyMove(action core.Action) (tea.Model, tea.Cmd) {
	out, ok := m.game.Handle(action)
	if !ok {
		return m, nil
	}

	var cmds []tea.Cmd
	if out.ScoreGain > 0 {
		m.lastGain = out.ScoreGain
		m.gainSeq++
		cmds = append(cmds, gainExpiryCmd(m.gainSeq))
	}

	if m.game.Won() && !m.winSeen {
		m.winSeen = true
		m.showWin = true
		m.logger.Info("target reached", "target", m.game.Target(), "score", m.game.Score(), "moves", m.game.Moves())
	}
	if m.game.Over() {
		m.logger.Info("game over", "score", m.game.Score(), "max_tile", m.game.MaxTile())
		m.finishGame("over")
	}

	if m.opts.Animations {
		m.anim.Start(out)
		if !m.ticking && m.anim.Active() {
			m.ticking = true
			cmds = append(cmds, tickCmd(m.opts.Runtime.TickRate))
		}
	}
	return m, tea.Batch(cmds...)
}

// finishGame records the current game in the history once.
// Games without a single accepted move are not worth keeping.
func (m *Model) finishGame(reason string) {
	if m.recorded || m.game.Moves() == 0 {
		return
	}
	m.recorded = true
	if m.opts.History == nil {
		return
	}

	id, err := m.opts.History.RecordGame(m.game.Snapshot())
	if err != nil {
		m.logger.Warn("cannot record game", "err", err)
		return
	}
	m.logger.Debug("game recorded", "id", id, "reason", reason, "score", m.game.Score())
}

// handleResize processes window resize events. The board is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the animation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.anim.Step() {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}
	m.ticking = false
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.screen.Clear()
	t2048.Render(m.screen, m.view())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// view collects what the renderer needs for the current frame.
func (m Model) view() t2048.View {
	return t2048.View{
		Snapshot: m.game.Snapshot(),
		Anim:     m.anim,
		ShowWin:  m.showWin,
		LastGain: m.lastGain,
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Run starts the Bubble Tea program for the given game.
func Run(game *t2048.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
