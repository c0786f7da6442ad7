package t2048

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// ErrLedgerNotFound is returned by a LedgerStore that holds no history yet.
var ErrLedgerNotFound = errors.New("ledger: no stored scores")

// Ledger holds the score aggregates kept across sessions.
type Ledger struct {
	BestScore  int `json:"best_score" yaml:"best_score"`
	TotalScore int `json:"total_score" yaml:"total_score"`
}

// Valid reports whether both fields are non-negative.
func (l Ledger) Valid() bool {
	return l.BestScore >= 0 && l.TotalScore >= 0
}

// LedgerStore loads and saves a Ledger.
type LedgerStore interface {
	Load() (Ledger, error)
	Save(Ledger) error
}

// ScoreLedger tracks best and cumulative score and persists them through
// a LedgerStore. Persistence failures never reach the caller.
type ScoreLedger struct {
	store  LedgerStore
	logger *log.Logger
	ledger Ledger
}

// NewScoreLedger loads the ledger from store. A nil store keeps the ledger
// in memory only; any load failure starts from zero.
func NewScoreLedger(store LedgerStore, logger *log.Logger) *ScoreLedger {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := &ScoreLedger{store: store, logger: logger}
	if store == nil {
		return l
	}

	loaded, err := store.Load()
	switch {
	case errors.Is(err, ErrLedgerNotFound):
		logger.Debug("no score history, starting fresh")
	case err != nil:
		logger.Warn("could not load score history", "error", err)
	case !loaded.Valid():
		logger.Warn("ignoring malformed score history", "best", loaded.BestScore, "total", loaded.TotalScore)
	default:
		l.ledger = loaded
	}

	return l
}

// RecordGain adds gain to the total and raises the best score to
// sessionScore if it is higher. sessionScore already includes gain.
// Returns false and does nothing when gain is not positive.
func (l *ScoreLedger) RecordGain(sessionScore, gain int) bool {
	if gain <= 0 {
		return false
	}

	l.ledger.TotalScore += gain
	if sessionScore > l.ledger.BestScore {
		l.ledger.BestScore = sessionScore
	}

	l.persist()
	return true
}

// Reset zeroes both aggregates and persists the result.
func (l *ScoreLedger) Reset() {
	l.ledger = Ledger{}
	l.persist()
}

func (l *ScoreLedger) persist() {
	if l.store == nil {
		return
	}
	if err := l.store.Save(l.ledger); err != nil {
		l.logger.Warn("could not save score history", "error", err)
	}
}

// Best returns the best in-session score ever observed.
func (l *ScoreLedger) Best() int {
	return l.ledger.BestScore
}

// Total returns the cumulative score across all sessions.
func (l *ScoreLedger) Total() int {
	return l.ledger.TotalScore
}

// Ledger returns a copy of the current aggregates.
func (l *ScoreLedger) Ledger() Ledger {
	return l.ledger
}
