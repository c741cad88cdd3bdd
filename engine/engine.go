// Package engine implements iterative-deepening alpha-beta search over
// the position representation in the common package, using the
// evaluator in eval.
package engine

import (
	"time"

	c "github.com/ChizhovVadim/gochess/common"
)

const maxHistoryPlies = 4096

const (
	repHistoryWindow  = 128 // covers any halfmove-clock window (<=101 plies)
	repHistoryScratch = 128 // room for one search's recursion depth
)

// Engine bundles all search-scoped state: transposition table, move
// ordering tables, node counter, and the current game's history. A
// single Engine value is meant to be driven by one goroutine at a time.
type Engine struct {
	tt      *transTable
	history historyTable
	killers killerTable

	nodes    int64
	deadline time.Time
	stopped  bool

	// repHistory holds the tail of gameHistory (enough to cover any
	// legal repetition/fifty-move window, which never exceeds 101 plies)
	// followed by scratch slots for the current search's recursion depth.
	repHistory [repHistoryWindow + repHistoryScratch]uint64

	gameHistory []uint64
	gamePly     int

	// Progress, if set, is called once per completed depth during
	// SearchBestMove.
	Progress func(SearchInfo)
}

// SearchInfo reports one completed iterative-deepening depth.
type SearchInfo struct {
	Depth int
	Score int
	Nodes int64
	Time  time.Duration
	Move  c.Move
}

// NewEngine allocates the transposition table and prepares an Engine
// ready for StartNewGame + SearchBestMove.
func NewEngine() *Engine {
	return &Engine{
		tt:          newTransTable(),
		gameHistory: make([]uint64, 0, 256),
	}
}

// StartNewGame resets game history to a single entry for pos's current
// key and clears the transposition table (a fresh game shares nothing
// with whatever position sequence came before it).
func (e *Engine) StartNewGame(pos *c.Position) {
	e.tt.clear()
	e.gameHistory = e.gameHistory[:0]
	e.gameHistory = append(e.gameHistory, pos.Key)
	e.gamePly = 1
}

// ApplyGameMove makes m on pos and appends the resulting key to the
// game history, up to the fixed capacity; further appends beyond that
// are silently dropped.
func (e *Engine) ApplyGameMove(pos *c.Position, m c.Move) {
	pos.MakeMove(m)
	if len(e.gameHistory) < maxHistoryPlies {
		e.gameHistory = append(e.gameHistory, pos.Key)
	}
	e.gamePly++
}

// RepetitionCountGame counts occurrences of pos.Key within the last
// halfmove+1 entries of the game history.
func (e *Engine) RepetitionCountGame(pos *c.Position) int {
	var n = len(e.gameHistory)
	var window = pos.Halfmove + 1
	if window > n {
		window = n
	}
	var count = 0
	for i := n - window; i < n; i++ {
		if e.gameHistory[i] == pos.Key {
			count++
		}
	}
	return count
}
