package engine

import (
	"time"

	c "github.com/ChizhovVadim/gochess/common"
)

const maxSearchDepth = 64

// SearchBestMove runs iterative deepening from depth 1 up to maxDepth,
// capped at maxSearchDepth (0 or less means maxSearchDepth), stopping once timeMs has
// elapsed. It returns the best move from the last depth that completed
// before the deadline; an interrupted depth's partial result is
// discarded entirely.
func (e *Engine) SearchBestMove(pos *c.Position, timeMs int, maxDepth int) (c.Move, int, int64) {
	e.nodes = 0
	e.stopped = false
	e.history.clear()
	e.killers.clear()
	e.tt.PrepareNewSearch()

	if timeMs > 0 {
		e.deadline = time.Now().Add(time.Duration(timeMs) * time.Millisecond)
	} else {
		e.deadline = time.Time{}
	}

	if maxDepth <= 0 {
		maxDepth = maxSearchDepth
	}
	maxDepth = c.Min(maxDepth, maxSearchDepth)

	var histLen = len(e.gameHistory)
	var tailStart = 0
	if histLen > repHistoryWindow {
		tailStart = histLen - repHistoryWindow
	}
	var tail = e.gameHistory[tailStart:]
	copy(e.repHistory[:], tail)
	var basePly = len(tail) - 1
	if basePly < 0 {
		basePly = 0
	}

	var buf [c.MaxMoves]c.Move
	var rootMoves = legalMovesOf(pos, buf[:0])
	if len(rootMoves) == 0 {
		return c.MoveEmpty, 0, 0
	}

	var bestMove = rootMoves[0]
	var bestScore int
	var started = time.Now()

	for depth := 1; depth <= maxDepth; depth++ {
		var ttMove c.Move
		if entry, ok := e.tt.probe(pos.Key); ok {
			ttMove = entry.move
		}
		var scored = e.scoreMoves(rootMoves, pos, ttMove, 0)
		sortMoves(scored)

		var depthBest = c.MoveEmpty
		var depthScore = -valMate - 1
		var alpha, beta = -valMate - 1, valMate + 1

		for _, om := range scored {
			var m = om.move
			var undo = pos.MakeMove(m)
			var score = -e.alphaBeta(pos, depth-1, -beta, -alpha, basePly, 1)
			pos.UnmakeMove(undo)

			if e.stopped {
				break
			}
			if score > depthScore {
				depthScore = score
				depthBest = m
			}
			if score > alpha {
				alpha = score
			}
		}

		if e.stopped || depthBest == c.MoveEmpty {
			break
		}

		bestMove = depthBest
		bestScore = depthScore
		e.tt.store(pos.Key, depth, bestScore, boundExact, bestMove)

		if e.Progress != nil {
			e.Progress(SearchInfo{
				Depth: depth,
				Score: bestScore,
				Nodes: e.nodes,
				Time:  time.Since(started),
				Move:  bestMove,
			})
		}

		if bestScore >= valMate-c.MaxPly || bestScore <= -valMate+c.MaxPly {
			break
		}
	}

	return bestMove, bestScore, e.nodes
}

func legalMovesOf(pos *c.Position, buf []c.Move) []c.Move {
	var pseudo = c.GenerateMoves(buf, pos, c.ModeAll)
	var result = pseudo[:0]
	for _, m := range pseudo {
		if pos.IsLegal(m) {
			result = append(result, m)
		}
	}
	return result
}

// PrepareNewSearch resets whatever per-search bookkeeping the transposition
// table needs between calls. The depth-preferred replacement policy here
// needs none; the hook is kept so callers don't need to know that.
func (tt *transTable) PrepareNewSearch() {}
