package engine

import (
	"time"

	c "github.com/ChizhovVadim/gochess/common"
	"github.com/ChizhovVadim/gochess/eval"
)

const (
	valMate      = c.Mate
	futilityMargin = 150
)

// repetitionCount counts occurrences of key within the last window entries
// of e.repHistory ending at index.
func (e *Engine) repetitionCount(index int, key uint64, window int) int {
	var count = 0
	var start = index - window + 1
	if start < 0 {
		start = 0
	}
	for i := start; i <= index; i++ {
		if e.repHistory[i] == key {
			count++
		}
	}
	return count
}

func (e *Engine) isDraw(pos *c.Position, basePly, ply int) bool {
	if pos.Halfmove >= 100 {
		return true
	}
	var index = basePly + ply
	var window = pos.Halfmove + 1
	if window > index+1 {
		window = index + 1
	}
	return e.repetitionCount(index, pos.Key, window) >= 3
}

func (e *Engine) timeUp() bool {
	if e.stopped {
		return true
	}
	if e.nodes&1023 == 0 && !e.deadline.IsZero() {
		if time.Now().After(e.deadline) {
			e.stopped = true
		}
	}
	return e.stopped
}

// quiescence evaluates stand-pat, then walks captures only (including
// capture-promotions); it does not consider quiet promotions or
// non-capture checking moves.
func (e *Engine) quiescence(pos *c.Position, alpha, beta, basePly, ply int) int {
	e.nodes++
	if e.timeUp() {
		return 0
	}

	var index = basePly + ply
	if index < len(e.repHistory) {
		e.repHistory[index] = pos.Key
	}
	if e.isDraw(pos, basePly, ply) {
		return 0
	}

	var standPat = eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var buf [c.MaxMoves]c.Move
	var moves = c.GenerateMoves(buf[:0], pos, c.ModeCaptures)
	var scored = make([]orderedMove, len(moves))
	for i, m := range moves {
		scored[i] = orderedMove{move: m, key: mvvlva(capturedKind(pos, m), c.PieceKind(pos.WhatPiece(m.From())))}
	}
	sortMoves(scored)

	for _, om := range scored {
		var m = om.move
		var undo = pos.MakeMove(m)
		if pos.IsAttacked(firstOneOfOwnKing(pos, !pos.WhiteMove), pos.WhiteMove) {
			pos.UnmakeMove(undo)
			continue
		}
		var score = -e.quiescence(pos, -beta, -alpha, basePly, ply+1)
		pos.UnmakeMove(undo)

		if e.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

func firstOneOfOwnKing(pos *c.Position, side bool) int {
	return c.FirstOne(pos.BB[colorSideIndex(side)][c.King])
}

func colorSideIndex(side bool) int {
	if side {
		return c.White
	}
	return c.Black
}

// alphaBeta is negamax alpha-beta with null-move pruning, late-move
// reduction, futility pruning, and transposition table cutoffs.
func (e *Engine) alphaBeta(pos *c.Position, depth, alpha, beta, basePly, ply int) int {
	e.nodes++
	if e.timeUp() {
		return 0
	}

	var index = basePly + ply
	if index < len(e.repHistory) {
		e.repHistory[index] = pos.Key
	}
	if ply > 0 && e.isDraw(pos, basePly, ply) {
		return 0
	}

	if depth <= 0 {
		return e.quiescence(pos, alpha, beta, basePly, ply)
	}

	var alphaOrig = alpha
	var ttMove c.Move
	if entry, ok := e.tt.probe(pos.Key); ok {
		ttMove = entry.move
		if int(entry.depth) >= depth {
			var score = int(entry.score)
			switch entry.bound {
			case boundExact:
				return score
			case boundLower:
				if score >= beta {
					return beta
				}
			case boundUpper:
				if score <= alpha {
					return alpha
				}
			}
		}
	}

	var inCheck = pos.IsCheck()
	var staticEval int
	var futilityOK = false

	if depth == 1 && !inCheck {
		staticEval = eval.Evaluate(pos)
		if staticEval >= beta {
			return staticEval
		}
		futilityOK = true
	}

	if depth >= 3 && !inCheck && hasNonPawnMaterial(pos) {
		var r = 2
		if depth > 5 {
			r = 3
		}
		var undo = pos.MakeNullMove()
		var score = -e.alphaBeta(pos, depth-1-r, -beta, -beta+1, basePly, ply+1)
		pos.UnmakeNullMove(undo)
		if e.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	var buf [c.MaxMoves]c.Move
	var moves = c.GenerateMoves(buf[:0], pos, c.ModeAll)
	var scored = e.scoreMoves(moves, pos, ttMove, ply)
	sortMoves(scored)

	var bestScore = -valMate - 1
	var bestMove c.Move
	var legalMoves = 0
	var quietsSearched = 0

	for i, om := range scored {
		var m = om.move

		var undo = pos.MakeMove(m)
		if pos.IsAttacked(firstOneOfOwnKing(pos, !pos.WhiteMove), pos.WhiteMove) {
			pos.UnmakeMove(undo)
			continue
		}
		legalMoves++

		var isQuiet = !m.IsCapture() && !m.IsPromotion()

		if futilityOK && isQuiet && !m.IsCastle() && !pos.IsCheck() &&
			staticEval+futilityMargin <= alphaOrig {
			pos.UnmakeMove(undo)
			continue
		}

		if isQuiet {
			quietsSearched++
		}

		var score int
		if isQuiet && quietsSearched > 4 && depth >= 3 && !inCheck && !pos.IsCheck() {
			var r = 1
			if depth > 5 && i > 7 {
				r = 2
			}
			score = -e.alphaBeta(pos, depth-1-r, -beta, -alpha, basePly, ply+1)
			if score > alpha {
				score = -e.alphaBeta(pos, depth-1, -beta, -alpha, basePly, ply+1)
			}
		} else {
			score = -e.alphaBeta(pos, depth-1, -beta, -alpha, basePly, ply+1)
		}

		pos.UnmakeMove(undo)

		if e.stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if isQuiet && !m.IsCastle() {
				e.killers.add(ply, m)
				e.history.add(pos.WhiteMove, m, depth)
			}
			break
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -valMate + ply
		}
		return 0
	}

	var bound int
	switch {
	case bestScore <= alphaOrig:
		bound = boundUpper
	case bestScore >= beta:
		bound = boundLower
	default:
		bound = boundExact
	}
	e.tt.store(pos.Key, depth, bestScore, bound, bestMove)

	return bestScore
}

func hasNonPawnMaterial(pos *c.Position) bool {
	var side = colorSideIndex(pos.WhiteMove)
	return pos.BB[side][c.Knight] != 0 || pos.BB[side][c.Bishop] != 0 ||
		pos.BB[side][c.Rook] != 0 || pos.BB[side][c.Queen] != 0
}
