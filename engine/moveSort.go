package engine

import (
	c "github.com/ChizhovVadim/gochess/common"
	"github.com/ChizhovVadim/gochess/eval"
)

type orderedMove struct {
	move c.Move
	key  int
}

// scoreMoves assigns each move an ordering key: tt move first, then
// captures by MVV-LVA, then castles, then killers, then history.
func (e *Engine) scoreMoves(ml []c.Move, pos *c.Position, ttMove c.Move, ply int) []orderedMove {
	var killer0, killer1 = e.killers.probe(ply)
	var scored = make([]orderedMove, len(ml))
	for i, m := range ml {
		scored[i] = orderedMove{move: m, key: e.scoreMove(pos, m, ttMove, killer0, killer1)}
	}
	return scored
}

func (e *Engine) scoreMove(pos *c.Position, m, ttMove, killer0, killer1 c.Move) int {
	switch {
	case m == ttMove:
		return 100000000
	case m.IsCapture():
		var victim = capturedKind(pos, m)
		var attacker = c.PieceKind(pos.WhatPiece(m.From()))
		var score = 1000000 + mvvlva(victim, attacker)
		if m.IsPromotion() {
			score += 5000
		}
		return score
	case m.IsCastle():
		return 20000
	case m == killer0:
		return 9000
	case m == killer1:
		return 8000
	default:
		return e.history.score(pos.WhiteMove, m)
	}
}

func capturedKind(pos *c.Position, m c.Move) int {
	if m.IsEnPassant() {
		return c.Pawn
	}
	return c.PieceKind(pos.WhatPiece(m.To()))
}

func mvvlva(victim, attacker int) int {
	return 10*eval.PieceValue[victim] - eval.PieceValue[attacker]
}

// sortMoves is an insertion sort, descending by key; moves with equal
// keys keep their generation order.
func sortMoves(moves []orderedMove) {
	for i := 1; i < len(moves); i++ {
		var j, t = i, moves[i]
		for ; j > 0 && moves[j-1].key < t.key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
