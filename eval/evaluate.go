package eval

import (
	c "github.com/ChizhovVadim/gochess/common"
)

// Material and phase weights, per the tapered-evaluation scheme.
var pieceValueMG = [7]int{0, 100, 320, 330, 500, 900, 0}
var pieceValueEG = [7]int{0, 100, 320, 330, 500, 900, 0}

// PieceValue is the single table used by search's MVV-LVA ordering,
// shared with the evaluator's own material term.
var PieceValue = pieceValueMG

var phaseWeight = [7]int{0, 0, 1, 1, 2, 4, 0}

const maxPhase = 24

// Evaluate returns a centipawn score of pos from the side-to-move
// perspective, computed as a tapered blend of middlegame and endgame
// accumulators built from phase-weighted material, piece-square tables,
// and pawn/king structural terms.
func Evaluate(pos *c.Position) int {
	var phase = computePhase(pos)

	var white = evaluateSide(pos, true, phase)
	var black = evaluateSide(pos, false, phase)
	var total = white - black

	var mg, eg = int(total.MG()), int(total.EG())
	var score = (mg*phase + eg*(maxPhase-phase)) / maxPhase

	if pos.WhiteMove {
		return score
	}
	return -score
}

func computePhase(pos *c.Position) int {
	var phase int
	for _, side := range [2]bool{true, false} {
		for kind := c.Knight; kind <= c.Queen; kind++ {
			phase += phaseWeight[kind] * c.PopCount(pos.BB[colorIndex(side)][kind])
		}
	}
	return c.Min(phase, maxPhase)
}

func colorIndex(side bool) int {
	if side {
		return c.White
	}
	return c.Black
}

// pawnFileCount[file] counts side's pawns on file, computed once per side
// per call.
func pawnFileCount(pos *c.Position, side bool) [8]int {
	var counts [8]int
	for bb := pos.BB[colorIndex(side)][c.Pawn]; bb != 0; bb &= bb - 1 {
		counts[c.File(c.FirstOne(bb))]++
	}
	return counts
}

func mirror(side bool, sq int) int {
	if side {
		return sq
	}
	return c.FlipSquare(sq)
}

var centralSquares = uint64(1)<<c.SquareD4 | uint64(1)<<c.SquareE4 |
	uint64(1)<<c.SquareD5 | uint64(1)<<c.SquareE5

func evaluateSide(pos *c.Position, side bool, phase int) Score {
	var result Score
	var own = colorIndex(side)
	var occ = pos.OccAll()
	var pawnFiles = pawnFileCount(pos, side)
	var oppPawnFiles = pawnFileCount(pos, !side)

	// mobilityArea excludes squares an enemy pawn attacks: a piece
	// that could be driven off by a pawn next move isn't worth as
	// much mobility credit as a genuinely safe square.
	var enemyPawns = pos.BB[colorIndex(!side)][c.Pawn]
	var mobilityArea uint64
	if side {
		mobilityArea = c.AllBlackPawnAttacks(enemyPawns)
	} else {
		mobilityArea = c.AllWhitePawnAttacks(enemyPawns)
	}

	for kind := c.Pawn; kind <= c.King; kind++ {
		for bb := pos.BB[own][kind]; bb != 0; bb &= bb - 1 {
			var sq = c.FirstOne(bb)
			result += S(int16(pieceValueMG[kind]), int16(pieceValueEG[kind]))
			result += S(int16(pstMG[kind][mirror(side, sq)]), int16(pstEG[kind][mirror(side, sq)]))

			if (c.SquareMask[sq] & centralSquares) != 0 {
				result += centralBonus(kind)
			}

			switch kind {
			case c.Knight, c.Bishop:
				if phase > 12 && onStartSquare(kind, side, sq) {
					result += S(-10, 0)
				}
				result += mobilityScore(kind, sq, occ, pos.Occ[own], mobilityArea)
				if isOutpost(pos, side, sq) {
					result += S(12, 8)
				}
			case c.Rook:
				result += mobilityScore(kind, sq, occ, pos.Occ[own], mobilityArea)
				result += rookFileBonus(pawnFiles, oppPawnFiles, c.File(sq))
			case c.Queen:
				result += mobilityScore(kind, sq, occ, pos.Occ[own], mobilityArea)
			case c.Pawn:
				result += pawnStructureScore(pos, side, sq, pawnFiles)
			case c.King:
				result += kingSafetyScore(pos, side, sq, phase)
			}
		}
	}

	if c.PopCount(pos.BB[own][c.Bishop]) >= 2 {
		result += S(15, 30)
	}

	return result
}

func centralBonus(kind int) Score {
	switch kind {
	case c.Pawn:
		return S(10, 5)
	case c.Knight, c.Bishop:
		return S(8, 5)
	case c.Queen:
		return S(4, 0)
	default:
		return S(0, 0)
	}
}

func onStartSquare(kind int, side bool, sq int) bool {
	var rank = c.Rank(sq)
	if side {
		if rank != c.Rank1 {
			return false
		}
	} else if rank != c.Rank8 {
		return false
	}
	if kind == c.Knight {
		return sq == mirror(side, c.SquareB1) || sq == mirror(side, c.SquareG1)
	}
	return sq == mirror(side, c.SquareC1) || sq == mirror(side, c.SquareF1)
}

func mobilityScore(kind, sq int, occ, own, mobilityArea uint64) Score {
	var attacks uint64
	switch kind {
	case c.Knight:
		attacks = c.KnightAttacks[sq]
	case c.Bishop:
		attacks = c.BishopAttacks(sq, occ)
	case c.Rook:
		attacks = c.RookAttacks(sq, occ)
	case c.Queen:
		attacks = c.QueenAttacks(sq, occ)
	}
	var count = c.PopCount(attacks &^ own &^ mobilityArea)
	switch kind {
	case c.Knight, c.Bishop:
		return S(int16(2*count), 0)
	case c.Queen:
		return S(int16(count), int16(count))
	default:
		return S(int16(count), 0)
	}
}

func rookFileBonus(own, opp [8]int, file int) Score {
	if own[file] == 0 && opp[file] == 0 {
		return S(15, 10)
	}
	if own[file] == 0 {
		return S(8, 5)
	}
	return S(0, 0)
}

// pawnStructureScore folds doubled/isolated/backward/passed/connected terms
// for a single pawn.
func pawnStructureScore(pos *c.Position, side bool, sq int, own [8]int) Score {
	var result Score
	var file = c.File(sq)
	var rank = c.Rank(sq)
	var ownRank = rank
	if !side {
		ownRank = 7 - rank
	}

	if own[file] > 1 {
		result += S(-10, -5)
	}

	var hasNeighbor = false
	if file > c.FileA && own[file-1] > 0 {
		hasNeighbor = true
	}
	if file < c.FileH && own[file+1] > 0 {
		hasNeighbor = true
	}
	if !hasNeighbor {
		result += S(-15, -10)
	}

	if isBackward(pos, side, sq) {
		result += S(-10, -10)
	}

	if isPassed(pos, side, sq) {
		result += S(int16(ownRank*10), int16(ownRank*20))
		if isDefendedByPawn(pos, side, sq) {
			result += S(15, 25)
		}
		if hasNeighbor {
			result += S(10, 15)
		}
	}

	return result
}

func isDefendedByPawn(pos *c.Position, side bool, sq int) bool {
	return (c.PawnAttacks(sq, !side) & pos.BB[colorIndex(side)][c.Pawn]) != 0
}

// isBackward: no friendly pawn on an adjacent file at or behind this pawn's
// rank, and an enemy pawn stands ahead of it on the same file.
func isBackward(pos *c.Position, side bool, sq int) bool {
	var file = c.File(sq)
	var rank = c.Rank(sq)
	var own = pos.BB[colorIndex(side)][c.Pawn]

	for _, f := range [2]int{file - 1, file + 1} {
		if f < c.FileA || f > c.FileH {
			continue
		}
		for bb := own & c.FileMask[f]; bb != 0; bb &= bb - 1 {
			var otherRank = c.Rank(c.FirstOne(bb))
			if side && otherRank <= rank {
				return false
			}
			if !side && otherRank >= rank {
				return false
			}
		}
	}

	for bb := pos.BB[colorIndex(!side)][c.Pawn] & c.FileMask[file]; bb != 0; bb &= bb - 1 {
		var otherRank = c.Rank(c.FirstOne(bb))
		if (side && otherRank > rank) || (!side && otherRank < rank) {
			return true
		}
	}
	return false
}

func isPassed(pos *c.Position, side bool, sq int) bool {
	var file = c.File(sq)
	var rank = c.Rank(sq)
	var enemy = pos.BB[colorIndex(!side)][c.Pawn]

	for f := file - 1; f <= file+1; f++ {
		if f < c.FileA || f > c.FileH {
			continue
		}
		for bb := enemy & c.FileMask[f]; bb != 0; bb &= bb - 1 {
			var otherRank = c.Rank(c.FirstOne(bb))
			if side && otherRank > rank {
				return false
			}
			if !side && otherRank < rank {
				return false
			}
		}
	}
	return true
}

func isOutpost(pos *c.Position, side bool, sq int) bool {
	var rank = c.Rank(sq)
	var ownRank = rank
	if !side {
		ownRank = 7 - rank
	}
	if ownRank < 3 || ownRank > 5 {
		return false
	}
	if !isDefendedByPawn(pos, side, sq) {
		return false
	}
	var file = c.File(sq)
	var enemy = pos.BB[colorIndex(!side)][c.Pawn]
	for _, f := range [2]int{file - 1, file + 1} {
		if f < c.FileA || f > c.FileH {
			continue
		}
		for bb := enemy & c.FileMask[f]; bb != 0; bb &= bb - 1 {
			var otherRank = c.Rank(c.FirstOne(bb))
			if side && otherRank > rank {
				return false
			}
			if !side && otherRank < rank {
				return false
			}
		}
	}
	return true
}

func kingSafetyScore(pos *c.Position, side bool, sq int, phase int) Score {
	var result Score

	if sq == mirror(side, c.SquareG1) || sq == mirror(side, c.SquareC1) {
		result += S(30, 0)
	}
	if phase > 12 && c.File(sq) == c.FileE {
		result += S(-30, 0)
	}

	var shield = 0
	var file = c.File(sq)
	var rank = c.Rank(sq)
	var shieldRank = rank + 1
	if !side {
		shieldRank = rank - 1
	}
	if shieldRank >= c.Rank1 && shieldRank <= c.Rank8 {
		var pawns = pos.BB[colorIndex(side)][c.Pawn]
		for f := file - 1; f <= file+1; f++ {
			if f < c.FileA || f > c.FileH {
				continue
			}
			var shieldSq = shieldRank*8 + f
			if (c.SquareMask[shieldSq] & pawns) != 0 {
				shield++
			}
		}
	}
	if shield > 0 {
		result += S(int16(8*shield), 0)
	} else if phase > 8 {
		result += S(-20, 0)
	}

	if phase < 8 {
		var ownRank = c.Rank(sq)
		if !side {
			ownRank = 7 - ownRank
		}
		result += S(0, int16((3-ownRank)*5))
	}

	return result
}
