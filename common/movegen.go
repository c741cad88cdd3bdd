package common

type GenMode int

const (
	ModeAll GenMode = iota
	ModeCaptures
)

const (
	f1g1Mask = uint64(1)<<SquareF1 | uint64(1)<<SquareG1
	b1d1Mask = uint64(1)<<SquareB1 | uint64(1)<<SquareC1 | uint64(1)<<SquareD1
	f8g8Mask = uint64(1)<<SquareF8 | uint64(1)<<SquareG8
	b8d8Mask = uint64(1)<<SquareB8 | uint64(1)<<SquareC8 | uint64(1)<<SquareD8
)

func addPromotions(ml []Move, from, to int, capture bool) []Move {
	ml = append(ml, makePromotion(from, to, Queen, capture))
	ml = append(ml, makePromotion(from, to, Rook, capture))
	ml = append(ml, makePromotion(from, to, Bishop, capture))
	ml = append(ml, makePromotion(from, to, Knight, capture))
	return ml
}

// GenerateMoves appends pseudo-legal moves for p to ml and returns the
// extended slice. mode selects the full move set or the captures-only
// set used by quiescence search. When the side to move is in check, this
// dispatches to genEvasions instead of the full generator.
func GenerateMoves(ml []Move, p *Position, mode GenMode) []Move {
	var side = p.WhiteMove
	var own = p.PiecesByColor(side)
	var opp = p.PiecesByColor(!side)
	var occ = own | opp

	if p.Checkers != 0 {
		return genEvasions(ml, p, side, own, opp, occ, mode)
	}

	ml = genPawnMoves(ml, p, side, own, opp, occ, mode)
	ml = genLeaperMoves(ml, p.knightsOf(side), KnightAttacks[:], own, opp, mode)

	for fromBB := p.bishopsOf(side); fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		ml = genSliderMoves(ml, from, BishopAttacks(from, occ), own, opp, mode)
	}
	for fromBB := p.rooksOf(side); fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		ml = genSliderMoves(ml, from, RookAttacks(from, occ), own, opp, mode)
	}
	for fromBB := p.queensOf(side); fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		ml = genSliderMoves(ml, from, QueenAttacks(from, occ), own, opp, mode)
	}

	var kingSq = FirstOne(p.kingsOf(side))
	ml = genLeaperFrom(ml, kingSq, KingAttacks[kingSq], own, opp, mode)

	if mode == ModeAll {
		ml = genCastling(ml, p, side, occ)
	}

	return ml
}

// genEvasions generates moves while the side to move is in check: king
// moves always, plus (against a single checker) moves for other pieces
// that capture the checker or block the ray between it and the king. On
// a double check only king moves are legal, so nothing else is generated.
func genEvasions(ml []Move, p *Position, side bool, own, opp, occ uint64, mode GenMode) []Move {
	var kingSq = FirstOne(p.kingsOf(side))
	ml = genLeaperFrom(ml, kingSq, KingAttacks[kingSq], own, opp, mode)

	if MoreThanOne(p.Checkers) {
		return ml
	}

	var checkerSq = FirstOne(p.Checkers)
	var blockMask = betweenMask[kingSq][checkerSq] | SquareMask[checkerSq]

	var epCaptureSq = SquareNone
	if p.EpSquare != SquareNone {
		var capturedSq = p.EpSquare - 8
		if !side {
			capturedSq = p.EpSquare + 8
		}
		if capturedSq == checkerSq {
			epCaptureSq = p.EpSquare
		}
	}

	var buf [MaxMoves]Move
	var pseudo = buf[:0]
	pseudo = genPawnMoves(pseudo, p, side, own, opp, occ, mode)
	pseudo = genLeaperMoves(pseudo, p.knightsOf(side), KnightAttacks[:], own, opp, mode)
	for fromBB := p.bishopsOf(side); fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		pseudo = genSliderMoves(pseudo, from, BishopAttacks(from, occ), own, opp, mode)
	}
	for fromBB := p.rooksOf(side); fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		pseudo = genSliderMoves(pseudo, from, RookAttacks(from, occ), own, opp, mode)
	}
	for fromBB := p.queensOf(side); fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		pseudo = genSliderMoves(pseudo, from, QueenAttacks(from, occ), own, opp, mode)
	}

	for _, m := range pseudo {
		if (SquareMask[m.To()]&blockMask) != 0 || (m.IsEnPassant() && m.To() == epCaptureSq) {
			ml = append(ml, m)
		}
	}

	return ml
}

func genLeaperMoves(ml []Move, fromBB uint64, attacks []uint64, own, opp uint64, mode GenMode) []Move {
	for ; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		ml = genLeaperFrom(ml, from, attacks[from], own, opp, mode)
	}
	return ml
}

func genLeaperFrom(ml []Move, from int, attacks uint64, own, opp uint64, mode GenMode) []Move {
	var target = attacks &^ own
	if mode == ModeCaptures {
		target = attacks & opp
	}
	for toBB := target; toBB != 0; toBB &= toBB - 1 {
		var to = FirstOne(toBB)
		if (SquareMask[to] & opp) != 0 {
			ml = append(ml, makeCapture(from, to))
		} else {
			ml = append(ml, makeMove(from, to))
		}
	}
	return ml
}

func genSliderMoves(ml []Move, from int, attacks uint64, own, opp uint64, mode GenMode) []Move {
	return genLeaperFrom(ml, from, attacks, own, opp, mode)
}

func genPawnMoves(ml []Move, p *Position, side bool, own, opp, occ uint64, mode GenMode) []Move {
	var pawns = p.pawnsOf(side)

	if p.EpSquare != SquareNone {
		for fromBB := PawnAttacks(p.EpSquare, !side) & pawns; fromBB != 0; fromBB &= fromBB - 1 {
			ml = append(ml, makeEnPassant(FirstOne(fromBB), p.EpSquare))
		}
	}

	var forward, startRank, promoRank int
	if side {
		forward, startRank, promoRank = 8, Rank2, Rank7
	} else {
		forward, startRank, promoRank = -8, Rank7, Rank2
	}

	for fromBB := pawns; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		var to1 = from + forward

		if Rank(from) == promoRank {
			if mode == ModeAll {
				if (SquareMask[to1] & occ) == 0 {
					ml = addPromotions(ml, from, to1, false)
				}
			}
			if File(from) > FileA {
				var capSq = to1 - 1
				if (SquareMask[capSq] & opp) != 0 {
					ml = addPromotions(ml, from, capSq, true)
				}
			}
			if File(from) < FileH {
				var capSq = to1 + 1
				if (SquareMask[capSq] & opp) != 0 {
					ml = addPromotions(ml, from, capSq, true)
				}
			}
			continue
		}

		if mode == ModeAll {
			if (SquareMask[to1] & occ) == 0 {
				ml = append(ml, makeMove(from, to1))
				if Rank(from) == startRank {
					var to2 = to1 + forward
					if (SquareMask[to2] & occ) == 0 {
						ml = append(ml, makeMove(from, to2))
					}
				}
			}
		}

		if File(from) > FileA {
			var capSq = to1 - 1
			if (SquareMask[capSq] & opp) != 0 {
				ml = append(ml, makeCapture(from, capSq))
			}
		}
		if File(from) < FileH {
			var capSq = to1 + 1
			if (SquareMask[capSq] & opp) != 0 {
				ml = append(ml, makeCapture(from, capSq))
			}
		}
	}

	return ml
}

func genCastling(ml []Move, p *Position, side bool, occ uint64) []Move {
	if side {
		if p.Castling&WhiteKingSide != 0 &&
			(occ&f1g1Mask) == 0 &&
			!p.isAttackedBySide(SquareE1, false) &&
			!p.isAttackedBySide(SquareF1, false) &&
			!p.isAttackedBySide(SquareG1, false) {
			ml = append(ml, makeKingCastle(SquareE1, SquareG1))
		}
		if p.Castling&WhiteQueenSide != 0 &&
			(occ&b1d1Mask) == 0 &&
			!p.isAttackedBySide(SquareE1, false) &&
			!p.isAttackedBySide(SquareD1, false) &&
			!p.isAttackedBySide(SquareC1, false) {
			ml = append(ml, makeQueenCastle(SquareE1, SquareC1))
		}
	} else {
		if p.Castling&BlackKingSide != 0 &&
			(occ&f8g8Mask) == 0 &&
			!p.isAttackedBySide(SquareE8, true) &&
			!p.isAttackedBySide(SquareF8, true) &&
			!p.isAttackedBySide(SquareG8, true) {
			ml = append(ml, makeKingCastle(SquareE8, SquareG8))
		}
		if p.Castling&BlackQueenSide != 0 &&
			(occ&b8d8Mask) == 0 &&
			!p.isAttackedBySide(SquareE8, true) &&
			!p.isAttackedBySide(SquareD8, true) &&
			!p.isAttackedBySide(SquareC8, true) {
			ml = append(ml, makeQueenCastle(SquareE8, SquareC8))
		}
	}
	return ml
}

// GenerateLegalMoves filters GenerateMoves through IsLegal. Used by
// tests and by the front-end's move enumerator, never by search's hot
// path, which filters lazily after making each pseudo-legal move.
func GenerateLegalMoves(p *Position) []Move {
	var buf [MaxMoves]Move
	var result []Move
	for _, m := range GenerateMoves(buf[:0], p, ModeAll) {
		if p.IsLegal(m) {
			result = append(result, m)
		}
	}
	return result
}
