package common

// Move packs from:6 | to:6 | promotion_kind:3 | flags. The moving and
// captured piece are not carried in the word; make/unmake look them up
// from the board instead.
type Move int32

const (
	flagCapture = 1 << (12 + 3 + iota)
	flagEnPassant
	flagKingCastle
	flagQueenCastle
	flagPromotion
)

const MoveEmpty Move = 0

func makeMove(from, to int) Move {
	return Move(from | (to << 6))
}

func makeCapture(from, to int) Move {
	return makeMove(from, to) | flagCapture
}

func makeEnPassant(from, to int) Move {
	return makeMove(from, to) | flagCapture | flagEnPassant
}

func makePromotion(from, to, promotion int, capture bool) Move {
	var m = makeMove(from, to) | Move(promotion<<12) | flagPromotion
	if capture {
		m |= flagCapture
	}
	return m
}

func makeKingCastle(from, to int) Move {
	return makeMove(from, to) | flagKingCastle
}

func makeQueenCastle(from, to int) Move {
	return makeMove(from, to) | flagQueenCastle
}

func (m Move) From() int { return int(m & 63) }
func (m Move) To() int   { return int((m >> 6) & 63) }

func (m Move) PromotionKind() int {
	return int((m >> 12) & 7)
}

func (m Move) IsCapture() bool     { return m&flagCapture != 0 }
func (m Move) IsEnPassant() bool   { return m&flagEnPassant != 0 }
func (m Move) IsKingCastle() bool  { return m&flagKingCastle != 0 }
func (m Move) IsQueenCastle() bool { return m&flagQueenCastle != 0 }
func (m Move) IsPromotion() bool   { return m&flagPromotion != 0 }
func (m Move) IsCastle() bool      { return m.IsKingCastle() || m.IsQueenCastle() }

// MoveToString renders m in coordinate notation (e2e4, e7e8q). m.String()
// does the same work and satisfies fmt.Stringer for logging.
func MoveToString(m Move) string { return m.String() }

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var s = SquareName(m.From()) + SquareName(m.To())
	if m.IsPromotion() {
		s += string(pieceKindToChar(m.PromotionKind()))
	}
	return s
}

// ParseMoveString selects the unique pseudo-legal move matching the
// coordinate string, or MoveEmpty if none matches.
func ParseMoveString(p *Position, s string) Move {
	if len(s) < 4 {
		return MoveEmpty
	}
	var from = ParseSquare(s[0:2])
	var to = ParseSquare(s[2:4])
	if from == SquareNone || to == SquareNone {
		return MoveEmpty
	}
	var promo = Empty
	if len(s) >= 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		}
	}
	var buf [MaxMoves]Move
	for _, mv := range GenerateMoves(buf[:0], p, ModeAll) {
		if mv.From() == from && mv.To() == to {
			if !mv.IsPromotion() || mv.PromotionKind() == promo {
				return mv
			}
		}
	}
	return MoveEmpty
}
