package common

import "strings"

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func FlipSquare(sq int) int {
	return sq ^ 56
}

func File(sq int) int {
	return sq & 7
}

func Rank(sq int) int {
	return sq >> 3
}

func AbsDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

func FileDistance(sq1, sq2 int) int {
	return AbsDelta(File(sq1), File(sq2))
}

func RankDistance(sq1, sq2 int) int {
	return AbsDelta(Rank(sq1), Rank(sq2))
}

func SquareDistance(sq1, sq2 int) int {
	return Max(FileDistance(sq1, sq2), RankDistance(sq1, sq2))
}

func MakeSquare(file, rank int) int {
	return (rank << 3) | file
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	return string(fileNames[File(sq)]) + string(rankNames[Rank(sq)])
}

func ParseSquare(s string) int {
	if s == "-" || len(s) < 2 {
		return SquareNone
	}
	var file = strings.Index(fileNames, s[0:1])
	var rank = strings.Index(rankNames, s[1:2])
	if file < 0 || rank < 0 {
		return SquareNone
	}
	return MakeSquare(file, rank)
}

// MakePiece packs a (kind,side) pair into the 0..12 tag used by Position.board.
func MakePiece(kind int, side bool) int {
	if kind == Empty {
		return Empty
	}
	if side {
		return kind
	}
	return kind + 6
}

func PieceKind(piece int) int {
	if piece > King {
		return piece - 6
	}
	return piece
}

func PieceSide(piece int) bool {
	return piece != Empty && piece <= King
}

func pieceKindToChar(kind int) byte {
	return "\x00pnbrqk"[kind]
}
