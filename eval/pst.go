package eval

import c "github.com/ChizhovVadim/gochess/common"

// Piece-square tables, indexed [c.Pawn..c.King][square 0..63] with square 0
// = a1 (white's own-side orientation; black looks up FlipSquare(sq)).
var pstMG, pstEG [7][64]int

func init() {
	pstMG[c.Pawn] = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		-6, -4, 0, -10, -10, 0, -4, -6,
		-4, -4, 4, 10, 10, 4, -4, -4,
		0, 0, 8, 22, 22, 8, 0, 0,
		6, 6, 14, 26, 26, 14, 6, 6,
		14, 14, 24, 32, 32, 24, 14, 14,
		30, 30, 30, 30, 30, 30, 30, 30,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	pstEG[c.Pawn] = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, -2, -2, -4, -4, -2, -2, 0,
		2, 2, 0, 0, 0, 0, 2, 2,
		8, 8, 6, 4, 4, 6, 8, 8,
		20, 20, 16, 14, 14, 16, 20, 20,
		40, 40, 36, 32, 32, 36, 40, 40,
		60, 60, 60, 60, 60, 60, 60, 60,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	pstMG[c.Knight] = [64]int{
		-30, -20, -14, -12, -12, -14, -20, -30,
		-20, -10, 0, 2, 2, 0, -10, -20,
		-12, 4, 10, 14, 14, 10, 4, -12,
		-10, 6, 16, 20, 20, 16, 6, -10,
		-10, 6, 16, 20, 20, 16, 6, -10,
		-12, 4, 10, 14, 14, 10, 4, -12,
		-20, -10, 0, 2, 2, 0, -10, -20,
		-30, -20, -14, -12, -12, -14, -20, -30,
	}
	pstEG[c.Knight] = [64]int{
		-20, -14, -10, -8, -8, -10, -14, -20,
		-14, -6, 0, 2, 2, 0, -6, -14,
		-10, 0, 6, 8, 8, 6, 0, -10,
		-8, 2, 8, 12, 12, 8, 2, -8,
		-8, 2, 8, 12, 12, 8, 2, -8,
		-10, 0, 6, 8, 8, 6, 0, -10,
		-14, -6, 0, 2, 2, 0, -6, -14,
		-20, -14, -10, -8, -8, -10, -14, -20,
	}

	pstMG[c.Bishop] = [64]int{
		-14, -6, -6, -6, -6, -6, -6, -14,
		-6, 4, 0, 0, 0, 0, 4, -6,
		-6, 0, 6, 8, 8, 6, 0, -6,
		-6, 4, 8, 10, 10, 8, 4, -6,
		-6, 4, 8, 10, 10, 8, 4, -6,
		-6, 0, 6, 8, 8, 6, 0, -6,
		-6, 4, 0, 0, 0, 0, 4, -6,
		-14, -6, -6, -6, -6, -6, -6, -14,
	}
	pstEG[c.Bishop] = [64]int{
		-10, -6, -4, -4, -4, -4, -6, -10,
		-6, 0, 2, 2, 2, 2, 0, -6,
		-4, 2, 4, 6, 6, 4, 2, -4,
		-4, 2, 6, 8, 8, 6, 2, -4,
		-4, 2, 6, 8, 8, 6, 2, -4,
		-4, 2, 4, 6, 6, 4, 2, -4,
		-6, 0, 2, 2, 2, 2, 0, -6,
		-10, -6, -4, -4, -4, -4, -6, -10,
	}

	pstMG[c.Rook] = [64]int{
		0, 0, 2, 4, 4, 2, 0, 0,
		-4, 0, 2, 4, 4, 2, 0, -4,
		-4, 0, 2, 4, 4, 2, 0, -4,
		-4, 0, 2, 4, 4, 2, 0, -4,
		-4, 0, 2, 4, 4, 2, 0, -4,
		-4, 0, 2, 4, 4, 2, 0, -4,
		8, 10, 10, 10, 10, 10, 10, 8,
		0, 0, 2, 4, 4, 2, 0, 0,
	}
	pstEG[c.Rook] = [64]int{
		0, 2, 4, 4, 4, 4, 2, 0,
		0, 2, 4, 4, 4, 4, 2, 0,
		0, 2, 4, 4, 4, 4, 2, 0,
		0, 2, 4, 4, 4, 4, 2, 0,
		0, 2, 4, 4, 4, 4, 2, 0,
		0, 2, 4, 4, 4, 4, 2, 0,
		4, 6, 6, 6, 6, 6, 6, 4,
		0, 2, 4, 4, 4, 4, 2, 0,
	}

	pstMG[c.Queen] = [64]int{
		-8, -4, -4, -2, -2, -4, -4, -8,
		-4, 0, 0, 0, 0, 0, 0, -4,
		-4, 0, 2, 2, 2, 2, 0, -4,
		-2, 0, 2, 4, 4, 2, 0, -2,
		-2, 0, 2, 4, 4, 2, 0, -2,
		-4, 0, 2, 2, 2, 2, 0, -4,
		-4, 0, 0, 0, 0, 0, 0, -4,
		-8, -4, -4, -2, -2, -4, -4, -8,
	}
	pstEG[c.Queen] = [64]int{
		-14, -8, -8, -4, -4, -8, -8, -14,
		-8, -2, 0, 0, 0, 0, -2, -8,
		-8, 0, 4, 4, 4, 4, 0, -8,
		-4, 0, 4, 8, 8, 4, 0, -4,
		-4, 0, 4, 8, 8, 4, 0, -4,
		-8, 0, 4, 4, 4, 4, 0, -8,
		-8, -2, 0, 0, 0, 0, -2, -8,
		-14, -8, -8, -4, -4, -8, -8, -14,
	}

	pstMG[c.King] = [64]int{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}
	pstEG[c.King] = [64]int{
		-40, -30, -20, -20, -20, -20, -30, -40,
		-20, -10, 0, 0, 0, 0, -10, -20,
		-10, 0, 10, 14, 14, 10, 0, -10,
		-10, 0, 14, 20, 20, 14, 0, -10,
		-10, 0, 14, 20, 20, 14, 0, -10,
		-10, 0, 10, 14, 14, 10, 0, -10,
		-20, -10, 0, 0, 0, 0, -10, -20,
		-40, -30, -20, -20, -20, -20, -30, -40,
	}
}
