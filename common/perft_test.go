package common

import "testing"

// https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int64
	}{
		{InitialPositionFEN, 1, 20},
		{InitialPositionFEN, 2, 400},
		{InitialPositionFEN, 3, 8902},
		{InitialPositionFEN, 4, 197281},
		{InitialPositionFEN, 5, 4865609},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
	}
	for _, test := range tests {
		p, err := NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatalf("parse fen %q: %v", test.fen, err)
		}
		if got := Perft(p, test.depth); got != test.nodes {
			t.Errorf("perft(%q, %d) = %d, want %d", test.fen, test.depth, got, test.nodes)
		}
	}
}

func TestZobristConsistency(t *testing.T) {
	p, err := NewPositionFromFEN(InitialPositionFEN)
	if err != nil {
		t.Fatal(err)
	}
	var buf [MaxMoves]Move
	for _, m := range GenerateMoves(buf[:0], p, ModeAll) {
		var before = *p
		var undo = p.MakeMove(m)
		if p.Key != p.computeKey() {
			t.Errorf("move %v: incremental key %x != recomputed %x", m, p.Key, p.computeKey())
		}
		p.UnmakeMove(undo)
		if p.Key != before.Key || p.Board != before.Board {
			t.Errorf("move %v: unmake did not restore position", m)
		}
	}
}

func TestPromotionGeneration(t *testing.T) {
	p, err := NewPositionFromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var buf [MaxMoves]Move
	var count int
	for _, m := range GenerateMoves(buf[:0], p, ModeAll) {
		if m.From() == SquareA7 && m.To() == SquareA8 {
			count++
		}
	}
	if count != 4 {
		t.Errorf("expected 4 promotion moves from a7a8, got %d", count)
	}

	var captureCount int
	for _, m := range GenerateMoves(buf[:0], p, ModeCaptures) {
		if m.From() == SquareA7 {
			captureCount++
		}
	}
	if captureCount != 0 {
		t.Errorf("expected 0 moves from a7 in ModeCaptures with an empty a8, got %d", captureCount)
	}
}

func TestCastlingAttackedSquare(t *testing.T) {
	// Black rook on f8's file attacks f1: white king-side castle must be
	// suppressed while queen-side remains legal.
	p2, err := NewPositionFromFEN("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var buf [MaxMoves]Move
	var sawKingSide, sawQueenSide bool
	for _, m := range GenerateMoves(buf[:0], p2, ModeAll) {
		if m.IsKingCastle() {
			sawKingSide = true
		}
		if m.IsQueenCastle() {
			sawQueenSide = true
		}
	}
	if sawKingSide {
		t.Errorf("king-side castle generated while f1 is attacked")
	}
	if !sawQueenSide {
		t.Errorf("queen-side castle should still be generated")
	}
}
