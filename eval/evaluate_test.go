package eval

import (
	"testing"

	c "github.com/ChizhovVadim/gochess/common"
)

// TestEvaluateSymmetry checks that mirroring a position (colors swapped,
// board flipped) does not change the side-to-move score.
func TestEvaluateSymmetry(t *testing.T) {
	for _, fen := range symmetryFENs {
		var p1, err = c.NewPositionFromFEN(fen)
		if err != nil {
			t.Fatalf("parse fen %q: %v", fen, err)
		}
		var score1 = Evaluate(p1)
		var p2 = c.MirrorPosition(p1)
		var score2 = Evaluate(p2)
		if score1 != score2 {
			t.Errorf("fen %q: score %d != mirrored score %d", fen, score1, score2)
		}
	}
}

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	var p, err = c.NewPositionFromFEN(c.InitialPositionFEN)
	if err != nil {
		t.Fatal(err)
	}
	if score := Evaluate(p); score != 0 {
		t.Errorf("start position score = %d, want 0", score)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	var p, err = c.NewPositionFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if score := Evaluate(p); score <= 0 {
		t.Errorf("white up a rook should score positive, got %d", score)
	}
}

var symmetryFENs = []string{
	c.InitialPositionFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
}
