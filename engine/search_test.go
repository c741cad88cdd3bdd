package engine

import (
	"testing"
	"time"

	c "github.com/ChizhovVadim/gochess/common"
)

func newTestPosition(t *testing.T, fen string) *c.Position {
	t.Helper()
	var p, err = c.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("parse fen %q: %v", fen, err)
	}
	return p
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Classic back-rank mate: black's own pawns block every escape square,
	// so Ra1-a8 is mate in one.
	var pos = newTestPosition(t, "6k1/5ppp/8/8/8/8/6PP/R5K1 w - - 0 1")
	var eng = NewEngine()
	eng.StartNewGame(pos)
	var best, score, _ = eng.SearchBestMove(pos, 2000, 6)
	if best == c.MoveEmpty {
		t.Fatal("expected a move")
	}
	if score < c.Mate-c.MaxPly {
		t.Errorf("expected a mate score, got %d (move %s)", score, c.MoveToString(best))
	}
}

func TestSearchReturnsLegalMoveFromStart(t *testing.T) {
	var pos = newTestPosition(t, c.InitialPositionFEN)
	var eng = NewEngine()
	eng.StartNewGame(pos)
	var before = *pos
	var best, _, nodes = eng.SearchBestMove(pos, 500, 4)
	if best == c.MoveEmpty {
		t.Fatal("expected a move from the start position")
	}
	if !before.IsLegal(best) {
		t.Errorf("returned move %s is not legal", c.MoveToString(best))
	}
	if nodes == 0 {
		t.Error("expected a nonzero node count")
	}
}

func TestSearchDetectsStalemate(t *testing.T) {
	// Classic stalemate: black king boxed in, no legal moves, not in check.
	var pos = newTestPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if len(c.GenerateLegalMoves(pos)) != 0 {
		t.Fatal("test fixture is not actually stalemate")
	}
	var eng = NewEngine()
	eng.StartNewGame(pos)
	var best, score, _ = eng.SearchBestMove(pos, 500, 4)
	if best != c.MoveEmpty {
		t.Errorf("expected no move from stalemate, got %s", c.MoveToString(best))
	}
	_ = score
}

func TestRepetitionDrawIsDetected(t *testing.T) {
	var pos = newTestPosition(t, c.InitialPositionFEN)
	var eng = NewEngine()
	eng.StartNewGame(pos)

	var shuffle = []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, s := range shuffle {
		var m = c.ParseMoveString(pos, s)
		if m == c.MoveEmpty {
			t.Fatalf("move %s did not parse against current position", s)
		}
		eng.ApplyGameMove(pos, m)
	}

	if count := eng.RepetitionCountGame(pos); count < 3 {
		t.Errorf("expected threefold repetition after shuffling back and forth, got count %d", count)
	}
}

func TestTimeDisciplineRespectsDeadline(t *testing.T) {
	var pos = newTestPosition(t, c.InitialPositionFEN)
	var eng = NewEngine()
	eng.StartNewGame(pos)

	var started = time.Now()
	eng.SearchBestMove(pos, 100, 64)
	var elapsed = time.Since(started)

	if elapsed > 2*time.Second {
		t.Errorf("search overran its budget by a wide margin: %s", elapsed)
	}
}

func TestTranspositionTableRoundTrip(t *testing.T) {
	var tt = newTransTable()
	var pos = newTestPosition(t, c.InitialPositionFEN)
	tt.store(pos.Key, 5, 123, boundExact, c.MoveEmpty)
	var entry, ok = tt.probe(pos.Key)
	if !ok {
		t.Fatal("expected a hit after store")
	}
	if entry.score != 123 || int(entry.depth) != 5 || entry.bound != boundExact {
		t.Errorf("unexpected entry contents: %+v", entry)
	}

	tt.clear()
	if _, ok := tt.probe(pos.Key); ok {
		t.Error("expected a miss after clear")
	}
}
