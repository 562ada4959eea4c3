package corvid_test

import (
	"testing"

	"github.com/corvidchess/corvid"
)

// TestKnightAttacksCorner exercises the file-wrap guards on a1, where a
// naive shift-based knight attack generator is most likely to bleed bits
// across the board edge.
func TestKnightAttacksCorner(t *testing.T) {
	b, err := corvid.ParseFEN("7k/8/8/8/8/8/8/N6K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var moves corvid.MoveList
	corvid.GenAllLegalMoves(&b, &moves)
	want := map[int]bool{corvid.SB3: true, corvid.SC2: true}
	got := map[int]bool{}
	for i := 0; i < moves.Count; i++ {
		m := moves.Moves[i]
		if m.From() == corvid.SA1 {
			got[m.To()] = true
		}
	}
	for sq := range want {
		if !got[sq] {
			t.Errorf("knight on a1 missing attack to square %d", sq)
		}
	}
	if len(got) != 2 {
		t.Errorf("knight on a1 should reach exactly 2 squares, got %d (%v)", len(got), got)
	}
}

func TestBishopAttacksStopAtFirstBlocker(t *testing.T) {
	b, err := corvid.ParseFEN("7k/8/8/3p4/8/8/B7/7K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !corvid.SquareIsAttacked(&b, corvid.ColorWhite, corvid.SD5) {
		t.Error("bishop on a2 should attack the blocking pawn on d5")
	}
	if corvid.SquareIsAttacked(&b, corvid.ColorWhite, corvid.SE6) {
		t.Error("bishop on a2 should not see past the blocker on d5")
	}
}

func TestRookAttacksStopAtFirstBlocker(t *testing.T) {
	b, err := corvid.ParseFEN("7k/8/8/8/3p4/8/8/3R3K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !corvid.SquareIsAttacked(&b, corvid.ColorWhite, corvid.SD4) {
		t.Error("rook on d1 should attack the blocking pawn on d4")
	}
	if corvid.SquareIsAttacked(&b, corvid.ColorWhite, corvid.SD5) {
		t.Error("rook on d1 should not see past the blocker on d4")
	}
}

func TestPawnAttacksAreColorDependent(t *testing.T) {
	b, err := corvid.ParseFEN("7k/8/8/8/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !corvid.SquareIsAttacked(&b, corvid.ColorWhite, corvid.SD5) {
		t.Error("white pawn on e4 should attack d5")
	}
	if !corvid.SquareIsAttacked(&b, corvid.ColorWhite, corvid.SF5) {
		t.Error("white pawn on e4 should attack f5")
	}
	if corvid.SquareIsAttacked(&b, corvid.ColorWhite, corvid.SD3) {
		t.Error("white pawn on e4 should not attack backwards to d3")
	}
}

func TestQueenAttacksUnionOfBishopAndRook(t *testing.T) {
	b, err := corvid.ParseFEN("6k1/8/8/8/4K3/8/8/Q7 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// Orthogonal and diagonal reach from a1.
	for _, sq := range []int{corvid.SA8, corvid.SH1, corvid.SH8} {
		if !corvid.SquareIsAttacked(&b, corvid.ColorWhite, sq) {
			t.Errorf("queen on a1 should attack square %d", sq)
		}
	}
}
