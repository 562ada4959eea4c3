package corvid_test

import (
	"testing"

	"github.com/corvidchess/corvid"
)

func TestApplyMoveUpdatesCastlingRightsOnRookCapture(t *testing.T) {
	// White bishop can capture the black rook sitting on its home square
	// a8, which must strip black's queenside castling right even though no
	// black king or rook move happened.
	b, err := corvid.ParseFEN("r3k3/8/8/8/8/8/8/4K2B w q - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := corvid.NewMove(corvid.SH1, corvid.SA8, corvid.FlagNormal)
	u := corvid.ApplyMove(&b, m)
	if b.CastleRights()&corvid.CastleBlackQueenside != 0 {
		t.Error("capturing the a8 rook should strip black's queenside castling right")
	}
	corvid.RevertMove(&b, m, u)
	if b.CastleRights()&corvid.CastleBlackQueenside == 0 {
		t.Error("RevertMove should restore black's queenside castling right")
	}
}

func TestApplyMoveSetsEnPassantSquareOnDoublePush(t *testing.T) {
	b, err := corvid.ParseFEN(corvid.InitialPosFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := corvid.NewMove(corvid.SE2, corvid.SE2+16, corvid.FlagNormal)
	corvid.ApplyMove(&b, m)
	if b.EPSquare() != corvid.SE2+8 {
		t.Errorf("EPSquare() = %d, want %d", b.EPSquare(), corvid.SE2+8)
	}
}

func TestApplyMoveClearsEnPassantAfterOneHalfmove(t *testing.T) {
	b, err := corvid.ParseFEN(corvid.InitialPosFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m1 := corvid.NewMove(corvid.SE2, corvid.SE2+16, corvid.FlagNormal)
	corvid.ApplyMove(&b, m1)
	m2 := corvid.NewMove(corvid.SB8, corvid.SA6, corvid.FlagNormal)
	corvid.ApplyMove(&b, m2)
	if b.EPSquare() != -1 {
		t.Errorf("EPSquare() should clear after an unrelated reply, got %d", b.EPSquare())
	}
}

func TestApplyMoveResetsFiftyMoveRuleOnPawnMove(t *testing.T) {
	b, err := corvid.ParseFEN("4k3/8/8/8/4p3/8/4P3/4K3 w - - 12 30")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := corvid.NewMove(corvid.SE2, corvid.SE2+8, corvid.FlagNormal)
	corvid.ApplyMove(&b, m)
	if b.FiftyMoveCount() != 0 {
		t.Errorf("FiftyMoveCount() = %d, want 0 after a pawn push", b.FiftyMoveCount())
	}
}

func TestApplyMoveEnPassantCaptureRemovesCorrectPawn(t *testing.T) {
	b, err := corvid.ParseFEN("7k/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	capturedSq := corvid.SD5
	if got := b.PieceAt(capturedSq); got != corvid.BPawn {
		t.Fatalf("setup error: expected black pawn on d5, got %d", got)
	}
	m := corvid.NewMove(corvid.SE5, corvid.SD6, corvid.FlagEnPassant)
	u := corvid.ApplyMove(&b, m)
	if got := b.PieceAt(capturedSq); got != corvid.NoPiece {
		t.Errorf("captured pawn square d5 should be empty after en passant, got %d", got)
	}
	if got := b.PieceAt(corvid.SD6); got != corvid.WPawn {
		t.Errorf("capturing pawn should now sit on d6, got %d", got)
	}
	corvid.RevertMove(&b, m, u)
	if got := b.PieceAt(capturedSq); got != corvid.BPawn {
		t.Errorf("RevertMove should restore the captured pawn on d5, got %d", got)
	}
	if got := b.PieceAt(corvid.SE5); got != corvid.WPawn {
		t.Errorf("RevertMove should restore the capturing pawn to e5, got %d", got)
	}
}

func TestApplyMoveCastleMovesBothKingAndRook(t *testing.T) {
	b, err := corvid.ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := corvid.NewMove(corvid.SE1, corvid.SG1, corvid.FlagCastle)
	u := corvid.ApplyMove(&b, m)
	if got := b.PieceAt(corvid.SG1); got != corvid.WKing {
		t.Errorf("g1 = %d, want WKing", got)
	}
	if got := b.PieceAt(corvid.SF1); got != corvid.WRook {
		t.Errorf("f1 = %d, want WRook", got)
	}
	if got := b.PieceAt(corvid.SH1); got != corvid.NoPiece {
		t.Errorf("h1 = %d, want NoPiece", got)
	}
	corvid.RevertMove(&b, m, u)
	if got := b.PieceAt(corvid.SE1); got != corvid.WKing {
		t.Errorf("after revert e1 = %d, want WKing", got)
	}
	if got := b.PieceAt(corvid.SH1); got != corvid.WRook {
		t.Errorf("after revert h1 = %d, want WRook", got)
	}
}

func TestApplyMovePromotionReplacesPawnWithPiece(t *testing.T) {
	b, err := corvid.ParseFEN("7k/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := corvid.NewMove(corvid.SA7, corvid.SA7+8, corvid.FlagPromoQueen)
	u := corvid.ApplyMove(&b, m)
	if got := b.PieceAt(corvid.SA7 + 8); got != corvid.WQueen {
		t.Errorf("a8 = %d, want WQueen", got)
	}
	corvid.RevertMove(&b, m, u)
	if got := b.PieceAt(corvid.SA7); got != corvid.WPawn {
		t.Errorf("after revert a7 = %d, want WPawn", got)
	}
	if got := b.PieceAt(corvid.SA7 + 8); got != corvid.NoPiece {
		t.Errorf("after revert a8 = %d, want NoPiece", got)
	}
}
