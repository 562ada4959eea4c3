/*
makemove.go implements ApplyMove and RevertMove: the make/unmake pair that
mutates a Board in place rather than copying it, recording exactly enough
state in an Undo value to reverse the mutation bit for bit.

The legality filter calls ApplyMove, queries SquareIsAttacked, and calls
RevertMove, so the Undo record has to carry everything a bare move can't
reconstruct: the captured piece (if any), and the previous
epSquare/castleRights/fiftyMoveRule/hash. The turn is cheap to invert in
place (flip a bit) and so isn't stored in Undo.
*/

package corvid

// Undo carries the state ApplyMove cannot reconstruct from the move alone,
// so RevertMove can restore a Board to exactly what it was before.
type Undo struct {
	captured      Piece
	captureSquare int
	epSquare      int
	castleRights  CastlingRights
	fiftyMoveRule int
	hash          uint64
}

// ApplyMove plays move on b, mutating it in place, and returns the Undo
// needed to reverse it with RevertMove. move is assumed pseudo-legal; legality
// (does it leave the mover's own king in check) is the caller's concern, via
// SquareIsAttacked after the move is applied.
func ApplyMove(b *Board, move Move) Undo {
	from, to, flag := move.From(), move.To(), move.Flag()
	mover := b.squares[from]
	movedType := pieceType(mover)
	us := b.turn

	u := Undo{
		captured:      NoPiece,
		captureSquare: -1,
		epSquare:      b.epSquare,
		castleRights:  b.castleRights,
		fiftyMoveRule: b.fiftyMoveRule,
		hash:          b.hash,
	}

	b.fiftyMoveRule++
	if movedType == Pawn {
		b.fiftyMoveRule = 0
	}

	switch flag {
	case FlagEnPassant:
		capSq := to - 8
		if us == ColorBlack {
			capSq = to + 8
		}
		u.captured = b.squares[capSq]
		u.captureSquare = capSq
		b.removePiece(capSq)
		b.movePiece(from, to)

	case FlagCastle:
		b.movePiece(from, to)
		rookFrom, rookTo := castleRookSquares(to)
		b.movePiece(rookFrom, rookTo)

	default:
		if b.squares[to] != NoPiece {
			u.captured = b.squares[to]
			u.captureSquare = to
			b.removePiece(to)
			b.fiftyMoveRule = 0
		}
		if move.IsPromotion() {
			b.removePiece(from)
			b.placePiece(makePiece(move.PromotionType(), us), to)
		} else {
			b.movePiece(from, to)
		}
	}

	newEP := -1
	if movedType == Pawn {
		if (us == ColorWhite && to-from == 16) || (us == ColorBlack && from-to == 16) {
			newEP = (from + to) / 2
		}
	}
	b.setEPSquare(newEP)

	b.setCastleRights(b.castleRights &^ castleRightsLost(from, to))

	b.flipTurn()
	if us == ColorBlack {
		b.fullMoveNumber++
	}

	return u
}

// RevertMove undoes move, previously applied to b via ApplyMove, restoring
// b to its exact prior state using u.
func RevertMove(b *Board, move Move, u Undo) {
	from, to, flag := move.From(), move.To(), move.Flag()

	b.flipTurn()
	us := b.turn
	if us == ColorBlack {
		b.fullMoveNumber--
	}

	b.setCastleRights(u.castleRights)
	b.setEPSquare(u.epSquare)
	b.fiftyMoveRule = u.fiftyMoveRule

	switch flag {
	case FlagEnPassant:
		b.movePiece(to, from)
		b.placePiece(u.captured, u.captureSquare)

	case FlagCastle:
		rookFrom, rookTo := castleRookSquares(to)
		b.movePiece(rookTo, rookFrom)
		b.movePiece(to, from)

	default:
		if move.IsPromotion() {
			b.removePiece(to)
			b.placePiece(makePiece(Pawn, us), from)
		} else {
			b.movePiece(to, from)
		}
		if u.captured != NoPiece {
			b.placePiece(u.captured, u.captureSquare)
		}
	}
	b.hash = u.hash
}

// castleRookSquares returns the rook's from/to squares for a castling move
// whose king destination is kingTo.
func castleRookSquares(kingTo int) (from, to int) {
	switch kingTo {
	case SG1:
		return SH1, SF1
	case SC1:
		return SA1, SD1
	case SG8:
		return SH8, SF8
	case SC8:
		return SA8, SD8
	}
	panic("corvid: castle move with invalid king destination")
}

// castleRightsLost returns the mask of castling rights a move from/to
// revokes: moving a king or rook off its home square, or capturing a rook on
// its home square, permanently forfeits the corresponding right.
func castleRightsLost(from, to int) CastlingRights {
	var lost CastlingRights
	switch from {
	case SE1:
		lost |= CastleWhiteKingside | CastleWhiteQueenside
	case SA1:
		lost |= CastleWhiteQueenside
	case SH1:
		lost |= CastleWhiteKingside
	case SE8:
		lost |= CastleBlackKingside | CastleBlackQueenside
	case SA8:
		lost |= CastleBlackQueenside
	case SH8:
		lost |= CastleBlackKingside
	}
	switch to {
	case SA1:
		lost |= CastleWhiteQueenside
	case SH1:
		lost |= CastleWhiteKingside
	case SA8:
		lost |= CastleBlackQueenside
	case SH8:
		lost |= CastleBlackKingside
	}
	return lost
}
