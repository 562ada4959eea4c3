/*
movegen.go implements move generation and the single-square attack query.

SquareIsAttacked answers "is this one square attacked" by casting attacks
backwards from the square in question through each piece type's own attack
table/pattern and checking for a matching enemy piece, rather than computing
a full "attacked squares" bitboard and intersecting it with the square of
interest — cheaper when only a handful of squares need checking per node
(king safety, castling path checks), which is every call site in this
package. Legality itself is decided by actually applying the move and asking
whether the mover's king is now attacked (see GenAllLegalMoves), rather than
precomputed pin masks.
*/

package corvid

// SquareIsAttacked reports whether sq is attacked by any piece of
// attackingColor in position b.
func SquareIsAttacked(b *Board, attackingColor Color, sq int) bool {
	occ := b.Occupancy()

	if pawnAttackTable[attackingColor^1][sq]&b.ColoredPieceBB(Pawn, attackingColor) != 0 {
		return true
	}
	if knightAttackTable[sq]&b.ColoredPieceBB(Knight, attackingColor) != 0 {
		return true
	}
	if kingAttackTable[sq]&b.ColoredPieceBB(King, attackingColor) != 0 {
		return true
	}
	bishopsQueens := b.pieces[Bishop] | b.pieces[Queen]
	if lookupBishopAttacks(sq, occ)&bishopsQueens&b.colours[attackingColor] != 0 {
		return true
	}
	rooksQueens := b.pieces[Rook] | b.pieces[Queen]
	if lookupRookAttacks(sq, occ)&rooksQueens&b.colours[attackingColor] != 0 {
		return true
	}
	return false
}

// InCheck reports whether b's side to move is currently in check.
func InCheck(b *Board) bool {
	return SquareIsAttacked(b, b.turn^1, b.KingSquare(b.turn))
}

// GenAllMoves generates every pseudo-legal move (noisy and quiet) in b into
// out. out.Count is reset to zero first.
func GenAllMoves(b *Board, out *MoveList) {
	out.Count = 0
	genPseudoMoves(b, out, true, true)
}

// GenAllNoisyMoves generates every pseudo-legal capture, en-passant capture
// and promotion in b into out.
func GenAllNoisyMoves(b *Board, out *MoveList) {
	out.Count = 0
	genPseudoMoves(b, out, true, false)
}

// GenAllQuietMoves generates every pseudo-legal non-capturing, non-promoting
// move (including castling) in b into out.
func GenAllQuietMoves(b *Board, out *MoveList) {
	out.Count = 0
	genPseudoMoves(b, out, false, true)
}

// GenAllLegalMoves generates every legal move in b into out, by generating
// pseudo-legal moves and filtering out any that leave the mover's own king
// attacked.
func GenAllLegalMoves(b *Board, out *MoveList) {
	var pseudo MoveList
	GenAllMoves(b, &pseudo)

	out.Count = 0
	us := b.turn
	for i := 0; i < pseudo.Count; i++ {
		m := pseudo.Moves[i]
		u := ApplyMove(b, m)
		if !SquareIsAttacked(b, us^1, b.KingSquare(us)) {
			out.Push(m)
		}
		RevertMove(b, m, u)
	}
}

// genPseudoMoves appends pseudo-legal moves to out. noisy/quiet select which
// categories are emitted; calling with both true emits the union with no
// duplicate entries, with the two categories interleaved per piece rather
// than all noisy moves first.
func genPseudoMoves(b *Board, out *MoveList, noisy, quiet bool) {
	us := b.turn
	them := us ^ 1
	occ := b.Occupancy()
	enemy := b.colours[them]
	empty := ^occ

	genPawnMoves(b, out, us, enemy, empty, noisy, quiet)

	for pieceType := Knight; pieceType <= King; pieceType++ {
		if pieceType == Queen {
			// Queens already moved with the bishops and the rooks.
			continue
		}
		bb := b.ColoredPieceBB(pieceType, us)
		if pieceType == Bishop || pieceType == Rook {
			bb |= b.ColoredPieceBB(Queen, us)
		}
		for bb != 0 {
			from := popLSB(&bb)
			var attacks uint64
			switch pieceType {
			case Knight:
				attacks = knightAttackTable[from]
			case Bishop:
				attacks = lookupBishopAttacks(from, occ)
			case Rook:
				attacks = lookupRookAttacks(from, occ)
			case King:
				attacks = kingAttackTable[from]
			}
			if noisy {
				caps := attacks & enemy
				for caps != 0 {
					to := popLSB(&caps)
					out.Push(NewMove(from, to, FlagNormal))
				}
			}
			if quiet {
				quiets := attacks & empty
				for quiets != 0 {
					to := popLSB(&quiets)
					out.Push(NewMove(from, to, FlagNormal))
				}
			}
		}
	}

	if quiet {
		genCastleMoves(b, out, us, occ)
	}
}

// genPawnMoves appends pawn pushes, double pushes, captures, en-passant
// captures and promotions.
func genPawnMoves(b *Board, out *MoveList, us Color, enemy, empty uint64, noisy, quiet bool) {
	pawns := b.ColoredPieceBB(Pawn, us)
	promoRank := rank8
	startRank := rank2
	forward := 8
	if us == ColorBlack {
		promoRank = rank1
		startRank = rank7
		forward = -8
	}

	// Forward-one pushes are split by promotion rank regardless of the
	// noisy/quiet split requested: a push that promotes is noisy even
	// though it captures nothing, per the generator contract.
	single := pawns
	var singleTargets uint64
	if us == ColorWhite {
		singleTargets = single << 8 & empty
	} else {
		singleTargets = single >> 8 & empty
	}
	if quiet {
		nonPromo := singleTargets &^ promoRank
		for bb := nonPromo; bb != 0; {
			to := popLSB(&bb)
			out.Push(NewMove(to-forward, to, FlagNormal))
		}
	}
	if noisy {
		promo := singleTargets & promoRank
		for bb := promo; bb != 0; {
			to := popLSB(&bb)
			for _, f := range promoFlags {
				out.Push(NewMove(to-forward, to, f))
			}
		}
	}

	if quiet {
		doublePushOrigins := pawns & startRank
		var afterSingle uint64
		if us == ColorWhite {
			afterSingle = doublePushOrigins << 8 & empty
		} else {
			afterSingle = doublePushOrigins >> 8 & empty
		}
		var doubleTargets uint64
		if us == ColorWhite {
			doubleTargets = afterSingle << 8 & empty
		} else {
			doubleTargets = afterSingle >> 8 & empty
		}
		for bb := doubleTargets; bb != 0; {
			to := popLSB(&bb)
			out.Push(NewMove(to-2*forward, to, FlagNormal))
		}
	}

	if noisy {
		for bb := pawns; bb != 0; {
			from := popLSB(&bb)
			attacks := pawnAttackTable[us][from]
			captures := attacks & enemy
			nonPromo := captures &^ promoRank
			for c := nonPromo; c != 0; {
				to := popLSB(&c)
				out.Push(NewMove(from, to, FlagNormal))
			}
			promo := captures & promoRank
			for c := promo; c != 0; {
				to := popLSB(&c)
				for _, f := range promoFlags {
					out.Push(NewMove(from, to, f))
				}
			}
			if b.epSquare != -1 && attacks&(uint64(1)<<b.epSquare) != 0 {
				out.Push(NewMove(from, b.epSquare, FlagEnPassant))
			}
		}
	}
}

// genCastleMoves appends any castling moves currently available: the rights
// bit must be set, the squares between king and rook must be empty, and the
// king's start/transit/destination squares must not be attacked.
func genCastleMoves(b *Board, out *MoveList, us Color, occ uint64) {
	them := us ^ 1
	var kingside, queenside CastlingRights
	var kingFrom, kingsideTo, queensideTo int
	if us == ColorWhite {
		kingside, queenside = CastleWhiteKingside, CastleWhiteQueenside
		kingFrom, kingsideTo, queensideTo = SE1, SG1, SC1
	} else {
		kingside, queenside = CastleBlackKingside, CastleBlackQueenside
		kingFrom, kingsideTo, queensideTo = SE8, SG8, SC8
	}

	if b.castleRights&kingside != 0 && occ&castlingKingPath[castleSideIndex(kingside)] == 0 &&
		!anySquareAttacked(b, them, castlingSafePath[castleSideIndex(kingside)]) {
		out.Push(NewMove(kingFrom, kingsideTo, FlagCastle))
	}
	if b.castleRights&queenside != 0 && occ&castlingKingPath[castleSideIndex(queenside)] == 0 &&
		!anySquareAttacked(b, them, castlingSafePath[castleSideIndex(queenside)]) {
		out.Push(NewMove(kingFrom, queensideTo, FlagCastle))
	}
}

// castleSideIndex maps a single CastlingRights flag to its index into the
// castlingKingPath/castlingSafePath tables.
func castleSideIndex(right CastlingRights) int {
	switch right {
	case CastleWhiteKingside:
		return 0
	case CastleWhiteQueenside:
		return 1
	case CastleBlackKingside:
		return 2
	default:
		return 3
	}
}

// anySquareAttacked reports whether any square set in squares is attacked by
// attackingColor.
func anySquareAttacked(b *Board, attackingColor Color, squares uint64) bool {
	for squares != 0 {
		sq := popLSB(&squares)
		if SquareIsAttacked(b, attackingColor, sq) {
			return true
		}
	}
	return false
}
