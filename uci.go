/*
uci.go implements the Universal Chess Interface's long algebraic move
notation — "e2e4", "e7e8q" — the only move notation this package supports.
SAN belongs one layer up, in something that understands check/mate
disambiguation across the whole legal-move list; it is out of scope here.
*/

package corvid

import "strings"

var promoLetterByType = [6]byte{0, 'n', 'b', 'r', 'q', 0}

// MoveToUCI formats m in long algebraic notation.
func MoveToUCI(m Move) string {
	var sb strings.Builder
	sb.WriteString(Square2String[m.From()])
	sb.WriteString(Square2String[m.To()])
	if m.IsPromotion() {
		sb.WriteByte(promoLetterByType[m.PromotionType()])
	}
	return sb.String()
}

// MoveFromUCI parses s as a long-algebraic move in the context of b and
// returns the matching legal move. It returns *ParseError if s is not
// syntactically a UCI move, or ErrIllegalMove if it is well-formed but not
// legal in b.
func MoveFromUCI(b *Board, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, &ParseError{Input: s, Pos: -1, Msg: "UCI move must be 4 or 5 characters"}
	}
	from, ok := parseSquareName(s[0:2])
	if !ok {
		return 0, &ParseError{Input: s, Pos: 0, Msg: "invalid origin square"}
	}
	to, ok := parseSquareName(s[2:4])
	if !ok {
		return 0, &ParseError{Input: s, Pos: 2, Msg: "invalid destination square"}
	}

	wantPromo := PieceType(-1)
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			wantPromo = Knight
		case 'b':
			wantPromo = Bishop
		case 'r':
			wantPromo = Rook
		case 'q':
			wantPromo = Queen
		default:
			return 0, &ParseError{Input: s, Pos: 4, Msg: "invalid promotion piece"}
		}
	}

	var legal MoveList
	GenAllLegalMoves(b, &legal)
	for i := 0; i < legal.Count; i++ {
		m := legal.Moves[i]
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			if wantPromo == -1 || m.PromotionType() != wantPromo {
				continue
			}
		} else if wantPromo != -1 {
			continue
		}
		return m, nil
	}
	return 0, ErrIllegalMove
}
