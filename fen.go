/*
fen.go implements Forsyth-Edwards Notation parsing and serialization.

It never panics on malformed input: every failure mode returns a *ParseError
instead, since a move-generation library has no business crashing its caller
over a bad string from a PGN file or a UCI "position fen ..." command.
*/

package corvid

import (
	"strconv"
	"strings"
)

// ParseFEN parses a FEN string into a Board.
func ParseFEN(text string) (Board, error) {
	b := NewEmptyBoard()

	fields := strings.Fields(text)
	if len(fields) < 4 {
		return Board{}, &ParseError{Input: text, Pos: -1, Msg: "expected at least 4 space-separated fields"}
	}

	if err := parsePlacement(&b, fields[0]); err != nil {
		return Board{}, err
	}

	switch fields[1] {
	case "w":
		b.turn = ColorWhite
	case "b":
		b.turn = ColorBlack
	default:
		return Board{}, &ParseError{Input: text, Pos: -1, Msg: "active color must be 'w' or 'b'"}
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.castleRights |= CastleWhiteKingside
			case 'Q':
				b.castleRights |= CastleWhiteQueenside
			case 'k':
				b.castleRights |= CastleBlackKingside
			case 'q':
				b.castleRights |= CastleBlackQueenside
			default:
				return Board{}, &ParseError{Input: text, Pos: -1, Msg: "invalid castling availability character"}
			}
		}
	}

	if fields[3] == "-" {
		b.epSquare = -1
	} else {
		sq, ok := parseSquareName(fields[3])
		if !ok {
			return Board{}, &ParseError{Input: text, Pos: -1, Msg: "invalid en-passant target square"}
		}
		b.epSquare = sq
	}

	b.fiftyMoveRule = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Board{}, &ParseError{Input: text, Pos: -1, Msg: "invalid halfmove clock"}
		}
		b.fiftyMoveRule = n
	}

	b.fullMoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Board{}, &ParseError{Input: text, Pos: -1, Msg: "invalid fullmove number"}
		}
		b.fullMoveNumber = n
	}

	b.hash = zobristKey(&b)
	return b, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &ParseError{Input: placement, Pos: -1, Msg: "piece placement must have 8 ranks"}
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if file > 8 {
				return &ParseError{Input: placement, Pos: -1, Msg: "rank has too many squares"}
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, ok := pieceFromSymbol(byte(c))
			if !ok {
				return &ParseError{Input: placement, Pos: -1, Msg: "invalid piece symbol '" + string(c) + "'"}
			}
			if file > 7 {
				return &ParseError{Input: placement, Pos: -1, Msg: "rank has too many squares"}
			}
			sq := rank*8 + file
			b.placePiece(p, sq)
			file++
		}
		if file != 8 {
			return &ParseError{Input: placement, Pos: -1, Msg: "rank does not sum to 8 files"}
		}
	}
	return nil
}

func pieceFromSymbol(c byte) (Piece, bool) {
	for p, s := range pieceSymbols {
		if s == c {
			return p, true
		}
	}
	return NoPiece, false
}

func parseSquareName(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	return int(rank-'1')*8 + int(file-'a'), true
}

// FEN serializes b as a FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			p := b.squares[sq]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceSymbols[p])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.turn == ColorWhite {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castleRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castleRights&CastleWhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castleRights&CastleWhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castleRights&CastleBlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castleRights&CastleBlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.epSquare == -1 {
		sb.WriteByte('-')
	} else {
		sb.WriteString(Square2String[b.epSquare])
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fiftyMoveRule))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))

	return sb.String()
}
