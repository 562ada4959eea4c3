// types.go contains declarations of custom types and predefined constants
// shared by every other file in the package.

package corvid

// Color is an alias type to avoid bothersome conversion between int and Color.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// PieceType identifies a chess piece irrespective of color. The six values
// index directly into the Board's per-type bitboards (see [Board.PieceBB]).
type PieceType = int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a colored piece, encoded as 2*type+color. It is only used at the
// mailbox/FEN/rendering boundary; the bitboard core stays color-agnostic per
// type and combines type bitboards with the two color bitboards instead.
type Piece = int

const (
	WPawn Piece = iota
	BPawn
	WKnight
	BKnight
	WBishop
	BBishop
	WRook
	BRook
	WQueen
	BQueen
	WKing
	BKing
	// NoPiece marks an empty square in the mailbox array.
	NoPiece Piece = -1
)

// pieceType strips the color bit off a colored [Piece].
func pieceType(p Piece) PieceType { return p >> 1 }

// pieceColor extracts the color bit of a colored [Piece].
func pieceColor(p Piece) Color { return p & 1 }

// makePiece recombines a [PieceType] and [Color] into a colored [Piece].
func makePiece(t PieceType, c Color) Piece { return t<<1 | c }

// CastlingRights is a four-bit mask over {WK, WQ, BK, BQ}.
type CastlingRights = int

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside
)

// MoveFlag occupies bits 12-15 of a [Move].
type MoveFlag = int

const (
	FlagNormal MoveFlag = iota
	FlagCastle
	FlagEnPassant
	FlagPromoKnight
	FlagPromoBishop
	FlagPromoRook
	FlagPromoQueen
)

/*
Move represents a chess move, encoded as a 16-bit unsigned integer:
  - bits 0-5:   from (origin) square index.
  - bits 6-11:  to (destination) square index.
  - bits 12-15: [MoveFlag].
*/
type Move uint16

// NewMove creates a move carrying the given flag.
func NewMove(from, to int, flag MoveFlag) Move {
	return Move(from | to<<6 | flag<<12)
}

func (m Move) From() int      { return int(m) & 0x3F }
func (m Move) To() int        { return int(m>>6) & 0x3F }
func (m Move) Flag() MoveFlag { return int(m>>12) & 0xF }

// IsPromotion reports whether the move carries one of the four promotion flags.
func (m Move) IsPromotion() bool {
	f := m.Flag()
	return f >= FlagPromoKnight && f <= FlagPromoQueen
}

// PromotionType returns the promoted-to piece type. Only meaningful when
// [Move.IsPromotion] is true.
func (m Move) PromotionType() PieceType {
	switch m.Flag() {
	case FlagPromoKnight:
		return Knight
	case FlagPromoBishop:
		return Bishop
	case FlagPromoRook:
		return Rook
	default:
		return Queen
	}
}

// promoFlags lists the four promotion flags in the fixed emission order
// (queen, rook, bishop, knight) required by the generator.
var promoFlags = [4]MoveFlag{FlagPromoQueen, FlagPromoRook, FlagPromoBishop, FlagPromoKnight}

/*
MoveList stores generated moves in a preallocated array, avoiding dynamic
memory allocation during move generation.

The maximum number of legal moves in any reachable chess position is 218.
See https://www.talkchess.com/forum/viewtopic.php?t=61792
*/
type MoveList struct {
	Moves [218]Move
	Count int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Contains reports whether the list holds a move with the given from/to/flag.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.Count; i++ {
		if l.Moves[i] == m {
			return true
		}
	}
	return false
}

var (
	// pieceSymbols maps each colored piece to its FEN/SAN letter.
	pieceSymbols = [12]byte{
		'P', 'p', 'N', 'n', 'B', 'b',
		'R', 'r', 'Q', 'q', 'K', 'k',
	}
	// Square2String maps each board square to its algebraic name.
	Square2String = [64]string{
		"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
		"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
		"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
		"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
		"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
		"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
		"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
		"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	}
)

// Named squares, used by castling and throughout the test suite.
const (
	SA1 = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

// InitialPosFEN is the FEN string of the standard chess starting position.
const InitialPosFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
