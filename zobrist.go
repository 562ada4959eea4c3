/*
zobrist.go implements Zobrist hashing: a random 64-bit key assigned to every
(piece, square) pair, every en-passant file, every castling-rights combination
and the side to move, XORed together to form a position's hash.

[ApplyMove] and [RevertMove] maintain Board.hash incrementally rather than
recomputing it from scratch on every position: each call XORs out the keys
for what changed and XORs in the keys for what replaced it. XOR is its own
inverse, so RevertMove undoes exactly what ApplyMove applied.
*/

package corvid

import "math/rand/v2"

var (
	// pieceKeys[piece][square], piece indexed per the colored-Piece
	// constants in types.go (WPawn..BKing).
	pieceKeys [12][64]uint64
	// epFileKeys[file] covers the eight files an en-passant target can sit
	// on; only ever XORed in while epSquare != -1.
	epFileKeys [8]uint64
	// castlingKeys is indexed directly by the CastlingRights bitmask; a
	// rights change XORs out the old mask's key and XORs in the new one's.
	castlingKeys  [16]uint64
	sideToMoveKey uint64
)

func init() {
	rng := rand.New(rand.NewPCG(0x9E3779B97F4A7C15, 0xBF58476D1CE4E5B9))
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			pieceKeys[p][sq] = rng.Uint64()
		}
	}
	for f := 0; f < 8; f++ {
		epFileKeys[f] = rng.Uint64()
	}
	for c := 0; c < 16; c++ {
		castlingKeys[c] = rng.Uint64()
	}
	sideToMoveKey = rng.Uint64()
}

// zobristKey computes a position's hash from scratch. Used to set
// Board.hash when a Board is built directly (e.g. by ParseFEN) rather than
// via incremental updates.
func zobristKey(b *Board) uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			key ^= pieceKeys[p][sq]
		}
	}
	if b.epSquare != -1 {
		key ^= epFileKeys[b.epSquare%8]
	}
	key ^= castlingKeys[b.castleRights]
	if b.turn == ColorBlack {
		key ^= sideToMoveKey
	}
	return key
}
