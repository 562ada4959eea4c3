/*
Package render draws a Board as an SVG diagram, for tooling and test-failure
debugging where a FEN string is harder to read at a glance than a picture.

No example in the retrieval set uses this package's author's own chess code
for this; the squareSize/light-dark coloring scheme here is this package's
own and is deliberately plain (a checkerboard plus Unicode piece glyphs), built
on top of github.com/ajstarks/svgo the way a small utility program would.
*/
package render

import (
	"io"

	"github.com/ajstarks/svgo"

	"github.com/corvidchess/corvid"
)

const (
	squareSize = 60
	boardSize  = squareSize * 8
)

var lightSquare = "fill:#eeeed2"
var darkSquare = "fill:#769656"

// pieceGlyph is the Unicode chess symbol for each colored piece, used as SVG
// text content rather than an external image asset.
var pieceGlyph = [12]string{
	"♙", "♟", // pawn
	"♘", "♞", // knight
	"♗", "♝", // bishop
	"♖", "♜", // rook
	"♕", "♛", // queen
	"♔", "♚", // king
}

// Board writes b as an SVG board diagram to w.
func Board(w io.Writer, b *corvid.Board) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			style := lightSquare
			if (rank+file)%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, style)

			sq := rank*8 + file
			if p := b.PieceAt(sq); p != corvid.NoPiece {
				canvas.Text(x+squareSize/2, y+squareSize*2/3, pieceGlyph[p],
					"text-anchor:middle;font-size:36px")
			}
		}
	}

	canvas.End()
}
