// Command corvid-render draws a FEN position to an SVG file on stdout.
package main

import (
	"flag"
	"os"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid"
	"github.com/corvidchess/corvid/render"
)

var log = logging.MustGetLogger("corvid-render")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
}

func main() {
	fen := flag.String("fen", corvid.InitialPosFEN, "FEN of the position to render")
	flag.Parse()

	b, err := corvid.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	render.Board(os.Stdout, &b)
}
