/*
Package perft implements the performance-test walk used throughout this
module's test suite and by the corvid-perft command: given a position and a
depth, count the number of leaf nodes in the strictly-legal move tree.

See https://www.chessprogramming.org/Perft_Results.
*/
package perft

import (
	"strconv"
	"strings"

	"github.com/corvidchess/corvid"
)

// Count walks the legal-move tree of b to the given depth and returns the
// number of leaf nodes. depth must be >= 1. b is mutated and restored in
// place via corvid.ApplyMove/RevertMove rather than copied, matching this
// module's make/unmake contract.
func Count(b *corvid.Board, depth int) int {
	var moves corvid.MoveList
	corvid.GenAllLegalMoves(b, &moves)

	if depth == 1 {
		return moves.Count
	}

	nodes := 0
	for i := 0; i < moves.Count; i++ {
		m := moves.Moves[i]
		u := corvid.ApplyMove(b, m)
		nodes += Count(b, depth-1)
		corvid.RevertMove(b, m, u)
	}
	return nodes
}

// DivideEntry is one root move's contribution to a Divide call.
type DivideEntry struct {
	UCI   string
	Nodes int
}

// Divide returns, for every legal root move in b, the subtree node count at
// depth-1 below it — the standard "perft divide" debugging aid for locating
// a move generator bug against a reference engine's per-move breakdown.
func Divide(b *corvid.Board, depth int) []DivideEntry {
	var moves corvid.MoveList
	corvid.GenAllLegalMoves(b, &moves)

	entries := make([]DivideEntry, moves.Count)
	for i := 0; i < moves.Count; i++ {
		m := moves.Moves[i]
		u := corvid.ApplyMove(b, m)
		var nodes int
		if depth == 1 {
			nodes = 1
		} else {
			nodes = Count(b, depth-1)
		}
		corvid.RevertMove(b, m, u)
		entries[i] = DivideEntry{UCI: corvid.MoveToUCI(m), Nodes: nodes}
	}
	return entries
}

// RootMoves returns the legal root moves of b, for callers (such as the
// parallel divide in cmd/corvid-perft) that want to fan each one out to its
// own goroutine with its own cloned Board.
func RootMoves(b *corvid.Board) []corvid.Move {
	var moves corvid.MoveList
	corvid.GenAllLegalMoves(b, &moves)
	out := make([]corvid.Move, moves.Count)
	copy(out, moves.Moves[:moves.Count])
	return out
}

// FormatDivide renders divide entries the way reference perft tools do:
// one "<uci>: <count>" line per root move, followed by a total line.
func FormatDivide(entries []DivideEntry) string {
	var sb strings.Builder
	total := 0
	for _, e := range entries {
		sb.WriteString(e.UCI)
		sb.WriteString(": ")
		sb.WriteString(strconv.Itoa(e.Nodes))
		sb.WriteByte('\n')
		total += e.Nodes
	}
	sb.WriteString("\nNodes searched: ")
	sb.WriteString(strconv.Itoa(total))
	sb.WriteByte('\n')
	return sb.String()
}
