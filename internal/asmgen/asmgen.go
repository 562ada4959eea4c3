// Command asmgen generates architecture-specific popcount/lsb assembly that
// this package could fall back to on platforms where math/bits does not
// inline to a single instruction. It is not part of the corvid build; it is run by
// hand (go run internal/asmgen/asmgen.go -out bitutil_amd64.s) whenever the
// generated file needs regenerating, per the go:generate directive in
// bitutil.go.
//
// There is currently no hand-written fallback checked in: math/bits covers
// every architecture the project targets (see bitutil.go), so this program
// has never been run against a release. It stays in the tree as the
// documented path for the day a target architecture needs one.
package main

import (
	. "github.com/mmcloughlin/avo/build"
)

func main() {
	TEXT("popcount64", NOSPLIT, "func(b uint64) int")
	Doc("popcount64 counts the set bits of b using the POPCNT instruction.")
	x := Load(Param("b"), GP64())
	y := GP64()
	POPCNTQ(x, y)
	Store(y, ReturnIndex(0))
	RET()

	TEXT("trailingZeros64", NOSPLIT, "func(b uint64) int")
	Doc("trailingZeros64 returns the index of the least significant set bit of b using TZCNT.")
	a := Load(Param("b"), GP64())
	out := GP64()
	TZCNTQ(a, out)
	Store(out, ReturnIndex(0))
	RET()

	Generate()
}
