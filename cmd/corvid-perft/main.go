// Command corvid-perft runs the performance test (node-counting) walk
// against a position, either to verify the move generator against known
// reference counts or to benchmark it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/corvidchess/corvid"
	"github.com/corvidchess/corvid/internal/perft"
)

var log = logging.MustGetLogger("corvid-perft")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{message}`,
	)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
}

// config is the optional TOML configuration file format, for callers who
// would rather check in a perft.toml than repeat flags.
type config struct {
	FEN      string `toml:"fen"`
	Depth    int    `toml:"depth"`
	Divide   bool   `toml:"divide"`
	Parallel bool   `toml:"parallel"`
}

func main() {
	cfgPath := flag.String("config", "", "path to a TOML config file (overrides other flags when set)")
	fen := flag.String("fen", corvid.InitialPosFEN, "FEN of the position to search")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move subtree counts instead of just the total")
	parallel := flag.Bool("parallel", false, "fan out the root moves across goroutines when dividing")
	cpuProfile := flag.Bool("cpuprofile", false, "enable CPU profiling for the run (writes cpu.pprof to the working directory)")
	memProfile := flag.Bool("memprofile", false, "enable heap profiling for the run (writes mem.pprof to the working directory)")
	flag.Parse()

	cfg := config{FEN: *fen, Depth: *depth, Divide: *divide, Parallel: *parallel}
	if *cfgPath != "" {
		if _, err := toml.DecodeFile(*cfgPath, &cfg); err != nil {
			log.Fatalf("reading config %s: %v", *cfgPath, err)
		}
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *memProfile {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	b, err := corvid.ParseFEN(cfg.FEN)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", cfg.FEN, err)
	}

	log.Infof("perft depth=%d fen=%q divide=%v parallel=%v", cfg.Depth, cfg.FEN, cfg.Divide, cfg.Parallel)

	switch {
	case cfg.Divide && cfg.Parallel:
		entries, err := parallelDivide(&b, cfg.Depth)
		if err != nil {
			log.Fatalf("parallel divide: %v", err)
		}
		fmt.Print(perft.FormatDivide(entries))
	case cfg.Divide:
		fmt.Print(perft.FormatDivide(perft.Divide(&b, cfg.Depth)))
	default:
		nodes := perft.Count(&b, cfg.Depth)
		fmt.Printf("Nodes searched: %d\n", nodes)
	}
}

// parallelDivide runs perft.Divide's per-root-move work concurrently, one
// goroutine per root move, each operating on its own copy of b (Board is a
// plain value type, so a by-value capture is already an independent clone),
// and waits on an errgroup until every branch has finished.
func parallelDivide(b *corvid.Board, depth int) ([]perft.DivideEntry, error) {
	roots := perft.RootMoves(b)
	entries := make([]perft.DivideEntry, len(roots))

	g, _ := errgroup.WithContext(context.Background())
	for i, m := range roots {
		i, m := i, m
		clone := *b
		g.Go(func() error {
			u := corvid.ApplyMove(&clone, m)
			nodes := 1
			if depth > 1 {
				nodes = perft.Count(&clone, depth-1)
			}
			corvid.RevertMove(&clone, m, u)
			entries[i] = perft.DivideEntry{UCI: corvid.MoveToUCI(m), Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
