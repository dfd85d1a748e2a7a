// Solves Mijnlieff: prints the number of game states analysed, the time
// taken, and the result under perfect play.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mijnlieff/solver/game"
	"github.com/mijnlieff/solver/negamax"
	"github.com/mijnlieff/solver/rules"
)

var profilePath = flag.String("profilepath", "", "path for profile")
var threads = flag.Int("threads", 1, "concurrent root sub-searches; >1 makes node counts non-reproducible")
var useTT = flag.Bool("tt", false, "use a transposition table")
var firstWin = flag.Bool("firstwin", false, "search only for the sign of the result")
var debug = flag.Bool("debug", false, "debug logging")

func main() {
	flag.Parse()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *profilePath != "" {
		f, err := os.Create(*profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	g := game.NewGame(rules.Standard())
	s := new(negamax.Solver)
	if err := s.Init(g); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	s.SetThreads(*threads)
	s.SetTranspositionTableOptim(*useTT)
	s.SetFirstWinOptim(*firstWin)

	start := time.Now()
	value, err := s.Solve(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	fmt.Printf("Analysed %d games in %d seconds\n",
		s.Nodes(), int(time.Since(start).Seconds()))

	var outcome string
	switch negamax.VerdictOf(value) {
	case negamax.Win:
		outcome = "win for the first player"
	case negamax.Loss:
		outcome = "win for the second player"
	default:
		outcome = "draw"
	}
	fmt.Printf("Mijnlieff is a %s with perfect play\n", outcome)
}
