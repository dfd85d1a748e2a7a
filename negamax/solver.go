// Package negamax exhaustively solves a Mijnlieff game by negamax search
// with alpha-beta pruning.
package negamax

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/mijnlieff/solver/game"
	"github.com/mijnlieff/solver/move"
	"github.com/mijnlieff/solver/zobrist"
)

// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    childNodes := orderMoves(childNodes)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
(* Initial call for Player A's root node *)
negamax(rootNode, depth, −∞, +∞, 1)
**/

const HugeNumber = int16(32767)

// maxBranching bounds the number of legal moves from any state.
const maxBranching = 64

var ErrNotSolved = errors.New("no game has been solved yet")

// Solver computes the exact game value of a position under perfect play,
// together with the total number of states visited. Unlike a depth-limited
// engine there is no evaluation heuristic and no iterative deepening: every
// line is searched to the end of the game, so the returned value is exact.
type Solver struct {
	game    *game.Game
	zobrist *zobrist.Zobrist
	ttable  *TranspositionTable

	// firstWinOptim: search a unit window around zero, so the result is
	// exact only in sign. Finds the winner faster than the full value.
	firstWinOptim           bool
	transpositionTableOptim bool
	ttMemFraction           float64

	threads int
	nodes   atomic.Uint64

	// moveBufs[thread][ply] is a reusable legal-move buffer, so move
	// generation on the hot path does not allocate.
	moveBufs [][][]move.Move

	rootValue int16
	solved    bool

	logStream io.Writer
}

// Init initializes the solver for the given game. The game must be at the
// state to be solved; the solver owns it for the duration of Solve.
func (s *Solver) Init(g *game.Game) error {
	s.game = g
	s.zobrist = &zobrist.Zobrist{}
	s.zobrist.Initialize()
	s.ttable = &TranspositionTable{}
	s.ttable.SetSingleThreadedMode()
	s.threads = 1
	s.transpositionTableOptim = false
	s.ttMemFraction = 0.25
	s.firstWinOptim = false
	return nil
}

// SetThreads sets the number of concurrent root sub-searches. With n < 2 the
// search is a single sequential traversal, which also makes the reported
// node count reproducible run to run.
func (s *Solver) SetThreads(n int) {
	if n < 2 {
		s.threads = 1
	} else {
		s.threads = n
	}
}

// SetTranspositionTableOptim enables the transposition table. It never
// changes the computed value, only the number of nodes visited.
func (s *Solver) SetTranspositionTableOptim(tt bool) {
	s.transpositionTableOptim = tt
}

// SetTranspositionTable replaces the table, mainly so tests can share one.
func (s *Solver) SetTranspositionTable(tt *TranspositionTable) {
	s.ttable = tt
}

// SetTTMemFraction sets the fraction of system memory the transposition
// table is sized to. The table never goes below its minimum size.
func (s *Solver) SetTTMemFraction(f float64) {
	s.ttMemFraction = f
}

// SetFirstWinOptim restricts the search window to the sign of the result.
func (s *Solver) SetFirstWinOptim(w bool) {
	s.firstWinOptim = w
}

// SetLogStream directs a human-readable trace of the search to w. Only
// usable for very small boards; the standard board visits over a billion
// states.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

// Game returns the game the solver was initialized with.
func (s *Solver) Game() *game.Game {
	return s.game
}

// Nodes returns the number of states visited by the last Solve.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Value returns the game value computed by the last Solve.
func (s *Solver) Value() (int16, error) {
	if !s.solved {
		return 0, ErrNotSolved
	}
	return s.rootValue, nil
}

// Verdict returns the outcome for the player on turn at the solved state.
func (s *Solver) Verdict() (Verdict, error) {
	if !s.solved {
		return Draw, ErrNotSolved
	}
	return VerdictOf(s.rootValue), nil
}

// Solve runs the search to completion and returns the exact game value from
// the perspective of the player on turn. The only error paths are context
// cancellation and calling Solve before Init; there is no partial result.
func (s *Solver) Solve(ctx context.Context) (int16, error) {
	if s.game == nil {
		return 0, errors.New("solver not initialized")
	}
	tstart := time.Now()
	s.solved = false
	s.nodes.Store(0)

	totalTiles := s.game.HandFor(0).Total() + s.game.HandFor(1).Total()
	maxPlies := 2*totalTiles + 2
	s.game.SetStateStackLength(maxPlies)

	if s.transpositionTableOptim {
		if s.threads > 1 {
			s.ttable.SetMultiThreadedMode()
		} else {
			s.ttable.SetSingleThreadedMode()
		}
		s.ttable.Reset(s.ttMemFraction)
	}

	α := -HugeNumber
	β := HugeNumber
	if s.firstWinOptim {
		// Search a very small window centered around 0. We're just trying
		// to find something that surpasses it.
		α = -1
		β = 1
	}

	g := &errgroup.Group{}
	done := make(chan bool)
	g.Go(func() error {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		var lastNodes uint64
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				nodes := s.nodes.Load()
				log.Debug().Uint64("nps", nodes-lastNodes).Msg("nodes-per-second")
				lastNodes = nodes
			}
		}
	})

	var val int16
	var err error
	if s.threads > 1 {
		val, err = s.solveParallelRoot(ctx, maxPlies, α, β)
	} else {
		s.makeMoveBufs(1, maxPlies)
		val, err = s.negamax(ctx, s.game, s.zobrist.Hash(s.game), α, β, 0, 0)
	}
	close(done)
	if werr := g.Wait(); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		return 0, err
	}

	s.rootValue = val
	s.solved = true
	ev := log.Info().
		Int16("value", val).
		Uint64("nodes", s.nodes.Load()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds())
	if s.transpositionTableOptim {
		ev = ev.
			Uint64("ttable-created", s.ttable.created.Load()).
			Uint64("ttable-lookups", s.ttable.lookups.Load()).
			Uint64("ttable-hits", s.ttable.hits.Load()).
			Uint64("ttable-t2collisions", s.ttable.t2collisions.Load())
	}
	ev.Msg("solve-returning")
	return val, nil
}

func (s *Solver) makeMoveBufs(nsets, maxPlies int) {
	s.moveBufs = make([][][]move.Move, nsets)
	for t := range s.moveBufs {
		s.moveBufs[t] = make([][]move.Move, maxPlies)
		for d := range s.moveBufs[t] {
			s.moveBufs[t][d] = make([]move.Move, 0, maxBranching)
		}
	}
}

type rootResult struct {
	m     move.Move
	value int16
}

// solveParallelRoot splits the first ply across goroutines. Each top-level
// move gets its own game copy and searches its subtree independently; the
// immutable tables are shared, nothing mutable is. Results are combined by
// simple reduction, so, unlike the sequential search, sibling subtrees do
// not tighten each other's windows.
func (s *Solver) solveParallelRoot(ctx context.Context, maxPlies int, α, β int16) (int16, error) {
	if !s.game.Playing() {
		s.nodes.Add(1)
		return int16(s.game.CurrentSpread()), nil
	}
	rootKey := s.zobrist.Hash(s.game)
	children := s.game.LegalMoves(make([]move.Move, 0, maxBranching))
	if len(children) == 0 {
		children = append(children, move.NewPass())
	}
	s.makeMoveBufs(len(children)+1, maxPlies)
	s.nodes.Add(1) // the root itself

	results := make([]rootResult, len(children))
	g := &errgroup.Group{}
	g.SetLimit(s.threads)
	for i, child := range children {
		i, child := i, child
		gc := s.game.Copy()
		gc.SetStateStackLength(maxPlies)
		prevUnavail := gc.Unavailable()
		prevPasses := gc.ConsecutivePasses()
		mover := gc.PlayerOnTurn()
		gc.PlayMove(child)
		childKey := s.zobrist.AddMove(rootKey, child, mover,
			prevUnavail, gc.Unavailable(), prevPasses, gc.ConsecutivePasses())
		g.Go(func() error {
			v, err := s.negamax(ctx, gc, childKey, -β, -α, 1, i+1)
			if err != nil {
				return err
			}
			results[i] = rootResult{m: child, value: -v}
			log.Debug().Str("move", child.ShortDescription()).
				Int16("value", -v).Msg("root-move-solved")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	best := lo.MaxBy(results, func(a, b rootResult) bool {
		return a.value > b.value
	})
	return best.value, nil
}

func (s *Solver) negamax(ctx context.Context, g *game.Game, nodeKey uint64, α, β int16, depth, thread int) (int16, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.nodes.Add(1)

	if !g.Playing() {
		return int16(g.CurrentSpread()), nil
	}

	alphaOrig := α
	if s.transpositionTableOptim {
		if entry := s.ttable.lookup(nodeKey); entry.valid() {
			score := entry.score
			switch entry.flag() {
			case TTExact:
				return score, nil
			case TTLower:
				α = max(α, score)
			case TTUpper:
				β = min(β, score)
			}
			if α >= β {
				return score, nil
			}
		}
	}

	children := g.LegalMoves(s.moveBufs[thread][depth][:0])
	if len(children) == 0 {
		// The mover holds tiles but every square is blocked: a forced pass,
		// after which the opponent may play on any unoccupied square.
		children = append(children, move.NewPass())
	}

	indent := 2 * depth
	if s.logStream != nil {
		fmt.Fprintf(s.logStream, "  %vplays:\n", strings.Repeat(" ", indent))
	}
	bestValue := -HugeNumber
	for _, child := range children {
		if s.logStream != nil {
			fmt.Fprintf(s.logStream, "  %v- play: %v\n", strings.Repeat(" ", indent), child.ShortDescription())
		}
		prevUnavail := g.Unavailable()
		prevPasses := g.ConsecutivePasses()
		mover := g.PlayerOnTurn()
		g.PlayMove(child)
		childKey := s.zobrist.AddMove(nodeKey, child, mover,
			prevUnavail, g.Unavailable(), prevPasses, g.ConsecutivePasses())
		value, err := s.negamax(ctx, g, childKey, -β, -α, depth+1, thread)
		g.UnplayLastMove()
		if err != nil {
			return 0, err
		}
		if -value > bestValue {
			bestValue = -value
		}
		if s.logStream != nil {
			fmt.Fprintf(s.logStream, "  %v  value: %v\n", strings.Repeat(" ", indent), -value)
			fmt.Fprintf(s.logStream, "  %v  α: %v\n", strings.Repeat(" ", indent), α)
			fmt.Fprintf(s.logStream, "  %v  β: %v\n", strings.Repeat(" ", indent), β)
		}
		α = max(α, bestValue)
		if bestValue >= β {
			break // beta cut-off
		}
	}

	if s.transpositionTableOptim {
		entry := TableEntry{score: bestValue}
		if bestValue <= alphaOrig {
			entry.flagByte = TTUpper
		} else if bestValue >= β {
			entry.flagByte = TTLower
		} else {
			entry.flagByte = TTExact
		}
		s.ttable.store(nodeKey, entry)
	}
	return bestValue, nil
}
