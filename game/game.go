// Package game implements the Mijnlieff game state: the position, both
// players' hands, the side to move and the unavailable-squares mask. Moves
// are applied and taken back in place through an undo stack, so the search
// can walk the whole tree on a single Game with no per-node allocation.
package game

import (
	"fmt"

	"github.com/mijnlieff/solver/board"
	"github.com/mijnlieff/solver/move"
	"github.com/mijnlieff/solver/rules"
	"github.com/mijnlieff/solver/tiles"
)

// MaxConsecutivePasses ends the game once both players pass in a row. On the
// standard board a pass is always followed by a placement, but a permanent
// blocklist can lock both players out of the remaining squares; two passes in
// a row means nobody will ever place again.
const MaxConsecutivePasses = 2

// MaxTurns bounds the length of any game: every placement is separated by at
// most one pass, so a game can never exceed twice the total tile count plus
// a trailing pass. Used to pre-size the undo stack.
const MaxTurns = 2*2*tiles.NumKinds*rules.InitialTilesPerKind + 1

// A Hand counts the tiles a player still holds, by kind.
type Hand [tiles.NumKinds]uint8

// Empty returns whether the hand holds no tiles at all.
func (h Hand) Empty() bool {
	return h[0]|h[1]|h[2]|h[3] == 0
}

// Has returns whether the hand holds at least one tile of the given kind.
func (h Hand) Has(kind tiles.Kind) bool {
	return h[kind] > 0
}

// Total returns the number of tiles in the hand.
func (h Hand) Total() int {
	return int(h[0]) + int(h[1]) + int(h[2]) + int(h[3])
}

type stateBackup struct {
	lastMove          move.Move
	unavailable       board.BitBoard
	consecutivePasses uint8
}

// A Game is the complete mutable state of a Mijnlieff game in progress.
type Game struct {
	rules *rules.Rules

	pos         board.Position
	hands       [2]Hand
	onturn      int
	unavailable board.BitBoard

	consecutivePasses uint8

	stateStack []stateBackup
}

// NewGame returns the initial state for the given rule set: empty board, full
// hands, player 0 to move, with the rule set's first-move mask in force.
func NewGame(r *rules.Rules) *Game {
	g := &Game{
		rules:       r,
		unavailable: r.InitialUnavailable,
		stateStack:  make([]stateBackup, 0, MaxTurns),
	}
	g.hands[0] = r.InitialHand
	g.hands[1] = r.InitialHand
	return g
}

// Rules returns the rule set the game was created with.
func (g *Game) Rules() *rules.Rules {
	return g.rules
}

// SetStateStackLength pre-sizes the undo stack for searches of up to n plies.
func (g *Game) SetStateStackLength(n int) {
	if cap(g.stateStack) < n {
		stack := make([]stateBackup, len(g.stateStack), n)
		copy(stack, g.stateStack)
		g.stateStack = stack
	}
}

// Copy returns a deep copy with an empty undo stack, for share-nothing
// parallel sub-searches.
func (g *Game) Copy() *Game {
	c := &Game{
		rules:             g.rules,
		pos:               g.pos,
		hands:             g.hands,
		onturn:            g.onturn,
		unavailable:       g.unavailable,
		consecutivePasses: g.consecutivePasses,
		stateStack:        make([]stateBackup, 0, MaxTurns),
	}
	return c
}

// PlayerOnTurn returns the player to move (0 or 1).
func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

// HandFor returns the given player's hand.
func (g *Game) HandFor(player int) Hand {
	return g.hands[player]
}

// Position returns the current position. The returned pointer must be
// treated as read-only.
func (g *Game) Position() *board.Position {
	return &g.pos
}

// Unavailable returns the current unavailable-squares mask: the restriction
// imposed by the latest move plus the permanent blocklist. It never depends
// on earlier history.
func (g *Game) Unavailable() board.BitBoard {
	return g.unavailable
}

// ConsecutivePasses returns how many passes immediately precede this state.
func (g *Game) ConsecutivePasses() int {
	return int(g.consecutivePasses)
}

// Playing returns whether the game is still in progress. The game ends when
// the side to move has played out their hand, or after two passes in a row.
func (g *Game) Playing() bool {
	return !g.hands[g.onturn].Empty() && g.consecutivePasses < MaxConsecutivePasses
}

// MustPass returns whether the side to move holds tiles but has no square to
// put them on.
func (g *Game) MustPass() bool {
	return !g.hands[g.onturn].Empty() && (g.pos.Occupied()|g.unavailable).IsFull()
}

// LegalMoves appends every legal placement to buf and returns it, iterating
// squares and kinds in the rule set's preference order. A move is legal iff
// the square is unoccupied, the square is not in the unavailable mask, and
// the mover holds a tile of the kind. An empty result with a non-empty hand
// means the mover is forced to pass.
func (g *Game) LegalMoves(buf []move.Move) []move.Move {
	hand := g.hands[g.onturn]
	if hand.Empty() {
		return buf
	}
	blocked := g.pos.Occupied() | g.unavailable
	for _, sq := range g.rules.SquarePreference {
		if blocked.Occupied(int(sq)) {
			continue
		}
		for _, kind := range g.rules.KindPreference {
			if hand.Has(kind) {
				buf = append(buf, move.NewPlace(kind, int(sq)))
			}
		}
	}
	return buf
}

// PlayMove applies a move in place. Legality is the caller's contract; it is
// not re-checked here, except for the occupancy invariant enforced by the
// position itself. The unavailable mask is replaced, never accumulated: a
// placement installs its kind's forbidden mask plus the permanent blocklist,
// and a pass leaves only the permanent blocklist.
func (g *Game) PlayMove(m move.Move) {
	g.stateStack = append(g.stateStack, stateBackup{
		lastMove:          m,
		unavailable:       g.unavailable,
		consecutivePasses: g.consecutivePasses,
	})
	if m.Action() == move.MoveTypePass {
		g.unavailable = g.rules.PermanentBlock
		g.consecutivePasses++
	} else {
		g.pos.Place(m.Square(), g.onturn, m.Kind())
		g.hands[g.onturn][m.Kind()]--
		g.unavailable = rules.ForbiddenMask(m.Kind(), m.Square()) | g.rules.PermanentBlock
		g.consecutivePasses = 0
	}
	g.onturn = 1 - g.onturn
}

// UnplayLastMove restores the state exactly as it was before the last
// PlayMove. Unplaying with an empty stack is a contract violation.
func (g *Game) UnplayLastMove() {
	n := len(g.stateStack) - 1
	if n < 0 {
		panic("no move to unplay")
	}
	backup := g.stateStack[n]
	g.stateStack = g.stateStack[:n]
	g.onturn = 1 - g.onturn
	if backup.lastMove.Action() == move.MoveTypePlay {
		m := backup.lastMove
		g.pos.Remove(m.Square(), g.onturn, m.Kind())
		g.hands[g.onturn][m.Kind()]++
	}
	g.unavailable = backup.unavailable
	g.consecutivePasses = backup.consecutivePasses
}

// LastMove returns the most recently played move, if any.
func (g *Game) LastMove() (move.Move, bool) {
	if len(g.stateStack) == 0 {
		return move.Move{}, false
	}
	return g.stateStack[len(g.stateStack)-1].lastMove, true
}

// Turn returns the number of moves played so far.
func (g *Game) Turn() int {
	return len(g.stateStack)
}

// ScoreFor returns the given player's current score.
func (g *Game) ScoreFor(player int) int {
	return g.rules.Scorer.Score(&g.pos, player)
}

// SpreadFor returns the score differential from the given player's
// perspective.
func (g *Game) SpreadFor(player int) int {
	return g.ScoreFor(player) - g.ScoreFor(1-player)
}

// CurrentSpread returns the score differential for the side to move. At a
// terminal state its sign is the game outcome.
func (g *Game) CurrentSpread() int {
	return g.SpreadFor(g.onturn)
}

// String renders the game for debugging.
func (g *Game) String() string {
	return fmt.Sprintf("%s\nhands: %v %v, on turn: %d, unavailable:\n%s",
		g.pos.ToDisplayText(), g.hands[0], g.hands[1], g.onturn,
		g.unavailable.ToDisplayText())
}
