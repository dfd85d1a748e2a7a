// Package rules holds the compiled rule set for a board: the scoring lines,
// the tile placement masks, the move-ordering preferences and the first-move
// restriction. A Rules value is built once at startup and passed by
// reference; nothing in it is mutated afterwards. Alternative boards are
// selected by constructing a different Rules value at compile time, never by
// runtime configuration.
package rules

import (
	"github.com/mijnlieff/solver/board"
	"github.com/mijnlieff/solver/tiles"
)

// InitialTilesPerKind is how many tiles of each kind a player starts with on
// the standard board.
const InitialTilesPerKind = 2

// StandardInitialUnavailable is the first-move mask for the standard board.
// The rules restrict the first move to the twelve edge squares, and every
// edge square is a rotation or reflection of either corner square 0 or edge
// square 1, so for the solve only those two representatives are left open.
const StandardInitialUnavailable board.BitBoard = 0b1111_1111_1111_1100

// StandardSquarePreference is the order in which squares are searched.
//
// For 7 of the 8 possible first moves a winning response is to play a Pusher
// in a central square, and central squares give more scoring opportunities
// throughout the game, so central squares are tried first. For the remaining
// first move (a Straight in a corner) the winning response is a Straight in
// another corner, so corners are tried next, then everything else in order.
var StandardSquarePreference = [board.NumSquares]uint8{5, 6, 9, 10, 3, 15, 12, 0, 1, 2, 4, 7, 8, 11, 13, 14}

// StandardKindPreference is the order in which tile kinds are searched.
// Pushers first and Straights second, for the same reasons as the square
// order; Pullers last as they are the least useful for holding the centre
// early on.
var StandardKindPreference = [tiles.NumKinds]tiles.Kind{tiles.Pusher, tiles.Straight, tiles.Diagonal, tiles.Puller}

// Rules is an immutable rule set.
type Rules struct {
	// Scorer evaluates positions against this board's scoring lines.
	Scorer *board.Scorer

	// SquarePreference and KindPreference fix the order in which legal
	// moves are generated. Any order yields the same game value; the order
	// only affects how early the search can prune.
	SquarePreference [board.NumSquares]uint8
	KindPreference   [tiles.NumKinds]tiles.Kind

	// InitialUnavailable is the unavailable mask before the first move. It
	// carries both the first-move rule and the symmetry reduction.
	InitialUnavailable board.BitBoard

	// PermanentBlock is the set of squares that can never be played. It is
	// folded into the unavailable mask after every move. Empty on the
	// standard board.
	PermanentBlock board.BitBoard

	// InitialHand is the number of tiles of each kind dealt to each player.
	InitialHand [tiles.NumKinds]uint8
}

// Standard returns the rule set for the standard Mijnlieff board.
func Standard() *Rules {
	return &Rules{
		Scorer:             board.NewScorer(board.Lines),
		SquarePreference:   StandardSquarePreference,
		KindPreference:     StandardKindPreference,
		InitialUnavailable: StandardInitialUnavailable,
		InitialHand: [tiles.NumKinds]uint8{
			InitialTilesPerKind, InitialTilesPerKind, InitialTilesPerKind, InitialTilesPerKind,
		},
	}
}
