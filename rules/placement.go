package rules

import (
	"github.com/mijnlieff/solver/board"
	"github.com/mijnlieff/solver/tiles"
)

// forbidden[kind][sq] is the set of squares the opponent may not play on
// after the given kind was placed on the given square: the complement of the
// kind's geometric relation. The played square itself is always in the mask.
var forbidden [tiles.NumKinds][board.NumSquares]board.BitBoard

func init() {
	for sq := 0; sq < board.NumSquares; sq++ {
		r, c := board.Row(sq), board.Col(sq)
		for other := 0; other < board.NumSquares; other++ {
			or, oc := board.Row(other), board.Col(other)
			dr, dc := or-r, oc-c
			if dr < 0 {
				dr = -dr
			}
			if dc < 0 {
				dc = -dc
			}
			adjacent := other != sq && dr <= 1 && dc <= 1
			if !adjacent {
				forbidden[tiles.Puller][sq] = forbidden[tiles.Puller][sq].With(other)
			}
			if adjacent || other == sq {
				forbidden[tiles.Pusher][sq] = forbidden[tiles.Pusher][sq].With(other)
			}
			if other == sq || (dr != 0 && dc != 0) {
				forbidden[tiles.Straight][sq] = forbidden[tiles.Straight][sq].With(other)
			}
			if other == sq || dr != dc {
				forbidden[tiles.Diagonal][sq] = forbidden[tiles.Diagonal][sq].With(other)
			}
		}
	}
}

// ForbiddenMask returns the squares forbidden for the next placement after
// the given kind was played on the given square. Pure table lookup.
func ForbiddenMask(kind tiles.Kind, sq int) board.BitBoard {
	return forbidden[kind][sq]
}
