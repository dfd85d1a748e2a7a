// Package move defines the move value type consumed by the game and the
// solver.
package move

import (
	"fmt"

	"github.com/mijnlieff/solver/board"
	"github.com/mijnlieff/solver/tiles"
)

// MoveType is the type of a move: a tile placement or a forced pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypePass
)

// A Move is either the placement of a tile kind on a square, or a pass. The
// zero value is a placement of a Puller on square 0; use NewPlace and NewPass.
type Move struct {
	kind   tiles.Kind
	square uint8
	action MoveType
}

// NewPlace returns a placement move.
func NewPlace(kind tiles.Kind, square int) Move {
	return Move{kind: kind, square: uint8(square)}
}

// NewPass returns a pass move.
func NewPass() Move {
	return Move{action: MoveTypePass}
}

func (m Move) Action() MoveType {
	return m.action
}

// Kind returns the tile kind placed. Only meaningful for placements.
func (m Move) Kind() tiles.Kind {
	return m.kind
}

// Square returns the square played on. Only meaningful for placements.
func (m Move) Square() int {
	return int(m.square)
}

// Equals reports whether two moves are the same move.
func (m Move) Equals(o Move) bool {
	return m == o
}

// ShortDescription returns a compact human-readable form, e.g. "b1 Pusher".
func (m Move) ShortDescription() string {
	if m.action == MoveTypePass {
		return "(pass)"
	}
	return fmt.Sprintf("%s %v", board.SquareName(int(m.square)), m.kind)
}

func (m Move) String() string {
	return m.ShortDescription()
}
