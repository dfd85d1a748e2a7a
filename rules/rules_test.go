package rules

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mijnlieff/solver/board"
	"github.com/mijnlieff/solver/tiles"
)

func TestStandard(t *testing.T) {
	is := is.New(t)
	r := Standard()
	is.Equal(len(r.Scorer.Lines()), 24)
	is.Equal(r.PermanentBlock, board.BitBoard(0))
	is.Equal(r.InitialHand, [tiles.NumKinds]uint8{2, 2, 2, 2})
	is.Equal(r.InitialUnavailable, board.BitBoard(0xFFFC))
}

func TestPreferencesArePermutations(t *testing.T) {
	is := is.New(t)
	r := Standard()
	var squares [board.NumSquares]bool
	for _, sq := range r.SquarePreference {
		is.True(!squares[sq])
		squares[sq] = true
	}
	var kinds [tiles.NumKinds]bool
	for _, k := range r.KindPreference {
		is.True(!kinds[k])
		kinds[k] = true
	}
}

// The standard first-move mask leaves open one corner and one edge square.
// Their orbit under the board's symmetry group must be exactly the twelve
// edge squares, which is what makes the reduction sound: every legal first
// move is a rotation or reflection of one of the two representatives.
func TestInitialUnavailableIsSymmetryReduced(t *testing.T) {
	is := is.New(t)
	open := ^Standard().InitialUnavailable
	is.Equal(open.Count(), 2)

	orbit := board.BitBoard(0)
	for tr := 0; tr < board.NumSymmetries; tr++ {
		orbit |= open.Transform(tr)
	}

	edges := board.BitBoard(0)
	for sq := 0; sq < board.NumSquares; sq++ {
		r, c := board.Row(sq), board.Col(sq)
		if r == 0 || r == board.Dim-1 || c == 0 || c == board.Dim-1 {
			edges = edges.With(sq)
		}
	}
	is.Equal(orbit, edges)
}
