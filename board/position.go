package board

import (
	"fmt"

	"github.com/mijnlieff/solver/tiles"
)

// Scores awarded per completed line. A line counts only when one player
// occupies all three of its squares: the larger score when the three tiles
// share a kind, the smaller when the three kinds are pairwise distinct, and
// nothing for a two-and-one mix.
const (
	SameKindLineScore  = 2
	MixedKindLineScore = 1
)

// tripleScore maps the kinds on a completed line to its score contribution.
var tripleScore [tiles.NumKinds][tiles.NumKinds][tiles.NumKinds]int

func init() {
	for a := 0; a < tiles.NumKinds; a++ {
		for b := 0; b < tiles.NumKinds; b++ {
			for c := 0; c < tiles.NumKinds; c++ {
				switch {
				case a == b && b == c:
					tripleScore[a][b][c] = SameKindLineScore
				case a != b && b != c && a != c:
					tripleScore[a][b][c] = MixedKindLineScore
				}
			}
		}
	}
}

// A Scorer evaluates positions against a fixed set of scoring lines. It is
// immutable once built and safe for concurrent use.
type Scorer struct {
	lines       []BitBoard
	lineSquares [][3]uint8
}

// NewScorer precomputes the square triples for the given line masks. Every
// line must contain exactly three squares.
func NewScorer(lines []BitBoard) *Scorer {
	sc := &Scorer{
		lines:       lines,
		lineSquares: make([][3]uint8, len(lines)),
	}
	for i, line := range lines {
		if line.Count() != 3 {
			panic(fmt.Sprintf("line %d (%#04x) does not have exactly 3 squares", i, uint16(line)))
		}
		n := 0
		for sq := 0; sq < NumSquares; sq++ {
			if line.Occupied(sq) {
				sc.lineSquares[i][n] = uint8(sq)
				n++
			}
		}
	}
	return sc
}

// Lines returns the line masks the scorer was built from.
func (sc *Scorer) Lines() []BitBoard {
	return sc.lines
}

// Score returns the given player's score: the sum of line contributions over
// all lines fully occupied by that player. It is a pure function of the
// position and is recomputed on every call rather than cached.
func (sc *Scorer) Score(p *Position, player int) int {
	occ := p.occ[player]
	total := 0
	for i, line := range sc.lines {
		if occ&line != line {
			continue
		}
		sqs := sc.lineSquares[i]
		total += tripleScore[p.kindAt(player, int(sqs[0]))][p.kindAt(player, int(sqs[1]))][p.kindAt(player, int(sqs[2]))]
	}
	return total
}

// A Position holds both players' tiles: one BitBoard per (player, kind), plus
// the per-player occupancy unions. It has value semantics; Place and Remove
// are exact inverses so the search can backtrack in place.
type Position struct {
	kinds [2][tiles.NumKinds]BitBoard
	occ   [2]BitBoard
}

// Occupied returns the set of squares occupied by either player.
func (p *Position) Occupied() BitBoard {
	return p.occ[0] | p.occ[1]
}

// OccupiedBy returns the set of squares occupied by the given player.
func (p *Position) OccupiedBy(player int) BitBoard {
	return p.occ[player]
}

// KindBoard returns the squares where the given player has played the given
// kind.
func (p *Position) KindBoard(player int, kind tiles.Kind) BitBoard {
	return p.kinds[player][kind]
}

// Place marks a square as occupied by the given player's tile. Placing on an
// occupied square is a contract violation.
func (p *Position) Place(sq, player int, kind tiles.Kind) {
	if p.Occupied().Occupied(sq) {
		panic(fmt.Sprintf("square %d is already occupied", sq))
	}
	p.kinds[player][kind] = p.kinds[player][kind].With(sq)
	p.occ[player] = p.occ[player].With(sq)
}

// Remove undoes a Place. Removing anything other than the exact tile placed
// is a contract violation.
func (p *Position) Remove(sq, player int, kind tiles.Kind) {
	if !p.kinds[player][kind].Occupied(sq) {
		panic(fmt.Sprintf("square %d does not hold a %v for player %d", sq, kind, player))
	}
	p.kinds[player][kind] = p.kinds[player][kind].Without(sq)
	p.occ[player] = p.occ[player].Without(sq)
}

// OccupantOf reports which player and kind occupy a square, if any.
func (p *Position) OccupantOf(sq int) (player int, kind tiles.Kind, ok bool) {
	for pl := 0; pl < 2; pl++ {
		if !p.occ[pl].Occupied(sq) {
			continue
		}
		for _, k := range tiles.AllKinds {
			if p.kinds[pl][k].Occupied(sq) {
				return pl, k, true
			}
		}
	}
	return 0, 0, false
}

func (p *Position) kindAt(player, sq int) tiles.Kind {
	for _, k := range tiles.AllKinds {
		if p.kinds[player][k].Occupied(sq) {
			return k
		}
	}
	panic(fmt.Sprintf("player %d does not occupy square %d", player, sq))
}
