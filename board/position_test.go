package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mijnlieff/solver/tiles"
)

func TestPlaceRemove(t *testing.T) {
	var p Position
	p.Place(5, 0, tiles.Pusher)
	p.Place(6, 1, tiles.Straight)

	player, kind, ok := p.OccupantOf(5)
	assert.True(t, ok)
	assert.Equal(t, 0, player)
	assert.Equal(t, tiles.Pusher, kind)

	player, kind, ok = p.OccupantOf(6)
	assert.True(t, ok)
	assert.Equal(t, 1, player)
	assert.Equal(t, tiles.Straight, kind)

	_, _, ok = p.OccupantOf(7)
	assert.False(t, ok)

	assert.Equal(t, BitBoard(0).With(5).With(6), p.Occupied())

	p.Remove(5, 0, tiles.Pusher)
	_, _, ok = p.OccupantOf(5)
	assert.False(t, ok)
	assert.Equal(t, Position{}, func() Position {
		q := p
		q.Remove(6, 1, tiles.Straight)
		return q
	}())
}

func TestPlaceOccupiedPanics(t *testing.T) {
	var p Position
	p.Place(5, 0, tiles.Pusher)
	assert.Panics(t, func() { p.Place(5, 1, tiles.Puller) })
	assert.Panics(t, func() { p.Remove(5, 0, tiles.Puller) })
	assert.Panics(t, func() { p.Remove(5, 1, tiles.Pusher) })
}

func fillLine(p *Position, line [3]int, player int, kinds [3]tiles.Kind) {
	for i, sq := range line {
		p.Place(sq, player, kinds[i])
	}
}

func TestScoreLineKinds(t *testing.T) {
	sc := NewScorer(Lines)

	// all three tiles of one kind: the larger score
	var p Position
	fillLine(&p, [3]int{0, 1, 2}, 0, [3]tiles.Kind{tiles.Pusher, tiles.Pusher, tiles.Pusher})
	assert.Equal(t, SameKindLineScore, sc.Score(&p, 0))
	assert.Equal(t, 0, sc.Score(&p, 1))

	// three pairwise distinct kinds: the smaller score
	p = Position{}
	fillLine(&p, [3]int{0, 1, 2}, 0, [3]tiles.Kind{tiles.Puller, tiles.Pusher, tiles.Straight})
	assert.Equal(t, MixedKindLineScore, sc.Score(&p, 0))

	// two of one kind and one of another: nothing
	p = Position{}
	fillLine(&p, [3]int{0, 1, 2}, 0, [3]tiles.Kind{tiles.Pusher, tiles.Pusher, tiles.Straight})
	assert.Equal(t, 0, sc.Score(&p, 0))

	// a line split between the players scores for neither
	p = Position{}
	p.Place(0, 0, tiles.Pusher)
	p.Place(1, 0, tiles.Pusher)
	p.Place(2, 1, tiles.Pusher)
	assert.Equal(t, 0, sc.Score(&p, 0))
	assert.Equal(t, 0, sc.Score(&p, 1))
}

func TestScoreFullRowCountsTwice(t *testing.T) {
	// A full row contains two overlapping triples.
	sc := NewScorer(Lines)
	var p Position
	for sq := 0; sq < 4; sq++ {
		p.Place(sq, 0, tiles.Diagonal)
	}
	assert.Equal(t, 2*SameKindLineScore, sc.Score(&p, 0))
}

func TestScoreSymmetricUnderRelabeling(t *testing.T) {
	sc := NewScorer(Lines)
	var p, swapped Position
	placements := []struct {
		sq     int
		player int
		kind   tiles.Kind
	}{
		{0, 0, tiles.Pusher}, {1, 0, tiles.Pusher}, {2, 0, tiles.Pusher},
		{4, 1, tiles.Puller}, {5, 1, tiles.Straight}, {6, 1, tiles.Diagonal},
		{12, 0, tiles.Diagonal}, {15, 1, tiles.Pusher},
	}
	for _, pl := range placements {
		p.Place(pl.sq, pl.player, pl.kind)
		swapped.Place(pl.sq, 1-pl.player, pl.kind)
	}
	assert.Equal(t, sc.Score(&p, 0), sc.Score(&swapped, 1))
	assert.Equal(t, sc.Score(&p, 1), sc.Score(&swapped, 0))
}

func TestNewScorerRejectsBadLine(t *testing.T) {
	assert.Panics(t, func() { NewScorer([]BitBoard{0b1111}) })
}

func TestPositionDisplay(t *testing.T) {
	var p Position
	p.Place(0, 0, tiles.Pusher)
	p.Place(5, 1, tiles.Diagonal)
	assert.Equal(t, "P . . .\n. d . .\n. . . .\n. . . .", p.ToDisplayText())
}
