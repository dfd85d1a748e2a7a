package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mijnlieff/solver/tiles"
)

func TestShortDescription(t *testing.T) {
	is := is.New(t)
	is.Equal(NewPlace(tiles.Pusher, 5).ShortDescription(), "b2 Pusher")
	is.Equal(NewPlace(tiles.Straight, 0).ShortDescription(), "a1 Straight")
	is.Equal(NewPass().ShortDescription(), "(pass)")
}

func TestEquals(t *testing.T) {
	is := is.New(t)
	is.True(NewPlace(tiles.Pusher, 5).Equals(NewPlace(tiles.Pusher, 5)))
	is.True(!NewPlace(tiles.Pusher, 5).Equals(NewPlace(tiles.Pusher, 6)))
	is.True(!NewPlace(tiles.Pusher, 5).Equals(NewPass()))
	is.True(NewPass().Equals(NewPass()))
}
