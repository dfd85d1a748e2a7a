package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestKindString(t *testing.T) {
	is := is.New(t)
	is.Equal(Puller.String(), "Puller")
	is.Equal(Pusher.String(), "Pusher")
	is.Equal(Straight.String(), "Straight")
	is.Equal(Diagonal.String(), "Diagonal")
	is.Equal(Kind(7).String(), "Kind(7)")
}

func TestAllKinds(t *testing.T) {
	is := is.New(t)
	is.Equal(len(AllKinds), NumKinds)
	for i, k := range AllKinds {
		is.Equal(int(k), i)
	}
}
