package negamax

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

func TestTranspositionTable(t *testing.T) {
	is := is.New(t)
	tt := &TranspositionTable{}
	tt.SetSingleThreadedMode()
	tt.Reset(0) // clamps to the minimum size

	zval := frand.Uint64n(1 << 62)
	entry := TableEntry{score: -7, flagByte: TTExact}
	tt.store(zval, entry)

	got := tt.lookup(zval)
	is.True(got.valid())
	is.Equal(got.score, int16(-7))
	is.Equal(got.flag(), uint8(TTExact))

	// a different hash landing in another bucket misses
	miss := tt.lookup(zval ^ 0xdeadbeef)
	is.True(!miss.valid())

	// same bucket, different top bytes: a type-2 collision, also a miss
	collision := tt.lookup(zval ^ (uint64(1) << 40))
	is.True(!collision.valid())
	is.Equal(tt.t2collisions.Load(), uint64(1))
}
