// Package zobrist hashes game states for the transposition table.
// https://en.wikipedia.org/wiki/Zobrist_hashing
package zobrist

import (
	"lukechampine.com/frand"

	"github.com/mijnlieff/solver/board"
	"github.com/mijnlieff/solver/game"
	"github.com/mijnlieff/solver/move"
	"github.com/mijnlieff/solver/tiles"
)

const bignum = 1<<63 - 2

// Zobrist hashes a game state: the per-player per-kind boards, the
// unavailable mask, the consecutive-pass count and the side to move. The
// per-kind boards determine the remaining hand counts (initial count minus
// tiles on board), so two states that transpose to the same position with
// different inventories cannot exist, and the key fully covers inventories.
type Zobrist struct {
	theirTurn uint64

	posTable     [2][tiles.NumKinds][board.NumSquares]uint64
	unavailTable [board.NumSquares]uint64
	passTable    [game.MaxConsecutivePasses + 1]uint64
}

// Initialize fills the random tables. Must be called once before hashing.
func (z *Zobrist) Initialize() {
	for p := 0; p < 2; p++ {
		for k := 0; k < tiles.NumKinds; k++ {
			for sq := 0; sq < board.NumSquares; sq++ {
				z.posTable[p][k][sq] = frand.Uint64n(bignum) + 1
			}
		}
	}
	for sq := 0; sq < board.NumSquares; sq++ {
		z.unavailTable[sq] = frand.Uint64n(bignum) + 1
	}
	for i := range z.passTable {
		z.passTable[i] = frand.Uint64n(bignum) + 1
	}
	z.theirTurn = frand.Uint64n(bignum) + 1
}

// Hash computes the full hash of a game state from scratch.
func (z *Zobrist) Hash(g *game.Game) uint64 {
	key := uint64(0)
	pos := g.Position()
	for p := 0; p < 2; p++ {
		for _, k := range tiles.AllKinds {
			kb := pos.KindBoard(p, k)
			for sq := 0; sq < board.NumSquares; sq++ {
				if kb.Occupied(sq) {
					key ^= z.posTable[p][k][sq]
				}
			}
		}
	}
	key ^= z.hashMask(g.Unavailable())
	key ^= z.passTable[g.ConsecutivePasses()]
	if g.PlayerOnTurn() == 1 {
		key ^= z.theirTurn
	}
	return key
}

// AddMove incrementally updates a hash for a move played by the given
// player, producing the same value Hash would compute on the child state.
// The caller supplies the unavailable masks and pass counts from before and
// after the move.
func (z *Zobrist) AddMove(key uint64, m move.Move, mover int,
	prevUnavail, newUnavail board.BitBoard, prevPasses, newPasses int) uint64 {

	if m.Action() == move.MoveTypePlay {
		key ^= z.posTable[mover][m.Kind()][m.Square()]
	}
	// The unavailable mask is replaced wholesale on every move; flip the
	// bits that differ.
	key ^= z.hashMask(prevUnavail ^ newUnavail)
	if prevPasses != newPasses {
		key ^= z.passTable[prevPasses]
		key ^= z.passTable[newPasses]
	}
	key ^= z.theirTurn
	return key
}

func (z *Zobrist) hashMask(mask board.BitBoard) uint64 {
	key := uint64(0)
	for sq := 0; sq < board.NumSquares; sq++ {
		if mask.Occupied(sq) {
			key ^= z.unavailTable[sq]
		}
	}
	return key
}
