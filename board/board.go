package board

import "math/bits"

// Dim is the side length of the board.
const Dim = 4

// NumSquares is the total number of squares.
const NumSquares = Dim * Dim

// A BitBoard is a set of squares, one bit per square. Squares are numbered
// row-major:
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
//	12 13 14 15
type BitBoard uint16

// FullBoard has every square set.
const FullBoard BitBoard = 0xFFFF

// Occupied returns whether the given square is in the set.
func (b BitBoard) Occupied(sq int) bool {
	return b&(1<<sq) != 0
}

// With returns a copy of the set with the given square added.
func (b BitBoard) With(sq int) BitBoard {
	return b | (1 << sq)
}

// Without returns a copy of the set with the given square removed.
func (b BitBoard) Without(sq int) BitBoard {
	return b &^ (1 << sq)
}

// IsFull returns whether every square is in the set.
func (b BitBoard) IsFull() bool {
	return b == FullBoard
}

// Count returns the number of squares in the set.
func (b BitBoard) Count() int {
	return bits.OnesCount16(uint16(b))
}

// Row and Col give the coordinates of a square; Square is the inverse.
func Row(sq int) int { return sq / Dim }

func Col(sq int) int { return sq % Dim }

func Square(row, col int) int { return row*Dim + col }

// Lines are the 24 scoring lines: every triple of adjacent collinear squares.
// A full row or column contains two overlapping triples, which is how a line
// of four ends up worth twice a line of three. Hand-authored; the tests
// recompute these from square coordinates.
var Lines = []BitBoard{
	0b0000_0000_0000_0111,
	0b0000_0000_0000_1110,
	0b0000_0000_0111_0000,
	0b0000_0000_1110_0000,
	0b0000_0111_0000_0000,
	0b0000_1110_0000_0000,
	0b0111_0000_0000_0000,
	0b1110_0000_0000_0000,
	0b0000_0001_0001_0001,
	0b0000_0010_0010_0010,
	0b0000_0100_0100_0100,
	0b0000_1000_1000_1000,
	0b0001_0001_0001_0000,
	0b0010_0010_0010_0000,
	0b0100_0100_0100_0000,
	0b1000_1000_1000_0000,
	0b0000_0100_0010_0001,
	0b0000_1000_0100_0010,
	0b0100_0010_0001_0000,
	0b1000_0100_0010_0000,
	0b0000_0001_0010_0100,
	0b0000_0010_0100_1000,
	0b0001_0010_0100_0000,
	0b0010_0100_1000_0000,
}

// NumSymmetries is the order of the board's rotation/reflection group.
const NumSymmetries = 8

// Symmetries holds the square permutation for each element of the dihedral
// group: four rotations, then the same four after a horizontal mirror.
// Element 0 is the identity.
var Symmetries [NumSymmetries][NumSquares]uint8

func init() {
	for sq := 0; sq < NumSquares; sq++ {
		r, c := Row(sq), Col(sq)
		for t := 0; t < NumSymmetries; t++ {
			tr, tc := r, c
			if t >= 4 {
				tc = Dim - 1 - tc
			}
			for i := 0; i < t%4; i++ {
				tr, tc = tc, Dim-1-tr
			}
			Symmetries[t][sq] = uint8(Square(tr, tc))
		}
	}
}

// Transform applies the t-th symmetry to every square in the set.
func (b BitBoard) Transform(t int) BitBoard {
	var out BitBoard
	for sq := 0; sq < NumSquares; sq++ {
		if b.Occupied(sq) {
			out = out.With(int(Symmetries[t][sq]))
		}
	}
	return out
}
