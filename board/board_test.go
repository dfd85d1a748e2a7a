package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitBoardOps(t *testing.T) {
	var b BitBoard
	assert.False(t, b.Occupied(0))
	b = b.With(1).With(15)
	assert.Equal(t, BitBoard(0b1000_0000_0000_0010), b)
	assert.True(t, b.Occupied(1))
	assert.True(t, b.Occupied(15))
	assert.Equal(t, 2, b.Count())
	assert.Equal(t, BitBoard(0b1000_0000_0000_0000), b.Without(1))
	assert.False(t, FullBoard.Without(3).IsFull())
	assert.True(t, FullBoard.IsFull())
}

func TestCoordinates(t *testing.T) {
	for sq := 0; sq < NumSquares; sq++ {
		assert.Equal(t, sq, Square(Row(sq), Col(sq)))
	}
	assert.Equal(t, "a1", SquareName(0))
	assert.Equal(t, "d1", SquareName(3))
	assert.Equal(t, "b2", SquareName(5))
	assert.Equal(t, "d4", SquareName(15))
}

func TestToDisplayText(t *testing.T) {
	assert.Equal(t,
		"■ □ □ □\n□ ■ ■ □\n□ ■ ■ □\n■ ■ ■ ■",
		BitBoard(0b1111_0110_0110_0001).ToDisplayText())
}

// computedLines enumerates every triple of adjacent collinear squares from
// coordinates, independently of the hand-authored constants.
func computedLines() map[BitBoard]bool {
	lines := map[BitBoard]bool{}
	dirs := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for sq := 0; sq < NumSquares; sq++ {
		r, c := Row(sq), Col(sq)
		for _, d := range dirs {
			r2, c2 := r+2*d[0], c+2*d[1]
			if r2 < 0 || r2 >= Dim || c2 < 0 || c2 >= Dim {
				continue
			}
			line := BitBoard(0)
			for i := 0; i < 3; i++ {
				line = line.With(Square(r+i*d[0], c+i*d[1]))
			}
			lines[line] = true
		}
	}
	return lines
}

func TestLinesMatchGeometry(t *testing.T) {
	want := computedLines()
	assert.Equal(t, len(want), len(Lines))
	seen := map[BitBoard]bool{}
	for _, line := range Lines {
		assert.True(t, want[line], "line %#04x is not a collinear adjacent triple", uint16(line))
		assert.False(t, seen[line], "line %#04x appears twice", uint16(line))
		seen[line] = true
	}
}

func TestSymmetriesAreBijections(t *testing.T) {
	for tr := 0; tr < NumSymmetries; tr++ {
		seen := [NumSquares]bool{}
		for sq := 0; sq < NumSquares; sq++ {
			img := int(Symmetries[tr][sq])
			assert.False(t, seen[img])
			seen[img] = true
		}
	}
	// element 0 is the identity
	for sq := 0; sq < NumSquares; sq++ {
		assert.Equal(t, uint8(sq), Symmetries[0][sq])
	}
}

func TestSymmetriesPreserveLines(t *testing.T) {
	lineSet := map[BitBoard]bool{}
	for _, line := range Lines {
		lineSet[line] = true
	}
	for tr := 0; tr < NumSymmetries; tr++ {
		for _, line := range Lines {
			assert.True(t, lineSet[line.Transform(tr)],
				"symmetry %d maps line %#04x off the line set", tr, uint16(line))
		}
	}
}
