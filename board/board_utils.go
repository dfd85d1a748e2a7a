package board

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the set as a grid of glyphs, one row per board row.
// It exists to hand-verify hand-authored bit-field constants; it is not part
// of the solving path.
func (b BitBoard) ToDisplayText() string {
	var sb strings.Builder
	for sq := 0; sq < NumSquares; sq++ {
		if sq > 0 {
			if sq%Dim == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		if b.Occupied(sq) {
			sb.WriteRune('■')
		} else {
			sb.WriteRune('□')
		}
	}
	return sb.String()
}

// ToDisplayText renders the position with one character per square: '.' for
// empty, otherwise the first letter of the kind, uppercase for the first
// player and lowercase for the second.
func (p *Position) ToDisplayText() string {
	var sb strings.Builder
	for sq := 0; sq < NumSquares; sq++ {
		if sq > 0 {
			if sq%Dim == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		player, kind, ok := p.OccupantOf(sq)
		switch {
		case !ok:
			sb.WriteByte('.')
		case player == 0:
			sb.WriteByte(kind.String()[0])
		default:
			sb.WriteByte(kind.String()[0] | 0x20)
		}
	}
	return sb.String()
}

// SquareName returns the coordinates of a square in the form "a1" with the
// column letter first and row 1 at the top.
func SquareName(sq int) string {
	return fmt.Sprintf("%c%d", 'a'+Col(sq), Row(sq)+1)
}
