// Package tiles defines the four Mijnlieff tile kinds. Each kind carries a
// placement rule that constrains where the opponent may play next; the rule
// geometry itself lives in the rules package, since it is defined in terms of
// board squares.
package tiles

import "fmt"

// Kind is one of the four tile kinds a player may hold.
type Kind uint8

const (
	// Puller forces the next placement onto a square adjacent (in any of the
	// up to eight directions) to the square it was played on.
	Puller Kind = iota
	// Pusher forces the next placement onto a square *not* adjacent to the
	// square it was played on.
	Pusher
	// Straight forces the next placement onto the same row or column.
	Straight
	// Diagonal forces the next placement onto a shared diagonal.
	Diagonal
)

// NumKinds is the number of distinct tile kinds.
const NumKinds = 4

// AllKinds lists every kind in declaration order.
var AllKinds = [NumKinds]Kind{Puller, Pusher, Straight, Diagonal}

var kindNames = [NumKinds]string{"Puller", "Pusher", "Straight", "Diagonal"}

func (k Kind) String() string {
	if int(k) >= NumKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}
