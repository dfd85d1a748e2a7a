package negamax

// Verdict is the game outcome from the perspective of the player to move at
// the root of the search.
type Verdict int8

const (
	Loss Verdict = -1
	Draw Verdict = 0
	Win  Verdict = 1
)

// Not returns the verdict from the opponent's perspective.
func (v Verdict) Not() Verdict {
	return -v
}

func (v Verdict) String() string {
	switch v {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "draw"
	}
}

// VerdictOf maps a game value to its verdict: the sign of the final score
// differential.
func VerdictOf(value int16) Verdict {
	switch {
	case value > 0:
		return Win
	case value < 0:
		return Loss
	default:
		return Draw
	}
}
