package round

// Direction tells on which side of a probe the target lies.
type Direction uint8

const (
	// Left means the target is strictly before the probe (value > target).
	Left Direction = iota
	// Right means the target is at or past the probe (value <= target).
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "RIGHT"
	}
	return "LEFT"
}

// Classify maps the result of compare(value, target) to a direction flag.
// The second return value reports an exact match; a match always points RIGHT.
func Classify(c int) (Direction, bool) {
	switch {
	case c < 0:
		return Right, false
	case c == 0:
		return Right, true
	default:
		return Left, false
	}
}

// Directions is the direction vector of one search: one flag per worker framed by
// the two border sentinels.
type Directions struct {
	LeftBorder  Direction
	Flags       []Direction
	RightBorder Direction
}

// NewDirections returns a vector for the given number of workers with the borders
// set to their sentinel values.
func NewDirections(workers int) Directions {
	return Directions{
		LeftBorder:  Right,
		Flags:       make([]Direction, workers),
		RightBorder: Left,
	}
}

// Len returns the number of slots including both borders.
func (d Directions) Len() int {
	return len(d.Flags) + 2
}

// At returns slot k: 0 is the left border, 1..P are the workers, P+1 is the right border.
func (d Directions) At(k int) Direction {
	switch {
	case k == 0:
		return d.LeftBorder
	case k == len(d.Flags)+1:
		return d.RightBorder
	default:
		return d.Flags[k-1]
	}
}

// ChangesAt reports whether pair k (slots k and k+1) is the sign change.
func (d Directions) ChangesAt(k int) bool {
	return d.At(k) == Right && d.At(k+1) == Left
}
