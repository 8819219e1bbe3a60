package game

import "strconv"

// Roll is a pin count that may not have been bowled yet.
// The zero value is an unbowled roll, distinct from a bowled zero.
type Roll struct {
	pins   int
	bowled bool
}

// Pins returns a bowled roll knocking down n pins
func Pins(n int) Roll {
	return Roll{pins: n, bowled: true}
}

// Value returns the pins knocked down, or 0 when not bowled
func (r Roll) Value() int {
	return r.pins
}

// Bowled reports whether the roll has been recorded
func (r Roll) Bowled() bool {
	return r.bowled
}

// IsStrike reports whether the roll knocked down all ten pins
func (r Roll) IsStrike() bool {
	return r.bowled && r.pins == MaxPins
}

func (r Roll) String() string {
	if !r.bowled {
		return "-"
	}
	return strconv.Itoa(r.pins)
}
