package eval

import "math"

// AngleUnit selects how trigonometric arguments are interpreted
type AngleUnit int

const (
	// Degrees scales trig arguments by π/180 before the math primitives
	Degrees AngleUnit = iota
	// Radians passes trig arguments through unchanged
	Radians
)

// String returns the display name of the unit
func (u AngleUnit) String() string {
	if u == Radians {
		return "rad"
	}
	return "deg"
}

// Toggle returns the other unit
func (u AngleUnit) Toggle() AngleUnit {
	if u == Degrees {
		return Radians
	}
	return Degrees
}

// factor is the conversion applied to trig arguments
func (u AngleUnit) factor() float64 {
	if u == Degrees {
		return math.Pi / 180
	}
	return 1
}
