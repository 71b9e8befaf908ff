package store

import "fmt"

// Coordinate is a validated normalized map placement. Both components are
// strictly inside the open interval (0,1); a Coordinate cannot be
// constructed otherwise.
type Coordinate struct {
	X float64
	Y float64
}

// NewCoordinate validates and constructs a Coordinate.
func NewCoordinate(x, y float64) (Coordinate, error) {
	if !(x > 0.0 && x < 1.0) {
		return Coordinate{}, fmt.Errorf("%w: x=%v is off the charts", ErrMalformedInput, x)
	}
	if !(y > 0.0 && y < 1.0) {
		return Coordinate{}, fmt.Errorf("%w: y=%v is off the charts", ErrMalformedInput, y)
	}
	return Coordinate{X: x, Y: y}, nil
}
