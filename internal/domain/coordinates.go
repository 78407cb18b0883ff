package domain

import "math"

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether both components are present.
// NULL columns scan to zero, so a zero latitude or longitude counts as missing.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return false
	}
	return c.Lat != 0 && c.Lon != 0
}
