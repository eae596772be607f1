// Package geom provides the 3D vector machinery the trajectory
// generators need: an orthonormal plane basis derived from a plane
// normal, plus a few helpers on top of r3.Vector.
//
// Vectors are github.com/golang/geo/r3 values throughout. r3 already
// covers dot, cross, norm and normalization (a zero vector normalizes
// to itself), so this package only adds what r3 lacks.
package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// XYDistance returns the distance between a and b projected onto the
// horizontal (X/Y) reference plane.
func XYDistance(a, b r3.Vector) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b r3.Vector) r3.Vector {
	return a.Add(b).Mul(0.5)
}
