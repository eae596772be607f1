// Package trajectory generates ordered pose sequences approximating
// circular and partial-arc paths for a Dobot Magician-class arm.
//
// All generators are pure: they read their arguments (including an
// explicit reference pose supplied by the caller) and return the full
// sequence. Nothing here talks to hardware; the executor in pkg/robot
// walks the returned sequence in index order.
package trajectory

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
)

// Pose is a commandable end-effector target: Cartesian position in
// millimeters plus the end-effector rotation R in degrees.
type Pose struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	R float64 `json:"r"`
}

// Position returns the Cartesian part of the pose.
func (p Pose) Position() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// PoseAt builds a Pose from a position and a rotation angle.
func PoseAt(v r3.Vector, r float64) Pose {
	return Pose{X: v.X, Y: v.Y, Z: v.Z, R: r}
}

// ZPolicy selects how the out-of-plane coordinate is interpolated
// across the sweep.
type ZPolicy string

// Supported Z variation policies.
const (
	ZNone   ZPolicy = "none"
	ZLinear ZPolicy = "linear"
	ZSine   ZPolicy = "sine"
	ZCosine ZPolicy = "cosine"
)

// ParseZPolicy maps a policy name to a ZPolicy. Unknown names map to
// ZLinear: the original controller treated anything unrecognized as
// linear, and callers depend on that fallback.
func ParseZPolicy(name string) ZPolicy {
	switch ZPolicy(name) {
	case ZNone, ZSine, ZCosine:
		return ZPolicy(name)
	default:
		return ZLinear
	}
}

// Convention names the local axis convention an arc is sampled with.
// Two conventions are in active use and they are not interchangeable:
// they produce different starting points and directions of travel for
// the same angle range.
type Convention int

const (
	// ConventionA places the sample at (r*sin θ, -r*cos θ). Used for
	// arcs about an explicit center.
	ConventionA Convention = iota
	// ConventionB places the sample at (r*cos θ, r*sin θ). Used for
	// circles about the current pose and for oriented-plane circles.
	ConventionB
)

// String implements fmt.Stringer.
func (c Convention) String() string {
	switch c {
	case ConventionA:
		return "A"
	case ConventionB:
		return "B"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// Errors returned by the generators for invalid configuration.
var (
	ErrRadius         = errors.New("trajectory: radius must be positive")
	ErrNumPoints      = errors.New("trajectory: numPoints must be at least 1")
	ErrDegenerateLine = errors.New("trajectory: start and target coincide")
)
