package trajectory

import (
	"github.com/golang/geo/r3"

	"github.com/teslashibe/go-magician/pkg/geom"
)

// OrientedSpec describes a circle or partial arc on an arbitrary plane
// in 3D space, given by its normal. The circle is sampled with
// ConventionB in the plane's local frame.
type OrientedSpec struct {
	Center     r3.Vector
	Radius     float64
	Normal     r3.Vector  // must be non-zero
	Up         *r3.Vector // optional in-plane "up" hint
	NumPoints  int
	StartAngle float64 // degrees
	EndAngle   float64 // degrees
}

// OrientedArc generates an arc on the plane through spec.Center with
// normal spec.Normal. The local frame carries no orientation
// information, so the rotation angle is copied from the reference pose
// into every output point.
func OrientedArc(spec OrientedSpec, ref Pose) ([]Pose, error) {
	basis, err := geom.NewPlaneBasis(spec.Normal, spec.Up)
	if err != nil {
		return nil, err
	}

	samples, err := ArcSampler{
		Radius:     spec.Radius,
		StartAngle: spec.StartAngle,
		EndAngle:   spec.EndAngle,
		NumPoints:  spec.NumPoints,
		Convention: ConventionB,
	}.Sample()
	if err != nil {
		return nil, err
	}

	points := make([]Pose, len(samples))
	for i, s := range samples {
		world := basis.ToWorld(s.LocalX, s.LocalY, spec.Center)
		points[i] = PoseAt(world, ref.R)
	}
	return points, nil
}

// SemicircleResult carries the generated poses plus the construction
// values derived from the two endpoints.
type SemicircleResult struct {
	Points []Pose
	Center r3.Vector
	Radius float64
	Normal r3.Vector
}

// SemicircleBetween generates a semicircle whose diameter is the
// segment from start to target: center at the midpoint, radius half
// the distance, angles swept over [0°, 180°] so the first pose lands
// on start and the last on target.
//
// When normal is nil one is derived from the line between the points:
// cross(line, Z axis), unless the line is nearly vertical
// (|line.z| >= 0.9*|line|), in which case cross(line, X axis) is used.
// Either choice is guaranteed non-degenerate.
func SemicircleBetween(start, target r3.Vector, normal *r3.Vector, numPoints int, ref Pose) (SemicircleResult, error) {
	line := target.Sub(start)
	if line.Norm2() == 0 {
		return SemicircleResult{}, ErrDegenerateLine
	}

	center := geom.Midpoint(start, target)
	radius := line.Norm() / 2

	var n r3.Vector
	if normal != nil {
		n = *normal
	} else if abs(line.Z) < 0.9*line.Norm() {
		n = line.Cross(r3.Vector{Z: 1})
	} else {
		n = line.Cross(r3.Vector{X: 1})
	}

	// Orient the local frame so the sweep starts exactly on the start
	// point: U points from center toward start.
	u := start.Sub(center)
	points, err := OrientedArc(OrientedSpec{
		Center:     center,
		Radius:     radius,
		Normal:     n,
		Up:         &u,
		NumPoints:  numPoints,
		StartAngle: 0,
		EndAngle:   180,
	}, ref)
	if err != nil {
		return SemicircleResult{}, err
	}

	return SemicircleResult{Points: points, Center: center, Radius: radius, Normal: n}, nil
}

// abs returns the absolute value of x.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
