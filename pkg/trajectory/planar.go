package trajectory

import (
	"github.com/golang/geo/r3"

	"github.com/teslashibe/go-magician/pkg/geom"
)

// ArcSpec describes an arc about an explicit center in the horizontal
// reference plane. The arc is sampled with ConventionA: angle 0 sits
// at (center.x, center.y - radius) and travel proceeds clockwise when
// viewed along -Z.
type ArcSpec struct {
	Center     r3.Vector
	Radius     float64 // <= 0 derives the radius from the reference pose
	NumPoints  int
	StartAngle float64 // degrees
	EndAngle   float64 // degrees

	// StartZ and EndZ are heights relative to Center.Z. Nil fields
	// default to the reference pose height.
	StartZ  *float64
	EndZ    *float64
	ZPolicy ZPolicy
}

// ArcResult carries the generated poses plus values derived during
// generation that callers typically report.
type ArcResult struct {
	Points []Pose
	Radius float64 // radius actually used, possibly derived
}

// ArcAboutCenter generates an arc about spec.Center. The reference
// pose supplies the derived radius (planar distance to the center when
// spec.Radius <= 0), default heights, and the rotation angle copied
// into every output pose.
func ArcAboutCenter(spec ArcSpec, ref Pose) (ArcResult, error) {
	if spec.NumPoints < 1 {
		return ArcResult{}, ErrNumPoints
	}

	radius := spec.Radius
	if radius <= 0 {
		radius = geom.XYDistance(ref.Position(), spec.Center)
	}
	if radius <= 0 {
		return ArcResult{}, ErrRadius
	}

	startZ := spec.Center.Z + ref.Z
	if spec.StartZ != nil {
		startZ = spec.Center.Z + *spec.StartZ
	}
	endZ := spec.Center.Z + ref.Z
	if spec.EndZ != nil {
		endZ = spec.Center.Z + *spec.EndZ
	}

	samples, err := ArcSampler{
		Radius:     radius,
		StartAngle: spec.StartAngle,
		EndAngle:   spec.EndAngle,
		NumPoints:  spec.NumPoints,
		Convention: ConventionA,
		Z:          ZRange{Start: startZ, End: endZ, Policy: spec.ZPolicy},
	}.Sample()
	if err != nil {
		return ArcResult{}, err
	}

	points := make([]Pose, len(samples))
	for i, s := range samples {
		points[i] = Pose{
			X: spec.Center.X + s.LocalX,
			Y: spec.Center.Y + s.LocalY,
			Z: s.Z,
			R: ref.R,
		}
	}
	return ArcResult{Points: points, Radius: radius}, nil
}

// CircleSpec describes a circle or partial arc centered on the
// caller's reference pose, sampled with ConventionB: angle 0 sits at
// (center.x + radius, center.y) and travel is counter-clockwise.
type CircleSpec struct {
	Radius     float64 // required
	NumPoints  int
	StartAngle float64 // degrees
	EndAngle   float64 // degrees

	// ZOffset is the maximum height excursion around the reference
	// height, shaped by ZPolicy.
	ZOffset float64
	ZPolicy ZPolicy
}

// CircleAboutPose generates a circle centered on the reference pose.
// Unlike ArcAboutCenter there is no radius derivation: a circle around
// the point you are standing on needs an explicit radius.
func CircleAboutPose(spec CircleSpec, ref Pose) ([]Pose, error) {
	if spec.NumPoints < 1 {
		return nil, ErrNumPoints
	}
	if spec.Radius <= 0 {
		return nil, ErrRadius
	}

	samples, err := ArcSampler{
		Radius:     spec.Radius,
		StartAngle: spec.StartAngle,
		EndAngle:   spec.EndAngle,
		NumPoints:  spec.NumPoints,
		Convention: ConventionB,
		Z:          ZOscillate{Center: ref.Z, Offset: spec.ZOffset, Policy: spec.ZPolicy},
	}.Sample()
	if err != nil {
		return nil, err
	}

	points := make([]Pose, len(samples))
	for i, s := range samples {
		points[i] = Pose{
			X: ref.X + s.LocalX,
			Y: ref.Y + s.LocalY,
			Z: s.Z,
			R: ref.R,
		}
	}
	return points, nil
}
