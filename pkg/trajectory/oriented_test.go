package trajectory

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/teslashibe/go-magician/pkg/geom"
)

func TestOrientedArc_ReducesToPlanar(t *testing.T) {
	// With a Z-axis normal and X-axis hint the oriented generator must
	// match the axis-aligned convention-B circle exactly.
	center := r3.Vector{X: 200, Y: 0, Z: 50}
	up := r3.Vector{X: 1}
	ref := Pose{R: 10}

	points, err := OrientedArc(OrientedSpec{
		Center:     center,
		Radius:     30,
		Normal:     r3.Vector{Z: 1},
		Up:         &up,
		NumPoints:  20,
		StartAngle: 0,
		EndAngle:   360,
	}, ref)
	if err != nil {
		t.Fatalf("OrientedArc: %v", err)
	}

	if len(points) != 20 {
		t.Fatalf("len = %d, want 20", len(points))
	}
	step := 360.0 / 19
	for i, p := range points {
		rad := float64(i) * step * math.Pi / 180
		wantX := center.X + 30*math.Cos(rad)
		wantY := center.Y + 30*math.Sin(rad)
		if !floatEquals(p.X, wantX) || !floatEquals(p.Y, wantY) {
			t.Errorf("point %d = (%v,%v), want (%v,%v)", i, p.X, p.Y, wantX, wantY)
		}
		if !floatEquals(p.Z, 50) {
			t.Errorf("point %d Z = %v, want center height 50", i, p.Z)
		}
		if p.R != 10 {
			t.Errorf("point %d R = %v, want reference 10", i, p.R)
		}
	}
}

func TestOrientedArc_VerticalPlane(t *testing.T) {
	// Y-axis normal puts the circle in the XZ plane: Y stays at the
	// center and every point is at distance radius from the center.
	center := r3.Vector{X: 200, Y: 0, Z: 50}
	points, err := OrientedArc(OrientedSpec{
		Center:     center,
		Radius:     25,
		Normal:     r3.Vector{Y: 1},
		NumPoints:  15,
		StartAngle: 0,
		EndAngle:   180,
	}, Pose{})
	if err != nil {
		t.Fatalf("OrientedArc: %v", err)
	}

	for i, p := range points {
		if !floatEquals(p.Y, 0) {
			t.Errorf("point %d Y = %v, want 0 (XZ plane)", i, p.Y)
		}
		d := p.Position().Sub(center).Norm()
		if !floatEquals(d, 25) {
			t.Errorf("point %d distance = %v, want 25", i, d)
		}
	}
}

func TestOrientedArc_TiltedPlane(t *testing.T) {
	center := r3.Vector{X: 200, Y: 0, Z: 50}
	normal := r3.Vector{X: 1, Y: 1, Z: 1}
	up := r3.Vector{Z: 1}

	points, err := OrientedArc(OrientedSpec{
		Center:     center,
		Radius:     35,
		Normal:     normal,
		Up:         &up,
		NumPoints:  25,
		StartAngle: 0,
		EndAngle:   360,
	}, Pose{})
	if err != nil {
		t.Fatalf("OrientedArc: %v", err)
	}

	n := normal.Normalize()
	for i, p := range points {
		rel := p.Position().Sub(center)
		if !floatEquals(rel.Norm(), 35) {
			t.Errorf("point %d distance = %v, want 35", i, rel.Norm())
		}
		if !floatEquals(rel.Dot(n), 0) {
			t.Errorf("point %d out of plane by %v", i, rel.Dot(n))
		}
	}
}

func TestOrientedArc_ZeroNormal(t *testing.T) {
	_, err := OrientedArc(OrientedSpec{
		Radius:    10,
		NumPoints: 5,
	}, Pose{})
	if err != geom.ErrZeroNormal {
		t.Errorf("err = %v, want geom.ErrZeroNormal", err)
	}
}

func TestSemicircleBetween_Construction(t *testing.T) {
	start := r3.Vector{}
	target := r3.Vector{X: 10}

	res, err := SemicircleBetween(start, target, nil, 20, Pose{R: 5})
	if err != nil {
		t.Fatalf("SemicircleBetween: %v", err)
	}

	if !floatEquals(res.Center.X, 5) || !floatEquals(res.Center.Y, 0) || !floatEquals(res.Center.Z, 0) {
		t.Errorf("center = %v, want (5,0,0)", res.Center)
	}
	if !floatEquals(res.Radius, 5) {
		t.Errorf("radius = %v, want 5", res.Radius)
	}
	if len(res.Points) != 20 {
		t.Fatalf("len = %d, want 20", len(res.Points))
	}

	first := res.Points[0].Position()
	last := res.Points[len(res.Points)-1].Position()
	if first.Sub(start).Norm() > 1e-9 {
		t.Errorf("first point %v does not coincide with start %v", first, start)
	}
	if last.Sub(target).Norm() > 1e-9 {
		t.Errorf("last point %v does not coincide with target %v", last, target)
	}

	for i, p := range res.Points {
		if p.R != 5 {
			t.Errorf("point %d R = %v, want reference 5", i, p.R)
		}
		d := p.Position().Sub(res.Center).Norm()
		if !floatEquals(d, 5) {
			t.Errorf("point %d distance from center = %v, want 5", i, d)
		}
	}
}

func TestSemicircleBetween_VerticalLine(t *testing.T) {
	// A nearly vertical diameter must switch the derived normal to
	// cross(line, X axis) and still produce a valid semicircle.
	start := r3.Vector{X: 100, Y: 50, Z: 0}
	target := r3.Vector{X: 100, Y: 50, Z: 80}

	res, err := SemicircleBetween(start, target, nil, 10, Pose{})
	if err != nil {
		t.Fatalf("SemicircleBetween: %v", err)
	}

	if !floatEquals(res.Radius, 40) {
		t.Errorf("radius = %v, want 40", res.Radius)
	}
	first := res.Points[0].Position()
	last := res.Points[len(res.Points)-1].Position()
	if first.Sub(start).Norm() > 1e-9 || last.Sub(target).Norm() > 1e-9 {
		t.Errorf("endpoints (%v, %v) do not match (%v, %v)", first, last, start, target)
	}
}

func TestSemicircleBetween_ExplicitNormal(t *testing.T) {
	normal := r3.Vector{Z: 1}
	res, err := SemicircleBetween(r3.Vector{}, r3.Vector{X: 10}, &normal, 10, Pose{})
	if err != nil {
		t.Fatalf("SemicircleBetween: %v", err)
	}

	// The arc stays in the Z=0 plane.
	for i, p := range res.Points {
		if !floatEquals(p.Z, 0) {
			t.Errorf("point %d Z = %v, want 0", i, p.Z)
		}
	}
}

func TestSemicircleBetween_CoincidentPoints(t *testing.T) {
	v := r3.Vector{X: 1, Y: 2, Z: 3}
	if _, err := SemicircleBetween(v, v, nil, 10, Pose{}); err != ErrDegenerateLine {
		t.Errorf("err = %v, want ErrDegenerateLine", err)
	}
}
