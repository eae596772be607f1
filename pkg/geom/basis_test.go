package geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

const floatTolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func checkOrthonormal(t *testing.T, b PlaneBasis) {
	t.Helper()

	if !floatEquals(b.U.Norm(), 1) {
		t.Errorf("|U| = %v, want 1", b.U.Norm())
	}
	if !floatEquals(b.V.Norm(), 1) {
		t.Errorf("|V| = %v, want 1", b.V.Norm())
	}
	if !floatEquals(b.N.Norm(), 1) {
		t.Errorf("|N| = %v, want 1", b.N.Norm())
	}
	if !floatEquals(b.U.Dot(b.V), 0) {
		t.Errorf("U·V = %v, want 0", b.U.Dot(b.V))
	}
	if !floatEquals(b.V.Dot(b.N), 0) {
		t.Errorf("V·N = %v, want 0", b.V.Dot(b.N))
	}
	if !floatEquals(b.U.Dot(b.N), 0) {
		t.Errorf("U·N = %v, want 0", b.U.Dot(b.N))
	}
}

func TestNewPlaneBasis_ZAxis(t *testing.T) {
	hint := r3.Vector{X: 1}
	b, err := NewPlaneBasis(r3.Vector{Z: 1}, &hint)
	if err != nil {
		t.Fatalf("NewPlaneBasis: %v", err)
	}

	checkOrthonormal(t, b)

	if !floatEquals(b.U.X, 1) || !floatEquals(b.U.Y, 0) || !floatEquals(b.U.Z, 0) {
		t.Errorf("U = %v, want (1,0,0)", b.U)
	}
	if !floatEquals(b.V.X, 0) || !floatEquals(b.V.Y, 1) || !floatEquals(b.V.Z, 0) {
		t.Errorf("V = %v, want (0,1,0)", b.V)
	}
}

func TestNewPlaneBasis_AutoHint(t *testing.T) {
	// X-aligned normal must switch the auto hint to the Y axis.
	cases := []struct {
		name   string
		normal r3.Vector
	}{
		{"x axis", r3.Vector{X: 1}},
		{"negative x axis", r3.Vector{X: -1}},
		{"y axis", r3.Vector{Y: 1}},
		{"tilted", r3.Vector{X: 1, Y: 1, Z: 1}},
		{"near x", r3.Vector{X: 0.95, Y: 0.1, Z: 0.05}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewPlaneBasis(tc.normal, nil)
			if err != nil {
				t.Fatalf("NewPlaneBasis: %v", err)
			}
			checkOrthonormal(t, b)
		})
	}
}

func TestNewPlaneBasis_NormalizesNormal(t *testing.T) {
	b, err := NewPlaneBasis(r3.Vector{Z: 42}, nil)
	if err != nil {
		t.Fatalf("NewPlaneBasis: %v", err)
	}
	if !floatEquals(b.N.Z, 1) {
		t.Errorf("N = %v, want unit Z", b.N)
	}
}

func TestNewPlaneBasis_ZeroNormal(t *testing.T) {
	if _, err := NewPlaneBasis(r3.Vector{}, nil); err != ErrZeroNormal {
		t.Errorf("err = %v, want ErrZeroNormal", err)
	}
}

func TestNewPlaneBasis_ParallelHint(t *testing.T) {
	hint := r3.Vector{Z: 3}
	if _, err := NewPlaneBasis(r3.Vector{Z: 1}, &hint); err != ErrParallelHint {
		t.Errorf("err = %v, want ErrParallelHint", err)
	}
}

func TestPlaneBasis_ToWorld(t *testing.T) {
	hint := r3.Vector{X: 1}
	b, err := NewPlaneBasis(r3.Vector{Z: 1}, &hint)
	if err != nil {
		t.Fatalf("NewPlaneBasis: %v", err)
	}

	center := r3.Vector{X: 100, Y: 50, Z: 25}
	p := b.ToWorld(3, 4, center)

	if !floatEquals(p.X, 103) || !floatEquals(p.Y, 54) || !floatEquals(p.Z, 25) {
		t.Errorf("ToWorld = %v, want (103, 54, 25)", p)
	}
}

func TestPlaneBasis_Matrix(t *testing.T) {
	hint := r3.Vector{X: 1}
	b, err := NewPlaneBasis(r3.Vector{Z: 1}, &hint)
	if err != nil {
		t.Fatalf("NewPlaneBasis: %v", err)
	}

	m := b.Matrix()
	want := [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !floatEquals(m.At(i, j), want[i][j]) {
				t.Errorf("Matrix[%d][%d] = %v, want %v", i, j, m.At(i, j), want[i][j])
			}
		}
	}
}

func TestXYDistance(t *testing.T) {
	a := r3.Vector{X: 0, Y: 0, Z: 100}
	b := r3.Vector{X: 3, Y: 4, Z: -50}
	if d := XYDistance(a, b); !floatEquals(d, 5) {
		t.Errorf("XYDistance = %v, want 5 (Z must be ignored)", d)
	}
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(r3.Vector{X: 2, Y: 4, Z: 6}, r3.Vector{X: 4, Y: 8, Z: 10})
	if !floatEquals(m.X, 3) || !floatEquals(m.Y, 6) || !floatEquals(m.Z, 8) {
		t.Errorf("Midpoint = %v, want (3, 6, 8)", m)
	}
}
