package geom

import (
	"errors"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by NewPlaneBasis.
var (
	ErrZeroNormal   = errors.New("geom: plane normal must be non-zero")
	ErrParallelHint = errors.New("geom: up hint is parallel to the plane normal")
)

// basisEpsilon is the squared-norm threshold below which a vector is
// treated as degenerate.
const basisEpsilon = 1e-12

// PlaneBasis is an orthonormal frame spanning a plane and its normal:
// U and V lie in the plane, N is the unit normal, and V = N x U.
type PlaneBasis struct {
	U, V, N r3.Vector
}

// NewPlaneBasis builds an orthonormal basis for the plane with the
// given normal. The optional up hint fixes the in-plane U direction;
// pass nil to pick one automatically. The automatic hint is the X axis
// unless the normal is nearly aligned with it (|n.x| >= 0.9), in which
// case the Y axis is used instead, so the projection never degenerates.
func NewPlaneBasis(normal r3.Vector, up *r3.Vector) (PlaneBasis, error) {
	if normal.Norm2() < basisEpsilon {
		return PlaneBasis{}, ErrZeroNormal
	}
	n := normal.Normalize()

	var hint r3.Vector
	if up != nil {
		hint = *up
	} else if n.X < 0.9 && n.X > -0.9 {
		hint = r3.Vector{X: 1}
	} else {
		hint = r3.Vector{Y: 1}
	}

	// Project the hint onto the plane orthogonal to n.
	u := hint.Sub(n.Mul(hint.Dot(n)))
	if u.Norm2() < basisEpsilon {
		return PlaneBasis{}, ErrParallelHint
	}
	u = u.Normalize()
	v := n.Cross(u).Normalize()

	return PlaneBasis{U: u, V: v, N: n}, nil
}

// Matrix returns the 3x3 rotation matrix with columns [U V N]. It maps
// local plane coordinates to world coordinates.
func (b PlaneBasis) Matrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		b.U.X, b.V.X, b.N.X,
		b.U.Y, b.V.Y, b.N.Y,
		b.U.Z, b.V.Z, b.N.Z,
	})
}

// ToWorld maps a point given in local plane coordinates (at local z=0)
// to world coordinates: center + U*localX + V*localY.
func (b PlaneBasis) ToWorld(localX, localY float64, center r3.Vector) r3.Vector {
	return center.Add(b.U.Mul(localX)).Add(b.V.Mul(localY))
}
