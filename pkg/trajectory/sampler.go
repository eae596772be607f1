package trajectory

import "math"

// Sample is one point of an arc sweep in local plane coordinates,
// before placement in the world.
type Sample struct {
	Angle    float64 // degrees
	Progress float64 // 0..1 along the sweep
	LocalX   float64
	LocalY   float64
	Z        float64
}

// ZProfile evaluates the out-of-plane coordinate at a given progress
// fraction in [0,1].
type ZProfile interface {
	At(progress float64) float64
}

// ZRange interpolates between explicit start and end heights across
// the sweep.
type ZRange struct {
	Start, End float64
	Policy     ZPolicy
}

// At returns the height at progress p. An unknown policy behaves as
// ZLinear, matching ParseZPolicy.
func (z ZRange) At(p float64) float64 {
	switch z.Policy {
	case ZNone:
		return z.Start
	case ZSine:
		return z.Start + (z.End-z.Start)*math.Sin(p*math.Pi)
	case ZCosine:
		return z.Start + (z.End-z.Start)*(1-math.Cos(p*math.Pi))/2
	default:
		return z.Start + (z.End-z.Start)*p
	}
}

// ZOscillate varies the height around a center value by up to Offset,
// returning to the vicinity of the center as the sweep completes.
type ZOscillate struct {
	Center, Offset float64
	Policy         ZPolicy
}

// At returns the height at progress p. Linear runs -Offset..+Offset,
// sine and cosine complete a full period over the sweep. An unknown
// policy behaves as ZLinear.
func (z ZOscillate) At(p float64) float64 {
	switch z.Policy {
	case ZNone:
		return z.Center
	case ZSine:
		return z.Center + z.Offset*math.Sin(p*2*math.Pi)
	case ZCosine:
		return z.Center + z.Offset*math.Cos(p*2*math.Pi)
	default:
		return z.Center + z.Offset*(2*p-1)
	}
}

// ArcSampler produces local-frame samples for one arc sweep.
type ArcSampler struct {
	Radius     float64
	StartAngle float64 // degrees
	EndAngle   float64 // degrees
	NumPoints  int
	Convention Convention
	Z          ZProfile // nil leaves Z at 0
}

// Sample returns the ordered samples for the sweep. The angle range is
// inclusive at both ends; NumPoints == 1 yields a single sample at
// StartAngle with progress 0.
func (s ArcSampler) Sample() ([]Sample, error) {
	if s.NumPoints < 1 {
		return nil, ErrNumPoints
	}
	if s.Radius <= 0 {
		return nil, ErrRadius
	}

	out := make([]Sample, 0, s.NumPoints)
	step := 0.0
	if s.NumPoints > 1 {
		step = (s.EndAngle - s.StartAngle) / float64(s.NumPoints-1)
	}

	for i := 0; i < s.NumPoints; i++ {
		angle := s.StartAngle + float64(i)*step
		progress := 0.0
		if s.NumPoints > 1 {
			progress = float64(i) / float64(s.NumPoints-1)
		}

		rad := angle * math.Pi / 180
		var x, y float64
		switch s.Convention {
		case ConventionA:
			x = s.Radius * math.Sin(rad)
			y = s.Radius * -math.Cos(rad)
		default:
			x = s.Radius * math.Cos(rad)
			y = s.Radius * math.Sin(rad)
		}

		z := 0.0
		if s.Z != nil {
			z = s.Z.At(progress)
		}

		out = append(out, Sample{
			Angle:    angle,
			Progress: progress,
			LocalX:   x,
			LocalY:   y,
			Z:        z,
		})
	}
	return out, nil
}
