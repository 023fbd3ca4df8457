package space

import (
	"fmt"
	"math"

	_ "github.com/colourlab/go-colourmetric/env"
)

// PoincareDisk wraps a Lab-like base space, mapping its chromatic plane onto
// the unit Poincaré disk with curvature radius R. The first coordinate passes
// through unchanged; the chromatic radius r maps to tanh(r/(2R)), so the disk
// boundary sits at infinite chromatic distance.
type PoincareDisk struct {
	base   Space
	radius float64
}

// NewPoincareDisk wraps base in a Poincaré disk model with curvature radius r.
func NewPoincareDisk(base Space, r float64) *PoincareDisk {
	return &PoincareDisk{base: base, radius: r}
}

// R returns the curvature radius.
func (s *PoincareDisk) R() float64 { return s.radius }

// Base returns the wrapped space.
func (s *PoincareDisk) Base() Space { return s.base }

func (s *PoincareDisk) Name() string {
	return fmt.Sprintf("poincare(%s,R=%g)", s.base.Name(), s.radius)
}

func (s *PoincareDisk) FromXYZ(xyz Vector) Vector {
	c := s.base.FromXYZ(xyz)
	r := math.Hypot(c[1], c[2])
	if r == 0 {
		return Vector{c[0], 0, 0}
	}
	scale := math.Tanh(r/(2*s.radius)) / r
	return Vector{c[0], c[1] * scale, c[2] * scale}
}

func (s *PoincareDisk) ToXYZ(d Vector) Vector {
	r := math.Hypot(d[1], d[2])
	if r == 0 {
		return s.base.ToXYZ(Vector{d[0], 0, 0})
	}
	scale := 2 * s.radius * math.Atanh(r) / r
	return s.base.ToXYZ(Vector{d[0], d[1] * scale, d[2] * scale})
}
