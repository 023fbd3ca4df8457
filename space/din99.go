package space

import (
	"fmt"
	"math"

	_ "github.com/colourlab/go-colourmetric/env"
)

// DIN99 is the family of DIN 6176 log-compressed Lab-like spaces. The four
// published variants differ only in their compression and rotation constants.
type DIN99 struct {
	variant din99Variant
	white   WhitePoint
}

type din99Variant struct {
	suffix   string
	lScale   float64 // L99 = lScale * ln(1 + lOffset*L)
	lOffset  float64
	angle    float64 // axis rotation, degrees
	fFactor  float64 // compression of the second rotated axis
	cScale   float64 // C99 = cScale * ln(1 + cOffset*G)
	cOffset  float64
	rotate   bool    // add the rotation angle back onto the hue
	xMix     float64 // X' = (1+xMix)*X - xMix*Z applied before CIELAB
}

var (
	din99Std = din99Variant{suffix: "", lScale: 105.51, lOffset: 0.0158, angle: 16, fFactor: 0.7, cScale: 1 / 0.045, cOffset: 0.045}
	din99B   = din99Variant{suffix: "b", lScale: 303.67, lOffset: 0.0039, angle: 26, fFactor: 0.83, cScale: 23.0, cOffset: 0.075, rotate: true}
	din99C   = din99Variant{suffix: "c", lScale: 317.65, lOffset: 0.0037, angle: 0, fFactor: 0.94, cScale: 23.0, cOffset: 0.066, xMix: 0.1}
	din99D   = din99Variant{suffix: "d", lScale: 325.22, lOffset: 0.0036, angle: 50, fFactor: 1.14, cScale: 22.5, cOffset: 0.06, rotate: true, xMix: 0.12}
)

// NewDIN99 returns the original DIN99 descriptor.
func NewDIN99(white WhitePoint) DIN99 { return DIN99{variant: din99Std, white: white} }

// NewDIN99b returns the DIN99b descriptor.
func NewDIN99b(white WhitePoint) DIN99 { return DIN99{variant: din99B, white: white} }

// NewDIN99c returns the DIN99c descriptor.
func NewDIN99c(white WhitePoint) DIN99 { return DIN99{variant: din99C, white: white} }

// NewDIN99d returns the DIN99d descriptor.
func NewDIN99d(white WhitePoint) DIN99 { return DIN99{variant: din99D, white: white} }

func (s DIN99) Name() string { return fmt.Sprintf("DIN99%s(%s)", s.variant.suffix, s.white) }

func (s DIN99) lab() CIELAB {
	if s.variant.xMix == 0 {
		return NewCIELAB(s.white)
	}
	// The c and d variants shift X before the Lab step; the white point gets
	// the same treatment.
	mixed := s.white
	mixed[0] = (1+s.variant.xMix)*s.white[0] - s.variant.xMix*s.white[2]
	return NewCIELAB(mixed)
}

func (s DIN99) FromXYZ(xyz Vector) Vector {
	v := s.variant
	if v.xMix != 0 {
		xyz[0] = (1+v.xMix)*xyz[0] - v.xMix*xyz[2]
	}
	lab := s.lab().FromXYZ(xyz)
	sin, cos := math.Sincos(deg2rad(v.angle))
	e := lab[1]*cos + lab[2]*sin
	f := v.fFactor * (-lab[1]*sin + lab[2]*cos)
	g := math.Hypot(e, f)
	c99 := v.cScale * math.Log(1+v.cOffset*g)
	h := math.Atan2(f, e)
	if v.rotate {
		h += deg2rad(v.angle)
	}
	return Vector{
		v.lScale * math.Log(1+v.lOffset*lab[0]),
		c99 * math.Cos(h),
		c99 * math.Sin(h),
	}
}

func (s DIN99) ToXYZ(c Vector) Vector {
	v := s.variant
	c99 := math.Hypot(c[1], c[2])
	h := math.Atan2(c[2], c[1])
	if v.rotate {
		h -= deg2rad(v.angle)
	}
	g := (math.Exp(c99/v.cScale) - 1) / v.cOffset
	e := g * math.Cos(h)
	f := g * math.Sin(h)
	sin, cos := math.Sincos(deg2rad(v.angle))
	a := e*cos - (f/v.fFactor)*sin
	b := e*sin + (f/v.fFactor)*cos
	lightness := (math.Exp(c[0]/v.lScale) - 1) / v.lOffset
	xyz := s.lab().ToXYZ(Vector{lightness, a, b})
	if v.xMix != 0 {
		xyz[0] = (xyz[0] + v.xMix*xyz[2]) / (1 + v.xMix)
	}
	return xyz
}
