package space

import (
	"fmt"
	"math"

	_ "github.com/colourlab/go-colourmetric/env"
)

const (
	labDelta  = 6.0 / 29.0
	labDelta2 = labDelta * labDelta
	labDelta3 = labDelta * labDelta * labDelta
)

func labF(t float64) float64 {
	if t > labDelta3 {
		return math.Cbrt(t)
	}
	return t/(3*labDelta2) + 4.0/29.0
}

func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta2 * (t - 4.0/29.0)
}

// CIELAB is the CIE 1976 L*a*b* space under a given white point.
type CIELAB struct {
	white WhitePoint
}

// NewCIELAB returns a CIELAB descriptor for the given white point.
func NewCIELAB(white WhitePoint) CIELAB {
	return CIELAB{white: white}
}

func (s CIELAB) Name() string { return fmt.Sprintf("CIELAB(%s)", s.white) }

func (s CIELAB) FromXYZ(xyz Vector) Vector {
	fx := labF(xyz[0] / s.white[0])
	fy := labF(xyz[1] / s.white[1])
	fz := labF(xyz[2] / s.white[2])
	return Vector{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

func (s CIELAB) ToXYZ(lab Vector) Vector {
	fy := (lab[0] + 16) / 116
	fx := fy + lab[1]/500
	fz := fy - lab[2]/200
	return Vector{
		s.white[0] * labFInv(fx),
		s.white[1] * labFInv(fy),
		s.white[2] * labFInv(fz),
	}
}

// CIELUV is the CIE 1976 L*u*v* space under a given white point.
type CIELUV struct {
	white WhitePoint
}

// NewCIELUV returns a CIELUV descriptor for the given white point.
func NewCIELUV(white WhitePoint) CIELUV {
	return CIELUV{white: white}
}

func (s CIELUV) Name() string { return fmt.Sprintf("CIELUV(%s)", s.white) }

func uvPrime(xyz Vector) (u, v float64) {
	denom := xyz[0] + 15*xyz[1] + 3*xyz[2]
	if denom == 0 {
		return 0, 0
	}
	return 4 * xyz[0] / denom, 9 * xyz[1] / denom
}

func (s CIELUV) FromXYZ(xyz Vector) Vector {
	un, vn := uvPrime(Vector(s.white))
	u, v := uvPrime(xyz)
	yr := xyz[1] / s.white[1]
	var lightness float64
	if yr > labDelta3 {
		lightness = 116*math.Cbrt(yr) - 16
	} else {
		lightness = yr * 24389.0 / 27.0
	}
	return Vector{
		lightness,
		13 * lightness * (u - un),
		13 * lightness * (v - vn),
	}
}

func (s CIELUV) ToXYZ(luv Vector) Vector {
	lightness := luv[0]
	if lightness == 0 {
		return Vector{0, 0, 0}
	}
	un, vn := uvPrime(Vector(s.white))
	u := luv[1]/(13*lightness) + un
	v := luv[2]/(13*lightness) + vn
	var y float64
	if lightness > 8 {
		t := (lightness + 16) / 116
		y = s.white[1] * t * t * t
	} else {
		y = s.white[1] * lightness * 27.0 / 24389.0
	}
	if v == 0 {
		return Vector{0, y, 0}
	}
	x := y * 9 * u / (4 * v)
	z := y * (12 - 3*u - 20*v) / (4 * v)
	return Vector{x, y, z}
}
