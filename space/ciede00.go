package space

import (
	"fmt"
	"math"

	_ "github.com/colourlab/go-colourmetric/env"
)

const pow25To7 = 6103515625.0 // 25^7

// chromaCorrection is the CIEDE2000 G factor evaluated at a single point's
// chroma rather than at the pair mean.
func chromaCorrection(c float64) float64 {
	c7 := math.Pow(c, 7)
	return 0.5 * (1 - math.Sqrt(c7/(c7+pow25To7)))
}

// CIEDE00LCh is the cylindrical (L', C', h') representation underlying the
// CIEDE2000 formula, with the a-axis rescaled by the per-point G correction.
// The hue angle is stored in radians.
type CIEDE00LCh struct {
	lab CIELAB
}

// NewCIEDE00LCh returns the CIEDE2000 LCh descriptor over CIELAB with the
// given white point.
func NewCIEDE00LCh(white WhitePoint) CIEDE00LCh {
	return CIEDE00LCh{lab: NewCIELAB(white)}
}

func (s CIEDE00LCh) Name() string { return fmt.Sprintf("CIEDE2000 LCh(%s)", s.lab.white) }

func (s CIEDE00LCh) FromXYZ(xyz Vector) Vector {
	lab := s.lab.FromXYZ(xyz)
	cab := math.Hypot(lab[1], lab[2])
	aPrime := lab[1] * (1 + chromaCorrection(cab))
	return Vector{
		lab[0],
		math.Hypot(aPrime, lab[2]),
		math.Atan2(lab[2], aPrime),
	}
}

func (s CIEDE00LCh) ToXYZ(lch Vector) Vector {
	aPrime := lch[1] * math.Cos(lch[2])
	b := lch[1] * math.Sin(lch[2])
	// a depends on its own chroma through G; the fixed point converges fast
	// since G stays within [0, 0.5].
	a := aPrime
	for iter := 0; iter < 32; iter++ {
		a = aPrime / (1 + chromaCorrection(math.Hypot(a, b)))
	}
	return s.lab.ToXYZ(Vector{lch[0], a, b})
}
