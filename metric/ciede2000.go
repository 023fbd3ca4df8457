package metric

import (
	"math"

	"github.com/colourlab/go-colourmetric/data"
	_ "github.com/colourlab/go-colourmetric/env"
	"github.com/colourlab/go-colourmetric/space"
)

const pow25To7 = 6103515625.0 // 25^7

// DE00 computes the Riemannised CIEDE2000 metric with parametric weighting
// factors kL, kC and kh (1 for the reference conditions). The result is
// native to the CIEDE2000 LCh space.
//
// The tensor is singular at C = 0: the hue direction carries no length there.
// That is a property of the formula, not an error, and is left to callers.
func DE00(pts *data.Points, kL, kC, kh float64) *Result {
	sp := space.NewCIEDE00LCh(space.WhiteD65)
	lch := pts.Get(sp)
	n := pts.Len()
	g := zeroBatch(n)
	backing := g.Data().([]float64)
	for i := 0; i < n; i++ {
		L := lch[3*i]
		C := lch[3*i+1]
		h := lch[3*i+2]

		hDeg := rad2deg(h)
		if hDeg < 0 {
			hDeg += 360
		}

		sL := 1 + (0.015*(L-50)*(L-50))/math.Sqrt(20+(L-50)*(L-50))
		sC := 1 + 0.045*C
		// The second harmonic stays in radians while the others go through
		// degrees; the published formula mixes the two conventions and the
		// asymmetry is kept as is.
		t := 1 -
			0.17*math.Cos(deg2rad(hDeg-30)) +
			0.24*math.Cos(2*h) +
			0.32*math.Cos(deg2rad(3*hDeg+6)) -
			0.2*math.Cos(deg2rad(4*hDeg-63))
		sH := 1 + 0.015*C*t
		c7 := math.Pow(C, 7)
		rC := 2 * math.Sqrt(c7/(c7+pow25To7))
		dTheta := 30 * math.Exp(-((hDeg-275)/25)*((hDeg-275)/25))
		rT := -rC * math.Sin(deg2rad(2*dTheta))

		lTerm := kL * sL
		cTerm := kC * sC
		hTerm := kh * sH
		coupling := 0.5 * C * rT / (cTerm * hTerm)

		backing[9*i] = 1 / (lTerm * lTerm)
		backing[9*i+4] = 1 / (cTerm * cTerm)
		backing[9*i+8] = C * C / (hTerm * hTerm)
		backing[9*i+5] = coupling
		backing[9*i+7] = coupling
	}
	return &Result{space: sp, points: pts, tensors: g}
}
