package metric

import (
	"github.com/colourlab/go-colourmetric/data"
	_ "github.com/colourlab/go-colourmetric/env"
	"github.com/colourlab/go-colourmetric/space"
)

// Euclidean returns identity tensors in the given colour space. Several named
// difference formulas are plain Euclidean distance in their target space;
// expressing them as tensors keeps every model a Riemannian metric downstream.
func Euclidean(sp space.Space, pts *data.Points) *Result {
	n := pts.Len()
	g := zeroBatch(n)
	backing := g.Data().([]float64)
	for i := 0; i < n; i++ {
		backing[9*i] = 1
		backing[9*i+4] = 1
		backing[9*i+8] = 1
	}
	return &Result{space: sp, points: pts, tensors: g}
}

// DEab is the CIE76 Lab difference: Euclidean in CIELAB.
func DEab(pts *data.Points) *Result {
	return Euclidean(space.NewCIELAB(space.WhiteD65), pts)
}

// DEuv is the CIE76 Luv difference: Euclidean in CIELUV.
func DEuv(pts *data.Points) *Result {
	return Euclidean(space.NewCIELUV(space.WhiteD65), pts)
}

// DEE is Oleari's E difference: Euclidean in the log-compressed E space.
func DEE(pts *data.Points) *Result {
	return Euclidean(space.NewEuclideanE(), pts)
}

// DEDIN99 is the DIN99 difference: Euclidean in DIN99.
func DEDIN99(pts *data.Points) *Result {
	return Euclidean(space.NewDIN99(space.WhiteD65), pts)
}

// DEDIN99b is the DIN99b difference: Euclidean in DIN99b.
func DEDIN99b(pts *data.Points) *Result {
	return Euclidean(space.NewDIN99b(space.WhiteD65), pts)
}

// DEDIN99c is the DIN99c difference: Euclidean in DIN99c.
func DEDIN99c(pts *data.Points) *Result {
	return Euclidean(space.NewDIN99c(space.WhiteD65), pts)
}

// DEDIN99d is the DIN99d difference: Euclidean in DIN99d.
func DEDIN99d(pts *data.Points) *Result {
	return Euclidean(space.NewDIN99d(space.WhiteD65), pts)
}
