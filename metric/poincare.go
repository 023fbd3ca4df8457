package metric

import (
	"github.com/colourlab/go-colourmetric/data"
	_ "github.com/colourlab/go-colourmetric/env"
	"github.com/colourlab/go-colourmetric/space"
)

// PoincareDisk computes the hyperbolic metric of a Poincaré disk model with
// curvature radius R = sp.R(). The chromatic terms diverge as a point
// approaches the unit-disk boundary; the boundary is at infinite perceptual
// distance and no clamping is applied.
func PoincareDisk(sp *space.PoincareDisk, pts *data.Points) *Result {
	d := pts.Get(sp)
	n := pts.Len()
	r2 := sp.R() * sp.R()
	g := zeroBatch(n)
	backing := g.Data().([]float64)
	for i := 0; i < n; i++ {
		d1 := d[3*i+1]
		d2 := d[3*i+2]
		denom := 1 - d1*d1 - d2*d2
		chromatic := r2 * 4.0 / (denom * denom)
		backing[9*i] = 1
		backing[9*i+4] = chromatic
		backing[9*i+8] = chromatic
	}
	return &Result{space: sp, points: pts, tensors: g}
}
