// Package metric computes local colour-difference metric tensors. Every
// builder maps a batch of sample points to one 3×3 tensor per point, packed
// as an (N,3,3) dense batch tagged with the colour space the formula is
// native to. Results are immutable once built.
package metric

import (
	"math"

	"github.com/colourlab/go-colourmetric/data"
	_ "github.com/colourlab/go-colourmetric/env"
	"github.com/colourlab/go-colourmetric/space"
	"gorgonia.org/tensor"
)

// Result pairs a tensor batch with its native colour space and the batch of
// sample points it was computed for.
type Result struct {
	space   space.Space
	points  *data.Points
	tensors *tensor.Dense // shape (N,3,3), float64
}

// Space returns the colour space the tensors are expressed in.
func (r *Result) Space() space.Space { return r.space }

// Points returns the originating sample batch.
func (r *Result) Points() *data.Points { return r.points }

// Tensors returns the (N,3,3) tensor batch in the native space. The batch is
// shared, not copied; callers must treat it as read-only.
func (r *Result) Tensors() *tensor.Dense { return r.tensors }

// Len returns the number of tensors in the batch.
func (r *Result) Len() int { return r.points.Len() }

// zeroBatch allocates a zeroed (n,3,3) float64 tensor batch.
func zeroBatch(n int) *tensor.Dense {
	return tensor.New(tensor.Of(tensor.Float64), tensor.WithShape(n, 3, 3))
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

func rad2deg(rad float64) float64 {
	return (180.0 / math.Pi) * rad
}
