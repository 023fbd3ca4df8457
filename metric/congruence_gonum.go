//go:build gonum
// +build gonum

package metric

import (
	_ "github.com/colourlab/go-colourmetric/env"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gorgonia.org/tensor"
)

// congruence computes Jᵀ g J for every point of the batch via BLAS. g and
// jacs are flat (N,3,3) buffers in row-major order.
func congruence(g, jacs []float64, n int) *tensor.Dense {
	impl := blas64.Implementation()
	out := zeroBatch(n)
	backing := out.Data().([]float64)
	tmp := make([]float64, 9)
	for i := 0; i < n; i++ {
		gi := g[9*i : 9*i+9]
		ji := jacs[9*i : 9*i+9]

		// tmp = g * J
		impl.Dgemm(blas.NoTrans, blas.NoTrans, 3, 3, 3, 1.0, gi, 3, ji, 3, 0.0, tmp, 3)
		// out = Jᵀ * tmp
		impl.Dgemm(blas.Trans, blas.NoTrans, 3, 3, 3, 1.0, ji, 3, tmp, 3, 0.0, backing[9*i:9*i+9], 3)
	}
	return out
}
