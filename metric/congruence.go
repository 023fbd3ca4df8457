//go:build !gonum && !gorgonia
// +build !gonum,!gorgonia

package metric

import (
	_ "github.com/colourlab/go-colourmetric/env"
	"gorgonia.org/tensor"
)

// congruence computes Jᵀ g J for every point of the batch. g and jacs are
// flat (N,3,3) buffers in row-major order.
func congruence(g, jacs []float64, n int) *tensor.Dense {
	out := zeroBatch(n)
	backing := out.Data().([]float64)
	for i := 0; i < n; i++ {
		gi := g[9*i : 9*i+9]
		ji := jacs[9*i : 9*i+9]

		// tmp = g * J
		var tmp [9]float64
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				var sum float64
				for k := 0; k < 3; k++ {
					sum += gi[3*row+k] * ji[3*k+col]
				}
				tmp[3*row+col] = sum
			}
		}

		// out = Jᵀ * tmp
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				var sum float64
				for k := 0; k < 3; k++ {
					sum += ji[3*k+row] * tmp[3*k+col]
				}
				backing[9*i+3*row+col] = sum
			}
		}
	}
	return out
}
