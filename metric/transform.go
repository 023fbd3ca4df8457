package metric

import (
	"sync"

	"github.com/colourlab/go-colourmetric/config"
	_ "github.com/colourlab/go-colourmetric/env"
	"github.com/colourlab/go-colourmetric/space"
	"gorgonia.org/tensor"
)

// In re-expresses the tensor batch in the target colour space and returns a
// fresh (N,3,3) batch; the stored result is not modified. Tensors transform
// by congruence, g' = Jᵀ g J, with the Jacobian of the native space with
// respect to the target chained through XYZ at every point.
func (r *Result) In(target space.Space) *tensor.Dense {
	if target.Name() == r.space.Name() {
		return r.tensors.Clone().(*tensor.Dense)
	}
	n := r.Len()
	xyz := r.points.Get(space.NewXYZ())
	targetCoords := r.points.Get(target)

	// Per-point Jacobians are independent; chunk them across workers.
	jacs := make([]float64, 9*n)
	var wg sync.WaitGroup
	for start := 0; start < n; start += config.BATCH_CHUNK {
		start := start
		end := min(start+config.BATCH_CHUNK, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				at := space.Vector{xyz[3*i], xyz[3*i+1], xyz[3*i+2]}
				tc := space.Vector{targetCoords[3*i], targetCoords[3*i+1], targetCoords[3*i+2]}
				j := space.JacobianXYZ(r.space, at).Mul(space.JacobianToXYZ(target, tc))
				for row := 0; row < 3; row++ {
					for col := 0; col < 3; col++ {
						jacs[9*i+3*row+col] = j[row][col]
					}
				}
			}
		}()
	}
	wg.Wait()

	return congruence(r.tensors.Data().([]float64), jacs, n)
}
