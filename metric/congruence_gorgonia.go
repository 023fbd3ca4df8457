//go:build gorgonia
// +build gorgonia

package metric

import (
	_ "github.com/colourlab/go-colourmetric/env"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// congruence computes Jᵀ g J for every point of the batch with a single
// gorgonia graph of two batched matrix multiplications. g and jacs are flat
// (N,3,3) buffers in row-major order.
func congruence(g, jacs []float64, n int) *tensor.Dense {
	graph := gorgonia.NewGraph()

	gDense := tensor.New(tensor.WithBacking(append([]float64(nil), g...)), tensor.WithShape(n, 3, 3))
	jDense := tensor.New(tensor.WithBacking(append([]float64(nil), jacs...)), tensor.WithShape(n, 3, 3))

	gNode := gorgonia.NewTensor(graph, tensor.Float64, 3, gorgonia.WithValue(gDense), gorgonia.WithName("tensors"))
	jNode := gorgonia.NewTensor(graph, tensor.Float64, 3, gorgonia.WithValue(jDense), gorgonia.WithName("jacobians"))

	jT := gorgonia.Must(gorgonia.Transpose(jNode, 0, 2, 1))
	inner := gorgonia.Must(gorgonia.BatchedMatMul(jT, gNode))
	outer := gorgonia.Must(gorgonia.BatchedMatMul(inner, jNode))

	machine := gorgonia.NewTapeMachine(graph)
	if err := machine.RunAll(); err != nil {
		panic(err)
	}
	machine.Close()

	backing := append([]float64(nil), outer.Value().Data().([]float64)...)
	return tensor.New(tensor.WithBacking(backing), tensor.WithShape(n, 3, 3))
}
