package space

import (
	"github.com/colourlab/go-colourmetric/config"
	_ "github.com/colourlab/go-colourmetric/env"
)

// Matrix is a 3×3 Jacobian in row-major order.
type Matrix [3][3]float64

// JacobianXYZ returns d(sp)/d(XYZ) at the given XYZ point, by central
// differences with the step from config.
func JacobianXYZ(sp Space, xyz Vector) Matrix {
	var j Matrix
	h := config.JACOBIAN_STEP
	for col := 0; col < 3; col++ {
		hi, lo := xyz, xyz
		hi[col] += h
		lo[col] -= h
		chi := sp.FromXYZ(hi)
		clo := sp.FromXYZ(lo)
		for row := 0; row < 3; row++ {
			j[row][col] = (chi[row] - clo[row]) / (2 * h)
		}
	}
	return j
}

// JacobianToXYZ returns d(XYZ)/d(sp) at the given point in sp coordinates.
func JacobianToXYZ(sp Space, c Vector) Matrix {
	var j Matrix
	h := config.JACOBIAN_STEP
	for col := 0; col < 3; col++ {
		hi, lo := c, c
		hi[col] += h
		lo[col] -= h
		xhi := sp.ToXYZ(hi)
		xlo := sp.ToXYZ(lo)
		for row := 0; row < 3; row++ {
			j[row][col] = (xhi[row] - xlo[row]) / (2 * h)
		}
	}
	return j
}

// Mul returns the matrix product j*m.
func (j Matrix) Mul(m Matrix) Matrix {
	var out Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += j[r][k] * m[k][c]
			}
			out[r][c] = sum
		}
	}
	return out
}
