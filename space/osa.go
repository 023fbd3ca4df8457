package space

import (
	"math"

	_ "github.com/colourlab/go-colourmetric/env"
	"gonum.org/v1/gonum/mat"
)

// osaRGB is the OSA-UCS sensor matrix applied to XYZ scaled to 0..100.
var osaRGB = [3][3]float64{
	{0.799, 0.4194, -0.1648},
	{-0.4493, 1.3265, 0.0927},
	{-0.1149, 0.3394, 0.717},
}

// OSAUCS is the OSA-UCS uniform colour space with coordinates (L, g, j).
type OSAUCS struct{}

// NewOSAUCS returns the OSA-UCS descriptor.
func NewOSAUCS() OSAUCS { return OSAUCS{} }

func (OSAUCS) Name() string { return "OSA-UCS" }

func (OSAUCS) FromXYZ(xyz Vector) Vector {
	x100 := xyz[0] * 100
	y100 := xyz[1] * 100
	z100 := xyz[2] * 100
	sum := x100 + y100 + z100
	var cx, cy float64
	if sum != 0 {
		cx = x100 / sum
		cy = y100 / sum
	}
	y0 := y100 * (4.4934*cx*cx + 4.3034*cy*cy - 4.276*cx*cy - 1.3744*cx - 2.5643*cy + 1.8103)
	lambda := 5.9 * ((math.Cbrt(y0) - 2.0/3.0) + 0.042*math.Cbrt(y0-30))
	lightness := (lambda - 14.4) / math.Sqrt2
	r := osaRGB[0][0]*x100 + osaRGB[0][1]*y100 + osaRGB[0][2]*z100
	g := osaRGB[1][0]*x100 + osaRGB[1][1]*y100 + osaRGB[1][2]*z100
	b := osaRGB[2][0]*x100 + osaRGB[2][1]*y100 + osaRGB[2][2]*z100
	var scale float64
	if denom := 5.9 * (math.Cbrt(y0) - 2.0/3.0); denom != 0 {
		scale = lambda / denom
	}
	green := scale * (-13.7*math.Cbrt(r) + 17.7*math.Cbrt(g) - 4*math.Cbrt(b))
	yellow := scale * (1.7*math.Cbrt(r) + 8*math.Cbrt(g) - 9.7*math.Cbrt(b))
	return Vector{lightness, green, yellow}
}

// ToXYZ inverts the forward transform numerically: the OSA-UCS equations have
// no closed-form inverse. Damped Newton with a finite-difference Jacobian
// converges in a handful of steps anywhere inside the object-colour solid.
func (s OSAUCS) ToXYZ(target Vector) Vector {
	xyz := Vector{0.5 * WhiteD65[0], 0.5 * WhiteD65[1], 0.5 * WhiteD65[2]}
	jac := mat.NewDense(3, 3, nil)
	residual := mat.NewVecDense(3, nil)
	step := mat.NewVecDense(3, nil)
	for iter := 0; iter < 64; iter++ {
		got := s.FromXYZ(xyz)
		var norm float64
		for i := 0; i < 3; i++ {
			diff := got[i] - target[i]
			residual.SetVec(i, diff)
			norm += diff * diff
		}
		if norm < 1e-24 {
			break
		}
		j := JacobianXYZ(s, xyz)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				jac.Set(r, c, j[r][c])
			}
		}
		if err := step.SolveVec(jac, residual); err != nil {
			break
		}
		damp := 1.0
		if iter < 4 {
			damp = 0.5
		}
		for i := 0; i < 3; i++ {
			xyz[i] -= damp * step.AtVec(i)
		}
	}
	return xyz
}

// EuclideanE is Oleari's log-compressed Euclidean colour space built on
// OSA-UCS, in which the E colour-difference formula is a plain distance.
type EuclideanE struct {
	osa OSAUCS
}

// NewEuclideanE returns the E space descriptor.
func NewEuclideanE() EuclideanE { return EuclideanE{} }

func (EuclideanE) Name() string { return "Euclidean E" }

// Oleari compression constants.
const (
	eAL = 2.890
	eBL = 0.015
	eAC = 1.256
	eBC = 0.050
)

func (s EuclideanE) FromXYZ(xyz Vector) Vector {
	osa := s.osa.FromXYZ(xyz)
	chroma := math.Hypot(osa[1], osa[2])
	le := (1 / eBL) * math.Log(1+(eBL/eAL)*(10*osa[0]))
	ce := (1 / eBC) * math.Log(1+(eBC/eAC)*(10*chroma))
	if chroma == 0 {
		return Vector{le, 0, 0}
	}
	ratio := ce / chroma
	return Vector{le, osa[1] * ratio, osa[2] * ratio}
}

func (s EuclideanE) ToXYZ(e Vector) Vector {
	ce := math.Hypot(e[1], e[2])
	losa := (eAL / (10 * eBL)) * (math.Exp(eBL*e[0]) - 1)
	if ce == 0 {
		return s.osa.ToXYZ(Vector{losa, 0, 0})
	}
	chroma := (eAC / (10 * eBC)) * (math.Exp(eBC*ce) - 1)
	ratio := chroma / ce
	return s.osa.ToXYZ(Vector{losa, e[1] * ratio, e[2] * ratio})
}
