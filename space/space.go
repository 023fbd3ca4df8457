// Package space implements the colour-space descriptors consumed by the
// metric tensor builders. Every space converts points to and from the CIE XYZ
// hub; descriptors are immutable values constructed explicitly by the caller.
package space

import (
	"fmt"
	"math"

	_ "github.com/colourlab/go-colourmetric/env"
)

// Vector holds the three coordinates of one colour point.
type Vector [3]float64

// Space is a colour coordinate system reachable from the CIE XYZ hub.
type Space interface {
	// Name identifies the space, including any parameters, and is used as the
	// coordinate cache key.
	Name() string
	// FromXYZ converts a point from XYZ into this space.
	FromXYZ(xyz Vector) Vector
	// ToXYZ converts a point from this space back into XYZ.
	ToXYZ(c Vector) Vector
}

// WhitePoint is a reference illuminant in XYZ with Y normalized to 1.
type WhitePoint Vector

// Standard illuminants.
var (
	WhiteD65 = WhitePoint{0.95047, 1.0, 1.08883}
	WhiteD50 = WhitePoint{0.96422, 1.0, 0.82521}
)

// String labels the white point for space names; descriptors under different
// illuminants must never share a cache key.
func (w WhitePoint) String() string {
	switch w {
	case WhiteD65:
		return "D65"
	case WhiteD50:
		return "D50"
	}
	return fmt.Sprintf("%.5f,%.5f,%.5f", w[0], w[1], w[2])
}

// XYZ is the CIE XYZ hub space. Conversions are the identity.
type XYZ struct{}

// NewXYZ returns the CIE XYZ descriptor.
func NewXYZ() XYZ { return XYZ{} }

func (XYZ) Name() string            { return "CIEXYZ" }
func (XYZ) FromXYZ(v Vector) Vector { return v }
func (XYZ) ToXYZ(v Vector) Vector   { return v }

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

func rad2deg(rad float64) float64 {
	return (180.0 / math.Pi) * rad
}
