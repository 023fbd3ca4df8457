package config

import (
	_ "github.com/colourlab/go-colourmetric/env"
)

// Metric holds the parametric factors shared by the perceptual models.
type Metric struct {
	// CIEDE2000 parametric weighting factors. Zero means 1.
	KL float64 `json:"k_l"`
	KC float64 `json:"k_c"`
	Kh float64 `json:"k_h"`
	// Radius of curvature for hyperbolic disk models. Zero means DEFAULT_RADIUS.
	Radius float64 `json:"radius"`
}

func (m *Metric) setDefaults() {
	if m.KL == 0 {
		m.KL = 1
	}
	if m.KC == 0 {
		m.KC = 1
	}
	if m.Kh == 0 {
		m.Kh = 1
	}
	if m.Radius == 0 {
		m.Radius = DEFAULT_RADIUS
	}
}

// Grid describes the regular sample grid evaluated by the CLI.
type Grid struct {
	Lightness Axis `json:"lightness"`
	A         Axis `json:"a"`
	B         Axis `json:"b"`
}

// Axis is an inclusive linearly spaced range.
type Axis struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Steps int     `json:"steps"`
}

func (g *Grid) setDefaults() {
	if g.Lightness.Steps == 0 {
		g.Lightness = Axis{From: 1, To: 100, Steps: 10}
	}
	if g.A.Steps == 0 {
		g.A = Axis{From: -100, To: 100, Steps: 21}
	}
	if g.B.Steps == 0 {
		g.B = Axis{From: -100, To: 100, Steps: 21}
	}
}

// Values expands the axis into its sample positions.
func (a Axis) Values() []float64 {
	if a.Steps < 2 {
		return []float64{a.From}
	}
	values := make([]float64, a.Steps)
	step := (a.To - a.From) / float64(a.Steps-1)
	for i := range values {
		values[i] = a.From + float64(i)*step
	}
	return values
}
