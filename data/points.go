// Package data holds batches of colour sample points. A batch stores its
// points in the CIE XYZ hub representation and lazily caches the coordinates
// of every colour space it is asked for.
package data

import (
	"errors"
	"sync"

	_ "github.com/colourlab/go-colourmetric/env"
	"github.com/colourlab/go-colourmetric/space"
)

// Points is a fixed-length ordered batch of colour sample points.
type Points struct {
	lock  sync.RWMutex
	xyz   []float64 // flat, length 3*N
	cache map[string][]float64
}

// New creates a batch from flat coordinates (x0,y0,z0, x1,y1,z1, ...)
// expressed in the given space.
func New(sp space.Space, coords []float64) (*Points, error) {
	if len(coords)%3 != 0 {
		return nil, errors.New("coordinate length is not a multiple of 3")
	}
	xyz := make([]float64, len(coords))
	for i := 0; i < len(coords); i += 3 {
		v := sp.ToXYZ(space.Vector{coords[i], coords[i+1], coords[i+2]})
		xyz[i], xyz[i+1], xyz[i+2] = v[0], v[1], v[2]
	}
	return &Points{
		xyz:   xyz,
		cache: make(map[string][]float64),
	}, nil
}

// Regular creates a batch covering the regular grid spanned by the three axis
// value lists in the given space. The first axis varies slowest.
func Regular(sp space.Space, axis0, axis1, axis2 []float64) (*Points, error) {
	coords := make([]float64, 0, 3*len(axis0)*len(axis1)*len(axis2))
	for _, v0 := range axis0 {
		for _, v1 := range axis1 {
			for _, v2 := range axis2 {
				coords = append(coords, v0, v1, v2)
			}
		}
	}
	return New(sp, coords)
}

// Len returns the number of points in the batch.
func (p *Points) Len() int {
	return len(p.xyz) / 3
}

// Get returns the batch coordinates in the given space as a flat slice of
// length 3*N, point order preserved. The slice is cached and shared; callers
// must treat it as read-only.
func (p *Points) Get(sp space.Space) []float64 {
	key := sp.Name()
	p.lock.RLock()
	cached, ok := p.cache[key]
	p.lock.RUnlock()
	if ok {
		return cached
	}

	coords := make([]float64, len(p.xyz))
	for i := 0; i < len(p.xyz); i += 3 {
		v := sp.FromXYZ(space.Vector{p.xyz[i], p.xyz[i+1], p.xyz[i+2]})
		coords[i], coords[i+1], coords[i+2] = v[0], v[1], v[2]
	}

	p.lock.Lock()
	// another goroutine may have filled the entry meanwhile; keep the first
	if winner, ok := p.cache[key]; ok {
		coords = winner
	} else {
		p.cache[key] = coords
	}
	p.lock.Unlock()
	return coords
}

// Point returns the coordinates of point i in the given space.
func (p *Points) Point(sp space.Space, i int) space.Vector {
	coords := p.Get(sp)
	return space.Vector{coords[3*i], coords[3*i+1], coords[3*i+2]}
}
