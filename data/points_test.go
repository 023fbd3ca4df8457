package data

import (
	"math"
	"sync"
	"testing"

	"github.com/colourlab/go-colourmetric/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsRaggedCoordinates(t *testing.T) {
	_, err := New(space.NewXYZ(), []float64{1, 2})
	require.Error(t, err)
}

func TestLenAndOrder(t *testing.T) {
	lab := space.NewCIELAB(space.WhiteD65)
	pts, err := New(lab, []float64{50, 10, -20, 70, -5, 40})
	require.NoError(t, err)
	require.Equal(t, 2, pts.Len())

	back := pts.Get(lab)
	require.Len(t, back, 6)
	assert.InDelta(t, 50, back[0], 1e-9)
	assert.InDelta(t, 10, back[1], 1e-9)
	assert.InDelta(t, -20, back[2], 1e-9)
	assert.InDelta(t, 70, back[3], 1e-9)
	assert.InDelta(t, -5, back[4], 1e-9)
	assert.InDelta(t, 40, back[5], 1e-9)
}

func TestRegularGridSize(t *testing.T) {
	lab := space.NewCIELAB(space.WhiteD65)
	pts, err := Regular(lab,
		[]float64{1, 50, 100},
		[]float64{-100, 0, 100},
		[]float64{-100, 100},
	)
	require.NoError(t, err)
	assert.Equal(t, 3*3*2, pts.Len())

	// first axis varies slowest
	first := pts.Point(lab, 0)
	assert.InDelta(t, 1, first[0], 1e-9)
	assert.InDelta(t, -100, first[1], 1e-9)
	assert.InDelta(t, -100, first[2], 1e-9)
	second := pts.Point(lab, 1)
	assert.InDelta(t, -100, second[1], 1e-9)
	assert.InDelta(t, 100, second[2], 1e-9)
}

func TestGetCachesPerSpace(t *testing.T) {
	lab := space.NewCIELAB(space.WhiteD65)
	pts, err := New(space.NewXYZ(), []float64{0.4, 0.42, 0.45})
	require.NoError(t, err)

	first := pts.Get(lab)
	second := pts.Get(lab)
	require.Same(t, &first[0], &second[0], "expected the cached slice back")
}

func TestGetDistinguishesWhitePoints(t *testing.T) {
	xyz := space.Vector{0.5, 0.5, 0.4}
	pts, err := New(space.NewXYZ(), []float64{xyz[0], xyz[1], xyz[2]})
	require.NoError(t, err)

	d65 := space.NewCIELAB(space.WhiteD65)
	d50 := space.NewCIELAB(space.WhiteD50)
	require.NotEqual(t, d65.Name(), d50.Name())

	underD65 := pts.Get(d65)
	underD50 := pts.Get(d50)
	direct := d50.FromXYZ(xyz)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, direct[i], underD50[i], 1e-12)
	}
	// the illuminants disagree about the chromatic axes for this point
	assert.Greater(t, math.Abs(underD50[1]-underD65[1]), 0.5)
	assert.Greater(t, math.Abs(underD50[2]-underD65[2]), 0.5)
}

func TestGetConcurrent(t *testing.T) {
	pts, err := Regular(space.NewCIELAB(space.WhiteD65),
		[]float64{10, 50, 90},
		[]float64{-50, 0, 50},
		[]float64{-50, 0, 50},
	)
	require.NoError(t, err)

	spaces := []space.Space{
		space.NewCIELAB(space.WhiteD65),
		space.NewCIELUV(space.WhiteD65),
		space.NewDIN99(space.WhiteD65),
		space.NewCIEDE00LCh(space.WhiteD65),
	}
	var wg sync.WaitGroup
	for iter := 0; iter < 8; iter++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, sp := range spaces {
				coords := pts.Get(sp)
				assert.Len(t, coords, 3*pts.Len())
			}
		}()
	}
	wg.Wait()
}
