package feature

import (
	"math"

	"github.com/paulmach/orb"
)

// Grid tiles the unit square [0,1]×[0,1] with rectangular windows of the
// given size, stepped by the given shifts. Windows are enumerated row-major
// by index; the last row/column may overhang the square (clipping is left
// to the caller's coordinates, which are normalized into the square anyway).
//
// Grid is a pure value: restarting an enumeration is just re-reading At(i).
type Grid struct {
	// Width and Height are the window dimensions, in (0,1].
	Width, Height float64
	// ShiftX and ShiftY are the positive step sizes between window origins.
	ShiftX, ShiftY float64
}

// NewGrid validates the parameters and returns the tiling.
func NewGrid(width, height, shiftX, shiftY float64) (Grid, error) {
	if width <= 0 || width > 1 || height <= 0 || height > 1 {
		return Grid{}, ErrBadWindowSize
	}
	if shiftX <= 0 || shiftY <= 0 {
		return Grid{}, ErrBadWindowShift
	}

	return Grid{Width: width, Height: height, ShiftX: shiftX, ShiftY: shiftY}, nil
}

// steps counts window origins along one axis: 0, shift, 2·shift, … while
// the origin lies strictly inside the square. Computed as a rounded count
// so accumulated float error cannot add a spurious edge origin.
func steps(shift float64) int {
	const eps = 1e-9

	return int(math.Ceil(1/shift - eps))
}

// Cols reports the number of window positions along X.
func (g Grid) Cols() int { return steps(g.ShiftX) }

// Rows reports the number of window positions along Y.
func (g Grid) Rows() int { return steps(g.ShiftY) }

// Len reports the total number of windows in the tiling.
func (g Grid) Len() int { return g.Cols() * g.Rows() }

// At returns the i-th window (row-major) as an orb.Bound.
func (g Grid) At(i int) orb.Bound {
	cols := g.Cols()
	row, col := i/cols, i%cols
	x0 := float64(col) * g.ShiftX
	y0 := float64(row) * g.ShiftY

	return orb.Bound{
		Min: orb.Point{x0, y0},
		Max: orb.Point{x0 + g.Width, y0 + g.Height},
	}
}

// Bounds materializes every window of the tiling, row-major.
func (g Grid) Bounds() []orb.Bound {
	out := make([]orb.Bound, g.Len())
	for i := range out {
		out[i] = g.At(i)
	}

	return out
}
