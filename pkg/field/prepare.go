package field

import (
	"fmt"
	"math"
)

// Magnitude combines per-axis component fields into |v| = sqrt(sum c^2).
// All components must share a shape; the placement of the first is kept.
func Magnitude(components ...Field) (*Grid, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("field: magnitude of zero components")
	}
	first := components[0]
	n := first.Shape()
	for idx, c := range components[1:] {
		if c.Shape() != n {
			s := c.Shape()
			return nil, fmt.Errorf("field: component %d has shape %dx%dx%d, want %dx%dx%d",
				idx+1, s[0], s[1], s[2], n[0], n[1], n[2])
		}
	}

	values := make([]float64, n[0]*n[1]*n[2])
	for k := 0; k < n[2]; k++ {
		for j := 0; j < n[1]; j++ {
			for i := 0; i < n[0]; i++ {
				var sum float64
				for _, c := range components {
					v := c.At(i, j, k)
					sum += v * v
				}
				values[i+n[0]*(j+n[1]*k)] = math.Sqrt(sum)
			}
		}
	}
	return NewGrid(n, first.Origin(), first.Spacing(), values)
}

// Roll shifts samples cyclically by di along x and dj along y, so the sample
// at (i, j, k) moves to ((i+di) mod nx, (j+dj) mod ny, k).
func Roll(g *Grid, di, dj int) *Grid {
	n := g.shape
	values := make([]float64, len(g.values))
	for k := 0; k < n[2]; k++ {
		for j := 0; j < n[1]; j++ {
			jj := mod(j+dj, n[1])
			for i := 0; i < n[0]; i++ {
				ii := mod(i+di, n[0])
				values[g.index(ii, jj, k)] = g.values[g.index(i, j, k)]
			}
		}
	}
	return &Grid{shape: n, origin: g.origin, spacing: g.spacing, values: values}
}

// Center rolls the grid by half its x and y extent so a unit cell whose
// origin sits at a corner ends up centred in the xy plane.
func Center(g *Grid) *Grid {
	return Roll(g, g.shape[0]/2, g.shape[1]/2)
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
