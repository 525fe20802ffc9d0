package field

import "math"

// Sample returns the trilinear interpolation of f at fractional grid
// coordinates. The domain is [0,nx-1]x[0,ny-1]x[0,nz-1] inclusive.
func Sample(f Field, i, j, k float64) (float64, error) {
	n := f.Shape()
	c := [3]float64{i, j, k}
	for axis := range c {
		if math.IsNaN(c[axis]) || c[axis] < 0 || c[axis] > float64(n[axis]-1) {
			return 0, &OutOfBoundsError{Coord: c, Shape: n}
		}
	}
	if err := Validate(f); err != nil {
		return 0, err
	}
	return trilinear(f, n, c), nil
}

// SampleClamped is Sample with coordinates clamped into the domain first.
// f must already satisfy Validate.
func SampleClamped(f Field, i, j, k float64) float64 {
	n := f.Shape()
	c := [3]float64{i, j, k}
	for axis := range c {
		c[axis] = math.Max(0, math.Min(c[axis], float64(n[axis]-1)))
	}
	return trilinear(f, n, c)
}

// trilinear blends the 8 samples of the cell containing c. Coordinates on the
// upper boundary use the last cell with a fraction of 1.
func trilinear(f Field, n [3]int, c [3]float64) float64 {
	var lo [3]int
	var fr [3]float64
	for axis := range c {
		l := int(math.Floor(c[axis]))
		if l > n[axis]-2 {
			l = n[axis] - 2
		}
		lo[axis] = l
		fr[axis] = c[axis] - float64(l)
	}

	var value float64
	for dk := 0; dk < 2; dk++ {
		wk := weight(fr[2], dk)
		for dj := 0; dj < 2; dj++ {
			wj := weight(fr[1], dj)
			for di := 0; di < 2; di++ {
				w := weight(fr[0], di) * wj * wk
				if w == 0 {
					continue
				}
				value += w * f.At(lo[0]+di, lo[1]+dj, lo[2]+dk)
			}
		}
	}
	return value
}

func weight(frac float64, upper int) float64 {
	if upper == 1 {
		return frac
	}
	return 1 - frac
}
