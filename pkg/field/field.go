// Package field defines volumetric scalar fields sampled on a regular grid.
// A field maps integer grid indices to scalar values and carries the
// origin/spacing transform that places those indices in world space.
package field

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Field is a read-only 3D scalar field on a regular grid.
// Implementations must be safe for concurrent reads.
type Field interface {
	// Shape returns the number of samples along x, y and z.
	Shape() [3]int
	// Origin is the world position of sample (0,0,0).
	Origin() v3.Vec
	// Spacing is the world distance between neighbouring samples per axis.
	Spacing() v3.Vec
	// At returns the sample at integer grid indices inside Shape.
	At(i, j, k int) float64
}

// MalformedFieldError reports a field whose geometry cannot hold a voxel cell.
type MalformedFieldError struct {
	Shape  [3]int
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %dx%dx%d: %s", e.Shape[0], e.Shape[1], e.Shape[2], e.Reason)
}

// OutOfBoundsError reports a sample coordinate outside the grid domain.
type OutOfBoundsError struct {
	Coord [3]float64
	Shape [3]int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("sample (%g, %g, %g) outside field domain [0,%d]x[0,%d]x[0,%d]",
		e.Coord[0], e.Coord[1], e.Coord[2], e.Shape[0]-1, e.Shape[1]-1, e.Shape[2]-1)
}

// Validate checks the shape and spacing invariants shared by every Field.
func Validate(f Field) error {
	return validateGeometry(f.Shape(), f.Spacing())
}

func validateGeometry(shape [3]int, spacing v3.Vec) error {
	for axis, n := range shape {
		if n < 2 {
			return &MalformedFieldError{
				Shape:  shape,
				Reason: fmt.Sprintf("axis %c has %d samples, need at least 2", "xyz"[axis], n),
			}
		}
	}
	for axis, d := range [3]float64{spacing.X, spacing.Y, spacing.Z} {
		if !(d > 0) || math.IsInf(d, 0) {
			return &MalformedFieldError{
				Shape:  shape,
				Reason: fmt.Sprintf("axis %c spacing %g must be positive and finite", "xyz"[axis], d),
			}
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Grid
// ---------------------------------------------------------------------------

// Grid is a dense field backed by a flat slice with x varying fastest.
type Grid struct {
	shape   [3]int
	origin  v3.Vec
	spacing v3.Vec
	values  []float64
}

// Compile-time interface check.
var _ Field = (*Grid)(nil)

// NewGrid builds a grid from values laid out as values[i + nx*(j + ny*k)].
// The slice is copied; later changes by the caller are not observed.
func NewGrid(shape [3]int, origin, spacing v3.Vec, values []float64) (*Grid, error) {
	if err := validateGeometry(shape, spacing); err != nil {
		return nil, err
	}
	n := shape[0] * shape[1] * shape[2]
	if len(values) != n {
		return nil, &MalformedFieldError{
			Shape:  shape,
			Reason: fmt.Sprintf("got %d values, want %d", len(values), n),
		}
	}
	return &Grid{
		shape:   shape,
		origin:  origin,
		spacing: spacing,
		values:  append([]float64(nil), values...),
	}, nil
}

// UnitSpacing is the spacing used when a source carries no metadata.
var UnitSpacing = v3.Vec{X: 1, Y: 1, Z: 1}

// Shape returns the sample counts along x, y and z.
func (g *Grid) Shape() [3]int { return g.shape }

// Origin returns the world position of sample (0,0,0).
func (g *Grid) Origin() v3.Vec { return g.origin }

// Spacing returns the per-axis sample spacing.
func (g *Grid) Spacing() v3.Vec { return g.spacing }

// At returns the sample at (i, j, k). It panics on out-of-range indices like
// a slice access would.
func (g *Grid) At(i, j, k int) float64 {
	return g.values[g.index(i, j, k)]
}

func (g *Grid) index(i, j, k int) int {
	return i + g.shape[0]*(j+g.shape[1]*k)
}

// WithPlacement returns a copy of the grid with a new origin and spacing.
func (g *Grid) WithPlacement(origin, spacing v3.Vec) (*Grid, error) {
	return NewGrid(g.shape, origin, spacing, g.values)
}

// ---------------------------------------------------------------------------
// Closed-form fields
// ---------------------------------------------------------------------------

// Func is a field whose samples are computed on demand from a function of
// world position. It never materializes the grid.
type Func struct {
	shape   [3]int
	origin  v3.Vec
	spacing v3.Vec
	fn      func(p v3.Vec) float64
}

var _ Field = (*Func)(nil)

// NewFunc returns a field sampling fn at origin + index*spacing.
func NewFunc(shape [3]int, origin, spacing v3.Vec, fn func(p v3.Vec) float64) (*Func, error) {
	if err := validateGeometry(shape, spacing); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, &MalformedFieldError{Shape: shape, Reason: "nil sample function"}
	}
	return &Func{shape: shape, origin: origin, spacing: spacing, fn: fn}, nil
}

// FromSDF samples a signed distance function over bounds with the given
// number of samples per axis. Values are negated distances, so the solid
// interior is positive and its surface is the level-0 isosurface.
func FromSDF(s sdf.SDF3, bounds sdf.Box3, shape [3]int) (*Func, error) {
	size := bounds.Max.Sub(bounds.Min)
	var spacing v3.Vec
	if shape[0] > 1 && shape[1] > 1 && shape[2] > 1 {
		spacing = v3.Vec{
			X: size.X / float64(shape[0]-1),
			Y: size.Y / float64(shape[1]-1),
			Z: size.Z / float64(shape[2]-1),
		}
	}
	return NewFunc(shape, bounds.Min, spacing, func(p v3.Vec) float64 {
		return -s.Evaluate(p)
	})
}

// Shape returns the sample counts along x, y and z.
func (f *Func) Shape() [3]int { return f.shape }

// Origin returns the world position of sample (0,0,0).
func (f *Func) Origin() v3.Vec { return f.origin }

// Spacing returns the per-axis sample spacing.
func (f *Func) Spacing() v3.Vec { return f.spacing }

// At evaluates the function at the world position of (i, j, k).
func (f *Func) At(i, j, k int) float64 {
	return f.fn(worldPoint(f.origin, f.spacing, float64(i), float64(j), float64(k)))
}

// ---------------------------------------------------------------------------
// Coordinates
// ---------------------------------------------------------------------------

func worldPoint(origin, spacing v3.Vec, i, j, k float64) v3.Vec {
	return v3.Vec{
		X: origin.X + i*spacing.X,
		Y: origin.Y + j*spacing.Y,
		Z: origin.Z + k*spacing.Z,
	}
}

// WorldPoint maps fractional grid coordinates to world space.
func WorldPoint(f Field, i, j, k float64) v3.Vec {
	return worldPoint(f.Origin(), f.Spacing(), i, j, k)
}

// GridPoint maps a world position to fractional grid coordinates.
func GridPoint(f Field, p v3.Vec) [3]float64 {
	o, s := f.Origin(), f.Spacing()
	return [3]float64{(p.X - o.X) / s.X, (p.Y - o.Y) / s.Y, (p.Z - o.Z) / s.Z}
}

// Bounds returns the world-space box spanned by the grid samples.
func Bounds(f Field) sdf.Box3 {
	n := f.Shape()
	return sdf.Box3{
		Min: f.Origin(),
		Max: WorldPoint(f, float64(n[0]-1), float64(n[1]-1), float64(n[2]-1)),
	}
}

// Range returns the smallest and largest sample in the field.
func Range(f Field) (min, max float64) {
	n := f.Shape()
	min, max = math.Inf(1), math.Inf(-1)
	for k := 0; k < n[2]; k++ {
		for j := 0; j < n[1]; j++ {
			for i := 0; i < n[0]; i++ {
				v := f.At(i, j, k)
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
		}
	}
	return min, max
}
