// Package march implements kernel.Extractor with table-driven marching cubes.
//
// Every voxel cell is classified by which of its 8 corners lie below the
// level, and the 256-entry triTable gives the triangles for that pattern.
// Vertices live on grid edges and are shared by all cells touching the edge,
// so the mesh has no cracks between cells. Output is deterministic: vertex
// and face order depend only on the field and the level, never on the number
// of workers.
package march

import (
	"fmt"
	"math"

	"github.com/chazu/isopov/pkg/field"
	"github.com/chazu/isopov/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface check.
var _ kernel.Extractor = (*Extractor)(nil)

// InvalidLevelError reports a level that cannot be compared against samples.
type InvalidLevelError struct {
	Level float64
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("march: invalid isosurface level %g", e.Level)
}

// Extractor is the marching cubes backend.
type Extractor struct {
	workers int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWorkers polygonizes up to n z-slabs concurrently. Values below 2 keep
// the pass serial.
func WithWorkers(n int) Option {
	return func(e *Extractor) {
		e.workers = n
	}
}

// New returns a marching cubes extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the isosurface of f at level. Cells with all corners on
// one side of the level contribute nothing; a level outside the field's
// range yields an empty mesh.
func (e *Extractor) Extract(f field.Field, level float64) (*kernel.Mesh, error) {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return nil, &InvalidLevelError{Level: level}
	}
	if err := field.Validate(f); err != nil {
		return nil, fmt.Errorf("march: %w", err)
	}

	slabs := f.Shape()[2] - 1
	parts := make([][]cellTriangle, slabs)

	if e.workers < 2 || slabs < 2 {
		for k := 0; k < slabs; k++ {
			parts[k] = polygonizeSlab(f, k, level)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(e.workers)
		for k := 0; k < slabs; k++ {
			k := k
			g.Go(func() error {
				parts[k] = polygonizeSlab(f, k, level)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("march: %w", err)
		}
	}

	m := assemble(f, parts)
	m.Level = level
	return m, nil
}

// ---------------------------------------------------------------------------
// Cells
// ---------------------------------------------------------------------------

// edgeKey identifies a grid edge by its lower endpoint and axis.
type edgeKey int64

// crossing is the point where the level crosses one grid edge.
type crossing struct {
	key  edgeKey
	pos  v3.Vec
	a, b [3]int  // grid indices of the edge endpoints, lower first
	t    float64 // fraction from a to b
}

type cellTriangle [3]crossing

// cell holds the corner samples of one voxel cell.
type cell struct {
	lo  [3]int
	val [8]float64
}

func (c *cell) corner(n int) [3]int {
	o := cornerOffset[n]
	return [3]int{c.lo[0] + o[0], c.lo[1] + o[1], c.lo[2] + o[2]}
}

// caseIndex sets bit n when corner n is below the level. A corner equal to
// the level counts as inside.
func (c *cell) caseIndex(level float64) uint8 {
	var idx uint8
	for n, v := range c.val {
		if v < level {
			idx |= 1 << uint(n)
		}
	}
	return idx
}

// crossing computes the vertex on edge e. The result depends only on the
// edge's two samples, its endpoints and the level.
func (c *cell) crossing(f field.Field, e int, level float64) crossing {
	ca, cb := edgeCorners[e][0], edgeCorners[e][1]
	a, b := c.corner(ca), c.corner(cb)
	t := edgeFraction(c.val[ca], c.val[cb], level)
	pa := field.WorldPoint(f, float64(a[0]), float64(a[1]), float64(a[2]))
	pb := field.WorldPoint(f, float64(b[0]), float64(b[1]), float64(b[2]))
	n := f.Shape()
	return crossing{
		key: edgeKey((a[0]+n[0]*(a[1]+n[1]*a[2]))*3 + edgeAxis[e]),
		pos: pa.Add(pb.Sub(pa).MulScalar(t)),
		a:   a,
		b:   b,
		t:   t,
	}
}

// edgeFraction returns where level falls between v0 and v1, clamped to
// [0,1]. Equal samples snap to the v0 end.
func edgeFraction(v0, v1, level float64) float64 {
	if v0 == v1 {
		return 0
	}
	t := (level - v0) / (v1 - v0)
	return math.Max(0, math.Min(1, t))
}

// polygonizeSlab emits the triangles of every cell between z planes k and
// k+1, scanning y then x.
func polygonizeSlab(f field.Field, k int, level float64) []cellTriangle {
	n := f.Shape()
	lower := plane(f, k)
	upper := plane(f, k+1)

	var out []cellTriangle
	for j := 0; j < n[1]-1; j++ {
		for i := 0; i < n[0]-1; i++ {
			c := cell{lo: [3]int{i, j, k}}
			for corner, o := range cornerOffset {
				p := lower
				if o[2] == 1 {
					p = upper
				}
				c.val[corner] = p[(i+o[0])+n[0]*(j+o[1])]
			}
			for _, tri := range triTable[c.caseIndex(level)] {
				out = append(out, cellTriangle{
					c.crossing(f, int(tri[0]), level),
					c.crossing(f, int(tri[1]), level),
					c.crossing(f, int(tri[2]), level),
				})
			}
		}
	}
	return out
}

// plane reads the samples of z plane k, x varying fastest.
func plane(f field.Field, k int) []float64 {
	n := f.Shape()
	p := make([]float64, n[0]*n[1])
	for j := 0; j < n[1]; j++ {
		for i := 0; i < n[0]; i++ {
			p[i+n[0]*j] = f.At(i, j, k)
		}
	}
	return p
}
