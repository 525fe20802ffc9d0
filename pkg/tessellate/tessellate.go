// Package tessellate extracts one isosurface per requested level and gives
// each a name and a colour. The extractor does the geometry; this package
// decides which levels to run and how they look.
package tessellate

import (
	"fmt"
	"math"
	"sort"

	"github.com/chazu/isopov/pkg/field"
	"github.com/chazu/isopov/pkg/kernel"
	"github.com/chazu/isopov/pkg/pov"
)

// clampMargin is how far inside the field range, as a fraction of the range,
// an out-of-range level is pulled when clamping is enabled.
const clampMargin = 1e-4

// Options controls level planning and colouring.
type Options struct {
	// Clamp pulls levels at or beyond the field's extremes just inside them
	// so they still produce a surface.
	Clamp bool

	// Colormap names the colormap; empty means DefaultColormap.
	Colormap string

	// ColorLimits fixes the values mapped to the ends of the colormap.
	// Nil uses the lowest and highest planned level.
	ColorLimits *[2]float64

	// Transmit is the rgbt transmit component applied to every surface.
	Transmit float64
}

// Surface is one extracted level and the pigment it is drawn with.
type Surface struct {
	Mesh    *kernel.Mesh
	Pigment pov.Pigment
}

// Plan sorts and dedupes levels. With clamp set, levels at or outside
// [lo, hi] move just inside the range.
func Plan(levels []float64, lo, hi float64, clamp bool) ([]float64, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("tessellate: no levels requested")
	}
	planned := make([]float64, 0, len(levels))
	for _, l := range levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("tessellate: invalid level %g", l)
		}
		if clamp && hi > lo {
			margin := clampMargin * (hi - lo)
			l = math.Max(lo+margin, math.Min(hi-margin, l))
		}
		planned = append(planned, l)
	}
	sort.Float64s(planned)

	out := planned[:1]
	for _, l := range planned[1:] {
		if l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return out, nil
}

// Tessellate plans levels against the range of f and extracts each with x.
// Meshes are named iso_0, iso_1, ... in ascending level order. A level that
// yields no triangles still produces a Surface with an empty mesh; deciding
// whether that is fatal is left to the caller.
func Tessellate(f field.Field, x kernel.Extractor, levels []float64, opts Options) ([]Surface, error) {
	cmap, err := LookupColormap(opts.Colormap)
	if err != nil {
		return nil, err
	}
	lo, hi := field.Range(f)
	planned, err := Plan(levels, lo, hi, opts.Clamp)
	if err != nil {
		return nil, err
	}

	cLo, cHi := planned[0], planned[len(planned)-1]
	if opts.ColorLimits != nil {
		cLo, cHi = opts.ColorLimits[0], opts.ColorLimits[1]
	}

	surfaces := make([]Surface, 0, len(planned))
	for i, level := range planned {
		mesh, err := x.Extract(f, level)
		if err != nil {
			return nil, fmt.Errorf("tessellate: level %g: %w", level, err)
		}
		mesh.Name = fmt.Sprintf("iso_%d", i)

		c := cmap.At(position(level, cLo, cHi))
		surfaces = append(surfaces, Surface{
			Mesh:    mesh,
			Pigment: pov.Pigment{R: c.R, G: c.G, B: c.B, Transmit: opts.Transmit},
		})
	}
	return surfaces, nil
}
