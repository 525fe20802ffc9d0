// Package kernel defines the isosurface extraction interface and the mesh
// type extractors produce. Implementations (march, sdfx) turn a scalar field
// and a level into a triangle mesh behind this interface, so callers can swap
// backends without changing the rest of the pipeline.
package kernel

import "github.com/chazu/isopov/pkg/field"

// Extractor computes the isosurface {p : value(p) = level} of a field.
// Samples with value >= level are treated as the solid interior; triangles
// are wound so their normals point away from it. An extractor returns an
// empty mesh, not an error, when the level is never crossed.
type Extractor interface {
	Extract(f field.Field, level float64) (*Mesh, error)
}
