// Package sdfx implements kernel.Extractor on top of the
// github.com/deadsy/sdfx marching cubes renderer.
//
// The field is presented to sdfx as a signed distance function whose zero
// set is the requested level, sampled with trilinear interpolation. sdfx
// picks its own sampling grid, so this backend is useful for resampling a
// field at a different resolution; the march package is the exact one.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/isopov/pkg/field"
	"github.com/chazu/isopov/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface checks.
var (
	_ kernel.Extractor = (*Extractor)(nil)
	_ sdf.SDF3         = (*levelSDF)(nil)
)

// levelSDF wraps a field so that samples at or above level are negative
// (inside, in sdfx terms).
type levelSDF struct {
	f      field.Field
	level  float64
	bounds sdf.Box3
}

// Evaluate returns level minus the interpolated field value at p. Points
// outside the field are clamped onto its boundary.
func (s *levelSDF) Evaluate(p v3.Vec) float64 {
	c := field.GridPoint(s.f, p)
	return s.level - field.SampleClamped(s.f, c[0], c[1], c[2])
}

// BoundingBox returns the world-space extent of the field.
func (s *levelSDF) BoundingBox() sdf.Box3 {
	return s.bounds
}

// Extractor renders fields through sdfx.
type Extractor struct {
	cells int
}

// New returns an sdfx extractor. cells is the number of marching cubes
// cells along the longest axis of the field; zero or less matches the
// field's own resolution.
func New(cells int) *Extractor {
	return &Extractor{cells: cells}
}

// Extract returns the isosurface of f at level as an indexed mesh.
func (e *Extractor) Extract(f field.Field, level float64) (*kernel.Mesh, error) {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return nil, fmt.Errorf("sdfx: invalid isosurface level %g", level)
	}
	if err := field.Validate(f); err != nil {
		return nil, fmt.Errorf("sdfx: %w", err)
	}

	cells := e.cells
	if cells <= 0 {
		n := f.Shape()
		cells = max(n[0], n[1], n[2]) - 1
	}

	s := &levelSDF{f: f, level: level, bounds: field.Bounds(f)}
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	b := newMeshBuilder()
	for _, tri := range triangles {
		b.add(tri[0], tri[1], tri[2])
	}
	m := b.mesh()
	m.Level = level
	return m, nil
}

// meshBuilder merges the triangle soup produced by sdfx into an indexed
// mesh. Coincident vertices are shared and their normals are the normalized
// sum of the incident face normals.
type meshBuilder struct {
	m     *kernel.Mesh
	index map[v3.Vec]int
}

func newMeshBuilder() *meshBuilder {
	return &meshBuilder{m: &kernel.Mesh{}, index: make(map[v3.Vec]int)}
}

func (b *meshBuilder) vertex(v v3.Vec) int {
	idx, ok := b.index[v]
	if !ok {
		idx = len(b.m.Vertices)
		b.index[v] = idx
		b.m.Vertices = append(b.m.Vertices, v)
		b.m.Normals = append(b.m.Normals, v3.Vec{})
	}
	return idx
}

// add appends one triangle. Slivers that collapse onto a point or a line
// are dropped.
func (b *meshBuilder) add(p0, p1, p2 v3.Vec) {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Length() == 0 {
		return
	}
	face := [3]int{b.vertex(p0), b.vertex(p1), b.vertex(p2)}
	for _, idx := range face {
		b.m.Normals[idx] = b.m.Normals[idx].Add(n)
	}
	b.m.Faces = append(b.m.Faces, face)
}

func (b *meshBuilder) mesh() *kernel.Mesh {
	for i, n := range b.m.Normals {
		if n.Length() > 0 {
			b.m.Normals[i] = n.Normalize()
		}
	}
	return b.m
}
