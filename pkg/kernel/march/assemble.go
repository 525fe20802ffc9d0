package march

import (
	"github.com/chazu/isopov/pkg/field"
	"github.com/chazu/isopov/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// assemble merges per-slab triangles into one indexed mesh. Each grid edge
// becomes exactly one vertex, numbered in the order it is first referenced.
func assemble(f field.Field, parts [][]cellTriangle) *kernel.Mesh {
	m := &kernel.Mesh{}
	index := make(map[edgeKey]int)

	for _, part := range parts {
		for _, tri := range part {
			var face [3]int
			for n, c := range tri {
				idx, ok := index[c.key]
				if !ok {
					idx = len(m.Vertices)
					index[c.key] = idx
					m.Vertices = append(m.Vertices, c.pos)
					m.Normals = append(m.Normals, edgeNormal(f, c))
				}
				face[n] = idx
			}
			m.Faces = append(m.Faces, face)
		}
	}

	fillFlatNormals(m)
	return m
}

// edgeNormal interpolates the negated field gradient between the edge
// endpoints, so normals point toward decreasing values (outward).
func edgeNormal(f field.Field, c crossing) v3.Vec {
	ga := gradient(f, c.a)
	gb := gradient(f, c.b)
	g := ga.Add(gb.Sub(ga).MulScalar(c.t))
	if g.Length() == 0 {
		return v3.Vec{}
	}
	return g.Normalize().MulScalar(-1)
}

// gradient estimates the field gradient at a grid point with central
// differences, one-sided on the boundary.
func gradient(f field.Field, p [3]int) v3.Vec {
	n := f.Shape()
	sp := f.Spacing()
	step := [3]float64{sp.X, sp.Y, sp.Z}

	var d [3]float64
	for axis := 0; axis < 3; axis++ {
		lo, hi := p, p
		if p[axis] > 0 {
			lo[axis]--
		}
		if p[axis] < n[axis]-1 {
			hi[axis]++
		}
		span := float64(hi[axis]-lo[axis]) * step[axis]
		d[axis] = (f.At(hi[0], hi[1], hi[2]) - f.At(lo[0], lo[1], lo[2])) / span
	}
	return v3.Vec{X: d[0], Y: d[1], Z: d[2]}
}

// fillFlatNormals replaces zero normals, which occur on flat plateaus of the
// field, with the normalized sum of the adjacent face normals. When the sum
// cancels, the first adjacent face with nonzero area is used instead. A
// vertex touching only zero-area faces keeps a zero normal.
func fillFlatNormals(m *kernel.Mesh) {
	var missing []bool
	for i, n := range m.Normals {
		if n == (v3.Vec{}) {
			if missing == nil {
				missing = make([]bool, len(m.Normals))
			}
			missing[i] = true
		}
	}
	if missing == nil {
		return
	}

	sums := make(map[int]v3.Vec)
	first := make(map[int]v3.Vec)
	for i, face := range m.Faces {
		fn := m.FaceNormal(i)
		for _, v := range face {
			if !missing[v] {
				continue
			}
			sums[v] = sums[v].Add(fn)
			if _, ok := first[v]; !ok && fn.Length() > 0 {
				first[v] = fn
			}
		}
	}
	for v, s := range sums {
		switch {
		case s.Length() > 0:
			m.Normals[v] = s.Normalize()
		case first[v].Length() > 0:
			m.Normals[v] = first[v].Normalize()
		}
	}
}
