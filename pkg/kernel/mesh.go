package kernel

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Mesh is an indexed triangle mesh in world coordinates.
// Faces hold zero-based indices into Vertices. Normals is either empty or
// holds one unit normal per vertex.
type Mesh struct {
	Vertices []v3.Vec `json:"vertices"`
	Normals  []v3.Vec `json:"normals,omitempty"`
	Faces    [][3]int `json:"faces"`
	Name     string   `json:"name,omitempty"` // label used in emitted output
	Level    float64  `json:"level"`          // isovalue the mesh was extracted at
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Faces) == 0
}

// HasNormals reports whether every vertex carries a normal.
func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0 && len(m.Normals) == len(m.Vertices)
}

// Triangle returns the vertex positions of face i.
func (m *Mesh) Triangle(i int) [3]v3.Vec {
	f := m.Faces[i]
	return [3]v3.Vec{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// FaceNormal returns the unnormalized normal (b-a)x(c-a) of face i.
func (m *Mesh) FaceNormal(i int) v3.Vec {
	t := m.Triangle(i)
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

// BoundingBox returns the axis-aligned bounds of all vertices.
// An empty mesh returns zero bounds.
func (m *Mesh) BoundingBox() (min, max [3]float64) {
	if len(m.Vertices) == 0 {
		return min, max
	}
	for a := 0; a < 3; a++ {
		min[a], max[a] = math.Inf(1), math.Inf(-1)
	}
	for _, v := range m.Vertices {
		c := [3]float64{v.X, v.Y, v.Z}
		for a := 0; a < 3; a++ {
			min[a] = math.Min(min[a], c[a])
			max[a] = math.Max(max[a], c[a])
		}
	}
	return min, max
}
