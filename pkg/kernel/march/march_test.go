package march

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/chazu/isopov/pkg/field"
	"github.com/chazu/isopov/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func gridOf(t *testing.T, n [3]int, fn func(i, j, k int) float64) *field.Grid {
	t.Helper()
	values := make([]float64, n[0]*n[1]*n[2])
	for k := 0; k < n[2]; k++ {
		for j := 0; j < n[1]; j++ {
			for i := 0; i < n[0]; i++ {
				values[i+n[0]*(j+n[1]*k)] = fn(i, j, k)
			}
		}
	}
	g, err := field.NewGrid(n, v3.Vec{}, field.UnitSpacing, values)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func randomGrid(t *testing.T, n [3]int, seed int64) *field.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	return gridOf(t, n, func(i, j, k int) float64 { return rng.Float64() })
}

func sphereField(t *testing.T, n int, radius float64) *field.Func {
	t.Helper()
	step := 2 / float64(n-1)
	f, err := field.NewFunc([3]int{n, n, n},
		v3.Vec{X: -1, Y: -1, Z: -1},
		v3.Vec{X: step, Y: step, Z: step},
		func(p v3.Vec) float64 { return radius - p.Length() })
	if err != nil {
		t.Fatalf("NewFunc: %v", err)
	}
	return f
}

func extract(t *testing.T, e *Extractor, f field.Field, level float64) *kernel.Mesh {
	t.Helper()
	m, err := e.Extract(f, level)
	if err != nil {
		t.Fatalf("Extract(%g) error = %v", level, err)
	}
	return m
}

func TestTablesConsistent(t *testing.T) {
	for c := 0; c < 256; c++ {
		var want uint16
		for e, ends := range edgeCorners {
			a := c>>uint(ends[0])&1 == 1
			b := c>>uint(ends[1])&1 == 1
			if a != b {
				want |= 1 << uint(e)
			}
		}
		if edgeMask[c] != want {
			t.Errorf("edgeMask[%d] = %#x, want %#x", c, edgeMask[c], want)
		}

		var used uint16
		for _, tri := range triTable[c] {
			for _, e := range tri {
				used |= 1 << uint(e)
			}
		}
		if used != want {
			t.Errorf("triTable[%d] uses edges %#x, want %#x", c, used, want)
		}
		if len(triTable[c]) > 5 {
			t.Errorf("triTable[%d] has %d triangles", c, len(triTable[c]))
		}
	}
	for e, ends := range edgeCorners {
		a, b := cornerOffset[ends[0]], cornerOffset[ends[1]]
		for axis := 0; axis < 3; axis++ {
			d := b[axis] - a[axis]
			if axis == edgeAxis[e] && d != 1 || axis != edgeAxis[e] && d != 0 {
				t.Errorf("edge %d runs %v -> %v, want +1 along axis %d", e, a, b, edgeAxis[e])
			}
		}
	}
}

func TestEdgeFraction(t *testing.T) {
	tests := []struct {
		name          string
		v0, v1, level float64
		want          float64
	}{
		{"midpoint", 0, 1, 0.5, 0.5},
		{"descending", 1, 0, 0.25, 0.75},
		{"at v0", 0.5, 1, 0.5, 0},
		{"at v1", 0, 0.5, 0.5, 1},
		{"equal samples", 2, 2, 2, 0},
		{"clamped below", 0, 1, -1, 0},
		{"clamped above", 0, 1, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := edgeFraction(tt.v0, tt.v1, tt.level); got != tt.want {
				t.Errorf("edgeFraction(%g, %g, %g) = %g, want %g", tt.v0, tt.v1, tt.level, got, tt.want)
			}
		})
	}
}

func TestExtractInvalidLevel(t *testing.T) {
	g := randomGrid(t, [3]int{3, 3, 3}, 1)
	for _, level := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := New().Extract(g, level)
		var il *InvalidLevelError
		if !errors.As(err, &il) {
			t.Errorf("Extract(%g) error = %v, want InvalidLevelError", level, err)
		}
	}
}

type thinField struct{}

func (thinField) Shape() [3]int { return [3]int{1, 4, 4} }
func (thinField) Origin() v3.Vec { return v3.Vec{} }
func (thinField) Spacing() v3.Vec { return field.UnitSpacing }
func (thinField) At(i, j, k int) float64 { return 0 }

func TestExtractMalformedField(t *testing.T) {
	_, err := New().Extract(thinField{}, 0)
	var mf *field.MalformedFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("Extract() error = %v, want MalformedFieldError", err)
	}
}

func TestExtractLevelOutsideRange(t *testing.T) {
	g := randomGrid(t, [3]int{5, 5, 5}, 2)
	lo, hi := field.Range(g)
	for _, level := range []float64{lo - 1, hi + 1} {
		m := extract(t, New(), g, level)
		if !m.IsEmpty() || m.VertexCount() != 0 {
			t.Errorf("level %g: got %d vertices, %d faces, want empty", level, m.VertexCount(), m.TriangleCount())
		}
		if m.Level != level {
			t.Errorf("Level = %g, want %g", m.Level, level)
		}
	}
}

func TestExtractConstantFieldAtLevel(t *testing.T) {
	g := gridOf(t, [3]int{3, 3, 3}, func(i, j, k int) float64 { return 0.5 })
	if m := extract(t, New(), g, 0.5); !m.IsEmpty() {
		t.Errorf("constant field at level produced %d faces", m.TriangleCount())
	}
}

func TestExtractSingleCorner(t *testing.T) {
	g := gridOf(t, [3]int{2, 2, 2}, func(i, j, k int) float64 {
		if i == 0 && j == 0 && k == 0 {
			return 0
		}
		return 1
	})
	m := extract(t, New(), g, 0.5)
	if m.TriangleCount() != 1 || m.VertexCount() != 3 {
		t.Fatalf("got %d faces, %d vertices, want 1 and 3", m.TriangleCount(), m.VertexCount())
	}

	want := map[v3.Vec]bool{
		{X: 0.5}: true,
		{Y: 0.5}: true,
		{Z: 0.5}: true,
	}
	for _, v := range m.Vertices {
		if !want[v] {
			t.Errorf("unexpected vertex %v", v)
		}
	}

	// The low corner is below the level, so the surface faces it.
	fn := m.FaceNormal(0)
	if fn.X >= 0 || fn.Y >= 0 || fn.Z >= 0 {
		t.Errorf("face normal %v does not point toward the low corner", fn)
	}
	for i, n := range m.Normals {
		if n.Dot(fn) <= 0 {
			t.Errorf("vertex normal %d = %v disagrees with face normal %v", i, n, fn)
		}
	}
}

func TestExtractTieSnapsToCorner(t *testing.T) {
	g := gridOf(t, [3]int{2, 2, 2}, func(i, j, k int) float64 {
		if i == 0 && j == 0 && k == 0 {
			return 0
		}
		return 0.5
	})
	m := extract(t, New(), g, 0.5)
	if m.TriangleCount() != 1 {
		t.Fatalf("got %d faces, want 1", m.TriangleCount())
	}
	want := map[v3.Vec]bool{
		{X: 1}: true,
		{Y: 1}: true,
		{Z: 1}: true,
	}
	for _, v := range m.Vertices {
		if !want[v] {
			t.Errorf("vertex %v, want one of the neighbouring corners", v)
		}
	}
}

func TestExtractHalfSplit(t *testing.T) {
	g := gridOf(t, [3]int{2, 2, 2}, func(i, j, k int) float64 { return float64(i) })
	m := extract(t, New(), g, 0.5)
	if m.TriangleCount() != 2 || m.VertexCount() != 4 {
		t.Fatalf("got %d faces, %d vertices, want 2 and 4", m.TriangleCount(), m.VertexCount())
	}
	for _, v := range m.Vertices {
		if v.X != 0.5 {
			t.Errorf("vertex %v not on the x=0.5 plane", v)
		}
	}
	for i := range m.Faces {
		fn := m.FaceNormal(i)
		if fn.X >= 0 || fn.Y != 0 || fn.Z != 0 {
			t.Errorf("face %d normal %v, want -x", i, fn)
		}
	}
	for i, n := range m.Normals {
		if n != (v3.Vec{X: -1}) {
			t.Errorf("vertex normal %d = %v, want -x", i, n)
		}
	}
}

func TestExtractSphereIsClosed(t *testing.T) {
	const radius = 0.6
	f := sphereField(t, 20, radius)
	m := extract(t, New(), f, 0)
	if m.IsEmpty() {
		t.Fatal("sphere produced an empty mesh")
	}

	// Every directed edge of a closed, consistently wound surface appears
	// exactly once, and so does its reverse.
	edges := make(map[[2]int]int)
	for _, face := range m.Faces {
		for n := 0; n < 3; n++ {
			edges[[2]int{face[n], face[(n+1)%3]}]++
		}
	}
	for e, count := range edges {
		if count != 1 {
			t.Errorf("directed edge %v used %d times", e, count)
		}
		if edges[[2]int{e[1], e[0]}] != 1 {
			t.Errorf("edge %v has no reverse", e)
		}
	}

	// Divergence theorem: outward winding gives the enclosed volume.
	var volume float64
	for i := range m.Faces {
		tri := m.Triangle(i)
		volume += tri[0].Dot(tri[1].Cross(tri[2])) / 6
	}
	want := 4.0 / 3.0 * math.Pi * radius * radius * radius
	if math.Abs(volume-want)/want > 0.1 {
		t.Errorf("enclosed volume = %g, want about %g", volume, want)
	}

	step := 2.0 / 19
	for i, v := range m.Vertices {
		if d := math.Abs(v.Length() - radius); d > step {
			t.Errorf("vertex %d at distance %g from the surface", i, d)
		}
		if m.Normals[i].Dot(v) <= 0 {
			t.Errorf("vertex normal %d = %v points inward", i, m.Normals[i])
		}
	}
}

func TestExtractSharesVertices(t *testing.T) {
	m := extract(t, New(), sphereField(t, 12, 0.5), 0)
	seen := make(map[v3.Vec]bool)
	for _, v := range m.Vertices {
		if seen[v] {
			t.Fatalf("vertex %v emitted twice", v)
		}
		seen[v] = true
	}
}

func TestExtractDeterministicAcrossWorkers(t *testing.T) {
	g := randomGrid(t, [3]int{9, 8, 7}, 3)
	serial := extract(t, New(), g, 0.5)
	if serial.IsEmpty() {
		t.Fatal("random field produced an empty mesh")
	}
	for _, workers := range []int{1, 2, 4, 16} {
		again := extract(t, New(WithWorkers(workers)), g, 0.5)
		if !reflect.DeepEqual(serial, again) {
			t.Errorf("WithWorkers(%d) output differs from the serial pass", workers)
		}
	}
}

func TestAdjacentCellsAgree(t *testing.T) {
	g := randomGrid(t, [3]int{3, 3, 3}, 4)
	load := func(i, j, k int) cell {
		c := cell{lo: [3]int{i, j, k}}
		for n, o := range cornerOffset {
			c.val[n] = g.At(i+o[0], j+o[1], k+o[2])
		}
		return c
	}

	tests := []struct {
		name   string
		b      [3]int
		shared [][2]int // edge in the lower cell, edge in the upper cell
	}{
		{"x neighbour", [3]int{1, 0, 0}, [][2]int{{1, 3}, {5, 7}, {9, 8}, {10, 11}}},
		{"y neighbour", [3]int{0, 1, 0}, [][2]int{{2, 0}, {6, 4}, {11, 8}, {10, 9}}},
		{"z neighbour", [3]int{0, 0, 1}, [][2]int{{4, 0}, {5, 1}, {6, 2}, {7, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := load(0, 0, 0)
			b := load(tt.b[0], tt.b[1], tt.b[2])
			for _, pair := range tt.shared {
				ca := a.crossing(g, pair[0], 0.5)
				cb := b.crossing(g, pair[1], 0.5)
				if !reflect.DeepEqual(ca, cb) {
					t.Errorf("edge %d of cell a = %+v, edge %d of cell b = %+v", pair[0], ca, pair[1], cb)
				}
			}
		})
	}
}

func TestFillFlatNormals(t *testing.T) {
	up := v3.Vec{Z: 1}
	tests := []struct {
		name  string
		faces [][3]int
		want  []v3.Vec
	}{
		{"summed", [][3]int{{0, 1, 2}, {1, 3, 2}}, []v3.Vec{up, up, up, up}},
		// A folded pair of faces cancels; the first face decides.
		{"cancelling", [][3]int{{0, 1, 2}, {0, 2, 1}}, []v3.Vec{up, up, up, {}}},
		// Vertex 3 only touches a zero-area face and keeps a zero normal.
		{"sliver", [][3]int{{0, 1, 2}, {3, 3, 1}}, []v3.Vec{up, up, up, {}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &kernel.Mesh{
				Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}},
				Normals:  make([]v3.Vec, 4),
				Faces:    tt.faces,
			}
			fillFlatNormals(m)
			if !reflect.DeepEqual(m.Normals, tt.want) {
				t.Errorf("normals = %v, want %v", m.Normals, tt.want)
			}
		})
	}
}
