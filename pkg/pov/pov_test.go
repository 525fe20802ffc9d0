package pov

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/chazu/isopov/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// parsedMesh2 is what parseMesh2 recovers from emitted text.
type parsedMesh2 struct {
	vertexCount, normalCount, faceCount int
	vertices, normals                   [][3]float64
	faces                               [][3]int
}

var vectorPattern = regexp.MustCompile(`<([^<>]*)>`)

// parseBlock returns the declared count and the vectors of one mesh2 list
// block, or ok=false if the block is absent.
func parseBlock(t *testing.T, src, keyword string) (count int, vectors [][]string, ok bool) {
	t.Helper()
	start := strings.Index(src, keyword+" {")
	if start < 0 {
		return 0, nil, false
	}
	body := src[start+len(keyword)+2:]
	body = body[:strings.Index(body, "}")]

	head, rest, found := strings.Cut(body, ",")
	if !found {
		head = body
		rest = ""
	}
	count, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		t.Fatalf("%s count: %v", keyword, err)
	}
	for _, m := range vectorPattern.FindAllStringSubmatch(rest, -1) {
		parts := strings.Split(m[1], ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		vectors = append(vectors, parts)
	}
	return count, vectors, true
}

func parseMesh2(t *testing.T, src string) parsedMesh2 {
	t.Helper()
	if !strings.Contains(src, "mesh2 {") {
		t.Fatalf("no mesh2 object in:\n%s", src)
	}
	var p parsedMesh2
	floats := func(vs [][]string) [][3]float64 {
		out := make([][3]float64, len(vs))
		for i, v := range vs {
			if len(v) != 3 {
				t.Fatalf("vector %d has %d components", i, len(v))
			}
			for j := range v {
				f, err := strconv.ParseFloat(v[j], 64)
				if err != nil {
					t.Fatalf("vector %d: %v", i, err)
				}
				out[i][j] = f
			}
		}
		return out
	}

	n, vs, ok := parseBlock(t, src, "vertex_vectors")
	if !ok {
		t.Fatal("no vertex_vectors block")
	}
	p.vertexCount, p.vertices = n, floats(vs)

	if n, vs, ok := parseBlock(t, src, "normal_vectors"); ok {
		p.normalCount, p.normals = n, floats(vs)
	}

	n, vs, ok = parseBlock(t, src, "face_indices")
	if !ok {
		t.Fatal("no face_indices block")
	}
	p.faceCount = n
	for i, v := range vs {
		var face [3]int
		for j := range face {
			idx, err := strconv.Atoi(v[j])
			if err != nil {
				t.Fatalf("face %d: %v", i, err)
			}
			face[j] = idx
		}
		p.faces = append(p.faces, face)
	}
	return p
}

func pyramid() *kernel.Mesh {
	return &kernel.Mesh{
		Name:  "iso_0",
		Level: 0.5,
		Vertices: []v3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1.25, Y: 0, Z: 0},
			{X: 0, Y: -2.5, Z: 0},
			{X: 0.333333333, Y: 0.1, Z: 7},
		},
		Normals: []v3.Vec{
			{X: -1}, {X: 1}, {Y: -1}, {Z: 1},
		},
		Faces: [][3]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3}},
	}
}

func TestWriteMesh2RoundTrip(t *testing.T) {
	m := pyramid()
	out, err := Mesh2(m, Options{Normals: true})
	if err != nil {
		t.Fatalf("Mesh2: %v", err)
	}
	p := parseMesh2(t, out)

	if p.vertexCount != m.VertexCount() || len(p.vertices) != m.VertexCount() {
		t.Fatalf("vertex count declared %d, parsed %d, want %d", p.vertexCount, len(p.vertices), m.VertexCount())
	}
	if p.faceCount != m.TriangleCount() || len(p.faces) != m.TriangleCount() {
		t.Fatalf("face count declared %d, parsed %d, want %d", p.faceCount, len(p.faces), m.TriangleCount())
	}
	if p.normalCount != len(m.Normals) || len(p.normals) != len(m.Normals) {
		t.Fatalf("normal count declared %d, parsed %d, want %d", p.normalCount, len(p.normals), len(m.Normals))
	}
	for i, v := range m.Vertices {
		got := p.vertices[i]
		want := [3]float64{v.X, v.Y, v.Z}
		for j := range got {
			if math.Abs(got[j]-want[j]) > 0.5e-5 {
				t.Errorf("vertex %d = %v, want %v", i, got, want)
				break
			}
		}
	}
	for i, f := range m.Faces {
		if p.faces[i] != f {
			t.Errorf("face %d = %v, want %v", i, p.faces[i], f)
		}
	}
}

func TestWriteMesh2ExactRoundTrip(t *testing.T) {
	m := pyramid()
	m.Vertices[0] = v3.Vec{X: 1e-20, Y: -1e300, Z: math.Pi}
	m.Vertices[2] = v3.Vec{X: 0.1, Y: 123456789.123, Z: -math.SmallestNonzeroFloat64}

	for _, prec := range []int{-1, -7} {
		out, err := Mesh2(m, Options{Normals: true, Precision: prec})
		if err != nil {
			t.Fatalf("Mesh2: %v", err)
		}
		p := parseMesh2(t, out)
		for i, v := range m.Vertices {
			if want := [3]float64{v.X, v.Y, v.Z}; p.vertices[i] != want {
				t.Errorf("precision %d: vertex %d = %v, want %v", prec, i, p.vertices[i], want)
			}
		}
		for i, n := range m.Normals {
			if want := [3]float64{n.X, n.Y, n.Z}; p.normals[i] != want {
				t.Errorf("precision %d: normal %d = %v, want %v", prec, i, p.normals[i], want)
			}
		}
	}
}

func TestFormatFloatShortest(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1.5, "1.5"},
		{-2, "-2"},
		{0.333333333, "0.333333333"},
		{1e-20, "1e-20"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatFloat(tt.v, -1); got != tt.want {
				t.Errorf("formatFloat(%g, -1) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestWriteMesh2Layout(t *testing.T) {
	m := &kernel.Mesh{
		Vertices: []v3.Vec{{X: 0.5}, {Y: 0.5}, {Z: -0.5}},
		Faces:    [][3]int{{0, 2, 1}},
	}
	scale := v3.Vec{X: 2, Y: 2, Z: 2}
	out, err := Mesh2(m, Options{
		Pigment: &Pigment{R: 1, G: 0.5, B: 0, Transmit: 0.4},
		Scale:   &scale,
	})
	if err != nil {
		t.Fatalf("Mesh2: %v", err)
	}
	want := "mesh2 {\n" +
		"\tvertex_vectors {\n" +
		"\t\t3,\n" +
		"\t\t<0.50000, 0.00000, 0.00000>, <0.00000, 0.50000, 0.00000>,\n" +
		"\t\t<0.00000, 0.00000, -0.50000>\n" +
		"\t}\n" +
		"\tface_indices {\n" +
		"\t\t1,\n" +
		"\t\t<0, 2, 1>\n" +
		"\t}\n" +
		"\tpigment { rgbt <1.0000, 0.5000, 0.0000, 0.4000> }\n" +
		"\tscale <2.00000, 2.00000, 2.00000>\n" +
		"}\n"
	if out != want {
		t.Errorf("Mesh2() =\n%s\nwant\n%s", out, want)
	}
}

func TestWriteMesh2Options(t *testing.T) {
	m := pyramid()
	tests := []struct {
		name     string
		opts     Options
		contains []string
		absent   []string
	}{
		{
			name:     "normals off",
			opts:     Options{},
			contains: []string{"// iso_0: level 0.5\n", "vertex_vectors", "face_indices"},
			absent:   []string{"normal_vectors", "pigment", "scale", "translate"},
		},
		{
			name:     "precision",
			opts:     Options{Precision: 2},
			contains: []string{"<0.33, 0.10, 7.00>"},
		},
		{
			name:     "one per line",
			opts:     Options{PerLine: 1},
			contains: []string{"\t\t<0, 2, 1>,\n\t\t<0, 1, 3>,\n"},
		},
		{
			name:     "translate",
			opts:     Options{Translate: &v3.Vec{X: -1, Y: 0, Z: 3}},
			contains: []string{"\ttranslate <-1.00000, 0.00000, 3.00000>\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Mesh2(m, tt.opts)
			if err != nil {
				t.Fatalf("Mesh2: %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("output contains %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestWriteMesh2NormalsNeedMeshNormals(t *testing.T) {
	m := pyramid()
	m.Normals = nil
	out, err := Mesh2(m, Options{Normals: true})
	if err != nil {
		t.Fatalf("Mesh2: %v", err)
	}
	if strings.Contains(out, "normal_vectors") {
		t.Error("normal_vectors written for a mesh without normals")
	}
}

func TestWriteMesh2SkipsDegenerateNormals(t *testing.T) {
	tests := []struct {
		name   string
		normal v3.Vec
	}{
		{"zero", v3.Vec{}},
		{"nan", v3.Vec{X: math.NaN()}},
		{"inf", v3.Vec{Z: math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pyramid()
			m.Normals[2] = tt.normal
			out, err := Mesh2(m, Options{Normals: true})
			if err != nil {
				t.Fatalf("Mesh2: %v", err)
			}
			if strings.Contains(out, "normal_vectors") {
				t.Error("normal_vectors written with a degenerate normal")
			}
			if !strings.Contains(out, "face_indices") {
				t.Error("mesh written without faces")
			}
		})
	}
}

func TestWriteMesh2Empty(t *testing.T) {
	m := &kernel.Mesh{Name: "iso_3", Level: 9.5}
	var sb strings.Builder
	err := WriteMesh2(&sb, m, Options{})
	var em *EmptyMeshError
	if !errors.As(err, &em) {
		t.Fatalf("WriteMesh2() error = %v, want EmptyMeshError", err)
	}
	if em.Name != "iso_3" || em.Level != 9.5 {
		t.Errorf("EmptyMeshError = %+v", em)
	}
	if !strings.Contains(err.Error(), "9.5") {
		t.Errorf("message %q does not name the level", err.Error())
	}
	if sb.Len() != 0 {
		t.Errorf("wrote %d bytes for an empty mesh", sb.Len())
	}
}

func TestWriteMesh2BadIndex(t *testing.T) {
	m := &kernel.Mesh{
		Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
		Faces:    [][3]int{{0, 1, 3}},
	}
	if _, err := Mesh2(m, Options{}); err == nil {
		t.Fatal("face referencing a missing vertex was accepted")
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteMesh2WriterError(t *testing.T) {
	if err := WriteMesh2(failWriter{}, pyramid(), Options{}); err == nil {
		t.Fatal("writer error was swallowed")
	}
}

func TestFormatFloatNegativeZero(t *testing.T) {
	if got := formatFloat(math.Copysign(0, -1), 3); got != "0.000" {
		t.Errorf("formatFloat(-0) = %q", got)
	}
}

func TestUnion(t *testing.T) {
	a := "mesh2 {\n}\n"
	if got := Union(a); got != a {
		t.Errorf("Union(single) = %q, want unchanged", got)
	}
	got := Union(a, a)
	want := "union {\n\tmesh2 {\n\t}\n\tmesh2 {\n\t}\n}\n"
	if got != want {
		t.Errorf("Union() = %q, want %q", got, want)
	}
}

func TestSlice(t *testing.T) {
	b := Box{Min: v3.Vec{X: 0, Y: 0, Z: 0}, Max: v3.Vec{X: 1, Y: 2, Z: 3}}
	got := Slice("mesh2 {\n}\n", b)
	want := "intersection {\n\tmesh2 {\n\t}\n\tbox { <0.00000, 0.00000, 0.00000>, <1.00000, 2.00000, 3.00000> }\n}\n"
	if got != want {
		t.Errorf("Slice() = %q, want %q", got, want)
	}

	b.Inverse = true
	if got := Slice("mesh2 {\n}\n", b); !strings.Contains(got, "> inverse }") {
		t.Errorf("inverse slice missing keyword: %q", got)
	}
}

func TestFractionBox(t *testing.T) {
	bounds := sdf.Box3{Min: v3.Vec{X: -1, Y: 0, Z: 10}, Max: v3.Vec{X: 1, Y: 4, Z: 20}}

	b, err := FractionBox(bounds, [3]float64{0.5, 0.75, 0.2}, [3]float64{1, 0.25, 0.4}, true)
	if err != nil {
		t.Fatalf("FractionBox: %v", err)
	}
	wantMin := v3.Vec{X: 0, Y: 1, Z: 12}
	wantMax := v3.Vec{X: 1 + 2*overshoot, Y: 3, Z: 14}
	for _, c := range []struct {
		name      string
		got, want v3.Vec
	}{{"min", b.Min, wantMin}, {"max", b.Max, wantMax}} {
		if c.got.Sub(c.want).Length() > 1e-12 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if !b.Inverse {
		t.Error("Inverse not carried through")
	}

	if _, err := FractionBox(bounds, [3]float64{-0.1, 0, 0}, [3]float64{1, 1, 1}, false); err == nil {
		t.Error("negative fraction accepted")
	}
	if _, err := FractionBox(bounds, [3]float64{0, 0, 0}, [3]float64{1, 1.5, 1}, false); err == nil {
		t.Error("fraction above 1 accepted")
	}
}

func TestDeclaredCountsMatchLists(t *testing.T) {
	m := pyramid()
	out, err := Mesh2(m, Options{Normals: true, PerLine: 3})
	if err != nil {
		t.Fatal(err)
	}
	p := parseMesh2(t, out)
	if p.vertexCount != len(p.vertices) || p.faceCount != len(p.faces) || p.normalCount != len(p.normals) {
		t.Errorf("declared counts (%d, %d, %d) do not match parsed (%d, %d, %d)",
			p.vertexCount, p.faceCount, p.normalCount, len(p.vertices), len(p.faces), len(p.normals))
	}
}
