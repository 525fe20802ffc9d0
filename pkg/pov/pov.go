// Package pov writes extracted meshes as POV-Ray scene language.
//
// The output is a fragment, not a scene: a mesh2 object (or a union or
// intersection wrapping several) that a scene file pulls in with #include.
// Camera, lights and the rest of the scene are the caller's business.
package pov

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chazu/isopov/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

const (
	defaultPrecision = 5
	defaultPerLine   = 2
)

// EmptyMeshError is returned when a mesh with no triangles is emitted.
// POV-Ray rejects a mesh2 without faces, so this usually means the level
// lies outside the range of the field.
type EmptyMeshError struct {
	Name  string
	Level float64
}

func (e *EmptyMeshError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("pov: isosurface at level %g has no triangles", e.Level)
	}
	return fmt.Sprintf("pov: isosurface %s at level %g has no triangles", e.Name, e.Level)
}

// Pigment is a colour with a transmit component, written as rgbt.
type Pigment struct {
	R, G, B  float64
	Transmit float64
}

// Options controls how a mesh is written.
type Options struct {
	// Normals writes normal_vectors when the mesh carries them.
	Normals bool

	// Pigment, Scale and Translate are emitted inside the object when set.
	Pigment   *Pigment
	Scale     *v3.Vec
	Translate *v3.Vec

	// Precision is the number of digits after the decimal point for
	// coordinates. Zero means 5. A negative value writes the shortest form
	// that parses back to the same float64.
	Precision int

	// PerLine is the number of vectors written on each line. Zero means 2.
	PerLine int
}

func (o Options) precision() int {
	switch {
	case o.Precision < 0:
		return -1
	case o.Precision == 0:
		return defaultPrecision
	}
	return o.Precision
}

func (o Options) perLine() int {
	if o.PerLine <= 0 {
		return defaultPerLine
	}
	return o.PerLine
}

// WriteMesh2 writes m as a mesh2 object. Vertices are written in mesh order
// and face indices are zero-based references into that list.
func WriteMesh2(w io.Writer, m *kernel.Mesh, opts Options) error {
	if m.IsEmpty() {
		return &EmptyMeshError{Name: m.Name, Level: m.Level}
	}
	for i, face := range m.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("pov: face %d references vertex %d of %d", i, idx, len(m.Vertices))
			}
		}
	}

	prec := opts.precision()
	bw := bufio.NewWriter(w)

	if m.Name != "" {
		fmt.Fprintf(bw, "// %s: level %s\n", m.Name, formatFloat(m.Level, -1))
	}
	bw.WriteString("mesh2 {\n")

	writeVectors(bw, "vertex_vectors", len(m.Vertices), opts.perLine(), func(i int) string {
		return formatVec(m.Vertices[i], prec)
	})
	if opts.Normals && usableNormals(m) {
		writeVectors(bw, "normal_vectors", len(m.Normals), opts.perLine(), func(i int) string {
			return formatVec(m.Normals[i], prec)
		})
	}
	// Normals share the vertex indices, so normal_indices is not needed.
	writeVectors(bw, "face_indices", len(m.Faces), opts.perLine(), func(i int) string {
		f := m.Faces[i]
		return fmt.Sprintf("<%d, %d, %d>", f[0], f[1], f[2])
	})

	if p := opts.Pigment; p != nil {
		fmt.Fprintf(bw, "\tpigment { rgbt <%s, %s, %s, %s> }\n",
			formatFloat(p.R, 4), formatFloat(p.G, 4), formatFloat(p.B, 4), formatFloat(p.Transmit, 4))
	}
	if opts.Scale != nil {
		fmt.Fprintf(bw, "\tscale %s\n", formatVec(*opts.Scale, prec))
	}
	if opts.Translate != nil {
		fmt.Fprintf(bw, "\ttranslate %s\n", formatVec(*opts.Translate, prec))
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pov: write mesh2: %w", err)
	}
	return nil
}

// Mesh2 returns the mesh2 text for m.
func Mesh2(m *kernel.Mesh, opts Options) (string, error) {
	var sb strings.Builder
	if err := WriteMesh2(&sb, m, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// writeVectors writes one mesh2 list block: a count followed by n
// comma-separated items, perLine to a line.
func writeVectors(bw *bufio.Writer, keyword string, n, perLine int, item func(i int) string) {
	fmt.Fprintf(bw, "\t%s {\n\t\t%d,", keyword, n)
	for i := 0; i < n; i++ {
		if i%perLine == 0 {
			bw.WriteString("\n\t\t")
		} else {
			bw.WriteString(" ")
		}
		bw.WriteString(item(i))
		if i != n-1 {
			bw.WriteString(",")
		}
	}
	bw.WriteString("\n\t}\n")
}

// usableNormals reports whether every vertex has a finite, nonzero normal.
// POV-Ray complains about degenerate normal_vectors, so a mesh with any of
// them is written without normals and shaded flat.
func usableNormals(m *kernel.Mesh) bool {
	if !m.HasNormals() {
		return false
	}
	for _, n := range m.Normals {
		l := n.Length()
		if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return false
		}
	}
	return true
}

// formatFloat prints v with prec digits after the point, or the shortest
// exact representation when prec is negative. Negative zero prints as 0.
func formatFloat(v float64, prec int) string {
	if v == 0 {
		v = 0
	}
	if prec < 0 {
		// 'f' would spell out 1e-20 in full; SDL reads exponents.
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatVec(v v3.Vec, prec int) string {
	return "<" + formatFloat(v.X, prec) + ", " + formatFloat(v.Y, prec) + ", " + formatFloat(v.Z, prec) + ">"
}
