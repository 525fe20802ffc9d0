package pov

import (
	"fmt"
	"strings"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// overshoot pushes box faces that sit exactly on the field boundary a
// little past it, so the cut does not leave coplanar artifacts.
const overshoot = 0.001

// Union joins several objects. A single object is returned unchanged.
func Union(objects ...string) string {
	if len(objects) == 1 {
		return objects[0]
	}
	var sb strings.Builder
	sb.WriteString("union {\n")
	for _, obj := range objects {
		sb.WriteString(indent(obj))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Box is an axis-aligned box used to cut an object. With Inverse set the
// box is removed from the object instead of kept.
type Box struct {
	Min, Max v3.Vec
	Inverse  bool
}

// Slice intersects object with b.
func Slice(object string, b Box) string {
	var sb strings.Builder
	sb.WriteString("intersection {\n")
	sb.WriteString(indent(object))
	fmt.Fprintf(&sb, "\tbox { %s, %s", formatVec(b.Min, defaultPrecision), formatVec(b.Max, defaultPrecision))
	if b.Inverse {
		sb.WriteString(" inverse")
	}
	sb.WriteString(" }\n}\n")
	return sb.String()
}

// FractionBox converts a cut given as fractions of bounds into a world-space
// Box. Each fraction must lie in [0,1]; reversed pairs are swapped. Faces on
// the boundary are pushed slightly outward.
func FractionBox(bounds sdf.Box3, lo, hi [3]float64, inverse bool) (Box, error) {
	size := bounds.Max.Sub(bounds.Min)
	ext := [3]float64{size.X, size.Y, size.Z}
	base := [3]float64{bounds.Min.X, bounds.Min.Y, bounds.Min.Z}

	var min, max [3]float64
	for axis := 0; axis < 3; axis++ {
		a, b := lo[axis], hi[axis]
		if a > b {
			a, b = b, a
		}
		if a < 0 || b > 1 {
			return Box{}, fmt.Errorf("pov: slice fractions [%g, %g] on axis %d outside [0, 1]", a, b, axis)
		}
		if a == 0 {
			a -= overshoot
		}
		if b == 1 {
			b += overshoot
		}
		min[axis] = base[axis] + a*ext[axis]
		max[axis] = base[axis] + b*ext[axis]
	}
	return Box{
		Min:     v3.Vec{X: min[0], Y: min[1], Z: min[2]},
		Max:     v3.Vec{X: max[0], Y: max[1], Z: max[2]},
		Inverse: inverse,
	}, nil
}

// indent prefixes every non-empty line of s with a tab.
func indent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			sb.WriteString("\t")
		}
		sb.WriteString(line)
	}
	if !strings.HasSuffix(s, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}
