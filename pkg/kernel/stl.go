package kernel

import (
	"fmt"
	"io"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/unixpickle/model3d/model3d"
)

// WriteSTL writes the triangles of all meshes as one binary STL file.
// Empty meshes contribute nothing.
func WriteSTL(w io.Writer, meshes ...*Mesh) error {
	var tris []*model3d.Triangle
	for _, m := range meshes {
		for i := range m.Faces {
			t := m.Triangle(i)
			tris = append(tris, &model3d.Triangle{coord(t[0]), coord(t[1]), coord(t[2])})
		}
	}
	if len(tris) == 0 {
		return fmt.Errorf("kernel: no triangles to write")
	}
	if err := model3d.WriteSTL(w, tris); err != nil {
		return fmt.Errorf("kernel: write stl: %w", err)
	}
	return nil
}

func coord(v v3.Vec) model3d.Coord3D {
	return model3d.Coord3D{X: v.X, Y: v.Y, Z: v.Z}
}
