package field

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
	"github.com/sbinet/npyio"
)

// ReadJSON decodes a grid stored as nested arrays indexed [x][y][z].
// The result has a zero origin and unit spacing.
func ReadJSON(r io.Reader) (*Grid, error) {
	var object [][][]float64
	if err := json.NewDecoder(r).Decode(&object); err != nil {
		return nil, errors.Wrap(err, "read json field")
	}
	nx := len(object)
	if nx == 0 {
		return nil, &MalformedFieldError{Reason: "empty json array"}
	}
	ny := len(object[0])
	nz := 0
	if ny > 0 {
		nz = len(object[0][0])
	}
	shape := [3]int{nx, ny, nz}

	values := make([]float64, nx*ny*nz)
	for i, plane := range object {
		if len(plane) != ny {
			return nil, &MalformedFieldError{Shape: shape, Reason: "ragged y dimension"}
		}
		for j, line := range plane {
			if len(line) != nz {
				return nil, &MalformedFieldError{Shape: shape, Reason: "ragged z dimension"}
			}
			for k, v := range line {
				values[i+nx*(j+ny*k)] = v
			}
		}
	}
	return NewGrid(shape, v3.Vec{}, UnitSpacing, values)
}

// ReadNPY decodes a 3-dimensional numpy array. Axis 0 of the array is x.
// Supported dtypes are float64, float32, int64 and int32 in either byte
// order flag numpy writes for the host, and both C and Fortran layouts.
func ReadNPY(r io.Reader) (*Grid, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "read npy header")
	}
	descr := nr.Header.Descr
	if len(descr.Shape) != 3 {
		return nil, &MalformedFieldError{Reason: "npy array has shape " + shapeString(descr.Shape) + ", want 3 dimensions"}
	}
	shape := [3]int{descr.Shape[0], descr.Shape[1], descr.Shape[2]}
	n := shape[0] * shape[1] * shape[2]

	raw := make([]float64, n)
	switch dtype := strings.TrimLeft(descr.Type, "<=|"); dtype {
	case "f8":
		err = nr.Read(&raw)
	case "f4":
		buf := make([]float32, n)
		if err = nr.Read(&buf); err == nil {
			for i, v := range buf {
				raw[i] = float64(v)
			}
		}
	case "i8":
		buf := make([]int64, n)
		if err = nr.Read(&buf); err == nil {
			for i, v := range buf {
				raw[i] = float64(v)
			}
		}
	case "i4":
		buf := make([]int32, n)
		if err = nr.Read(&buf); err == nil {
			for i, v := range buf {
				raw[i] = float64(v)
			}
		}
	default:
		return nil, errors.Errorf("read npy data: unsupported dtype %q", descr.Type)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read npy data")
	}

	if descr.Fortran {
		// Fortran order already has x varying fastest.
		return NewGrid(shape, v3.Vec{}, UnitSpacing, raw)
	}
	values := make([]float64, n)
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				values[i+shape[0]*(j+shape[1]*k)] = raw[(i*shape[1]+j)*shape[2]+k]
			}
		}
	}
	return NewGrid(shape, v3.Vec{}, UnitSpacing, values)
}

// Load reads a grid from path, choosing the decoder by file extension.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load field")
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".npy":
		g, err := ReadNPY(f)
		return g, errors.Wrapf(err, "load field %s", path)
	case ".json":
		g, err := ReadJSON(f)
		return g, errors.Wrapf(err, "load field %s", path)
	default:
		return nil, errors.Errorf("load field %s: unknown extension %q", path, ext)
	}
}

func shapeString(shape []int) string {
	parts := make([]string, len(shape))
	for i, n := range shape {
		parts[i] = strconv.Itoa(n)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
