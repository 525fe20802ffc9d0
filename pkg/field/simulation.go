package field

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
	"github.com/sbinet/npyio"
)

// Quantity names a scalar derived from a simulation array.
type Quantity string

// Quantities understood by Simulation.Quantity.
const (
	EMagnitude    Quantity = "e_mag"
	HMagnitude    Quantity = "h_mag"
	EnergyDensity Quantity = "energy"
)

// Quantities lists every Quantity in a stable order.
var Quantities = []Quantity{EMagnitude, HMagnitude, EnergyDensity}

// Simulation holds the electric and magnetic vector fields of one
// simulation run on a grid. Simulators write arrays indexed
// [z, y, x, E/H, component] with z running top to bottom; NewSimulation
// reverses z and moves x to the first axis, so sample (i, j, k) is x, y, z
// with z running bottom to top, matching Grid.
type Simulation struct {
	shape [3]int
	e, h  []complex128 // three components per point, point-major
}

// NewSimulation builds a Simulation from the flat contents of a
// [z, y, x, 2, 3] array. fortran selects column-major layout.
func NewSimulation(dims [5]int, fortran bool, raw []complex128) (*Simulation, error) {
	if dims[3] != 2 || dims[4] != 3 {
		return nil, &MalformedFieldError{
			Shape:  [3]int{dims[2], dims[1], dims[0]},
			Reason: fmt.Sprintf("simulation array has %d fields of %d components, want 2 of 3", dims[3], dims[4]),
		}
	}
	nz, ny, nx := dims[0], dims[1], dims[2]
	if nx < 2 || ny < 2 || nz < 2 {
		return nil, &MalformedFieldError{Shape: [3]int{nx, ny, nz}, Reason: "every axis needs at least 2 samples"}
	}
	if want := nz * ny * nx * 6; len(raw) != want {
		return nil, &MalformedFieldError{
			Shape:  [3]int{nx, ny, nz},
			Reason: fmt.Sprintf("simulation array has %d values, want %d", len(raw), want),
		}
	}

	s := &Simulation{
		shape: [3]int{nx, ny, nz},
		e:     make([]complex128, nx*ny*nz*3),
		h:     make([]complex128, nx*ny*nz*3),
	}
	for k := 0; k < nz; k++ {
		src := nz - 1 - k
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				p := s.point(i, j, k)
				for c := 0; c < 3; c++ {
					s.e[p+c] = raw[flatIndex([]int{src, j, i, 0, c}, dims[:], fortran)]
					s.h[p+c] = raw[flatIndex([]int{src, j, i, 1, c}, dims[:], fortran)]
				}
			}
		}
	}
	return s, nil
}

// Shape returns the grid shape in x, y, z order.
func (s *Simulation) Shape() [3]int { return s.shape }

func (s *Simulation) point(i, j, k int) int {
	return (i + s.shape[0]*(j+s.shape[1]*k)) * 3
}

// magnitude returns sqrt(sum of v times its conjugate) over the three
// components at every point.
func (s *Simulation) magnitude(v []complex128) []float64 {
	out := make([]float64, len(v)/3)
	for p := range out {
		var sum float64
		for c := 0; c < 3; c++ {
			x := v[p*3+c]
			sum += real(x * cmplx.Conj(x))
		}
		out[p] = math.Sqrt(sum)
	}
	return out
}

func (s *Simulation) grid(values []float64) (*Grid, error) {
	return NewGrid(s.shape, v3.Vec{}, UnitSpacing, values)
}

// Quantity derives the named scalar field. eps, the relative permittivity
// on the same grid, is only read for EnergyDensity, which is
// 0.5 * (|E|/eps + |H|).
func (s *Simulation) Quantity(q Quantity, eps Field) (*Grid, error) {
	switch q {
	case EMagnitude, "":
		return s.grid(s.magnitude(s.e))
	case HMagnitude:
		return s.grid(s.magnitude(s.h))
	case EnergyDensity:
		return s.energyDensity(eps)
	}
	return nil, fmt.Errorf("field: unknown quantity %q", q)
}

func (s *Simulation) energyDensity(eps Field) (*Grid, error) {
	if eps == nil {
		return nil, fmt.Errorf("field: energy density needs a permittivity grid")
	}
	if eps.Shape() != s.shape {
		e := eps.Shape()
		return nil, fmt.Errorf("field: permittivity has shape %dx%dx%d, want %dx%dx%d",
			e[0], e[1], e[2], s.shape[0], s.shape[1], s.shape[2])
	}
	em, hm := s.magnitude(s.e), s.magnitude(s.h)
	values := make([]float64, len(em))
	for k := 0; k < s.shape[2]; k++ {
		for j := 0; j < s.shape[1]; j++ {
			for i := 0; i < s.shape[0]; i++ {
				p := s.point(i, j, k) / 3
				ep := eps.At(i, j, k)
				if ep == 0 {
					return nil, fmt.Errorf("field: permittivity is zero at (%d, %d, %d)", i, j, k)
				}
				values[p] = 0.5 * (em[p]/ep + hm[p])
			}
		}
	}
	return s.grid(values)
}

// flatIndex maps a multi-index into the flat storage of an array with the
// given dims, row-major unless fortran is set.
func flatIndex(idx, dims []int, fortran bool) int {
	flat := 0
	if fortran {
		for a := len(dims) - 1; a >= 0; a-- {
			flat = flat*dims[a] + idx[a]
		}
		return flat
	}
	for a := range dims {
		flat = flat*dims[a] + idx[a]
	}
	return flat
}

// ReadSimulationNPY decodes a simulation array. A 5-D array is a single run;
// a 6-D array holds several runs along its first axis and run picks one.
// Complex (c16, c8) and real (f8, f4) dtypes are accepted.
func ReadSimulationNPY(r io.Reader, run int) (*Simulation, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "read npy header")
	}
	descr := nr.Header.Descr
	shape := descr.Shape
	switch len(shape) {
	case 5:
		if run != 0 {
			return nil, errors.Errorf("read simulation: run %d requested from a single-run array", run)
		}
	case 6:
		if run < 0 || run >= shape[0] {
			return nil, errors.Errorf("read simulation: run %d out of range [0, %d)", run, shape[0])
		}
	default:
		return nil, &MalformedFieldError{Reason: "npy array has shape " + shapeString(shape) + ", want 5 or 6 dimensions"}
	}

	n := 1
	for _, d := range shape {
		n *= d
	}
	raw, err := readComplex(nr, descr.Type, n)
	if err != nil {
		return nil, err
	}

	var dims [5]int
	copy(dims[:], shape[len(shape)-5:])
	if len(shape) == 6 {
		raw = pickRun(raw, shape[0], descr.Fortran, run)
	}
	return NewSimulation(dims, descr.Fortran, raw)
}

// pickRun extracts one run of a 6-D array as a flat 5-D array in the same
// memory order.
func pickRun(raw []complex128, runs int, fortran bool, run int) []complex128 {
	size := len(raw) / runs
	if !fortran {
		return raw[run*size : (run+1)*size]
	}
	// Column-major: the run axis varies fastest.
	out := make([]complex128, size)
	for p := range out {
		out[p] = raw[p*runs+run]
	}
	return out
}

func readComplex(nr *npyio.Reader, dtype string, n int) ([]complex128, error) {
	out := make([]complex128, n)
	var err error
	switch strings.TrimLeft(dtype, "<=|") {
	case "c16":
		err = nr.Read(&out)
	case "c8":
		buf := make([]complex64, n)
		if err = nr.Read(&buf); err == nil {
			for i, v := range buf {
				out[i] = complex128(v)
			}
		}
	case "f8":
		buf := make([]float64, n)
		if err = nr.Read(&buf); err == nil {
			for i, v := range buf {
				out[i] = complex(v, 0)
			}
		}
	case "f4":
		buf := make([]float32, n)
		if err = nr.Read(&buf); err == nil {
			for i, v := range buf {
				out[i] = complex(float64(v), 0)
			}
		}
	default:
		return nil, errors.Errorf("read simulation: unsupported dtype %q", dtype)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read simulation data")
	}
	return out, nil
}

// LoadSimulation reads a .npy simulation array from path.
func LoadSimulation(path string, run int) (*Simulation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load simulation")
	}
	defer f.Close()

	s, err := ReadSimulationNPY(f, run)
	if err != nil {
		return nil, errors.Wrapf(err, "load simulation %s", path)
	}
	return s, nil
}
