// Package job describes one isosurface rendering run: where the field comes
// from, which levels to extract, how to colour and cut them, and where the
// POV-Ray fragment goes. Jobs are written as JSON files or built by the
// engine package from a Lisp script.
package job

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Backends understood by Backend.
const (
	BackendMarch = "march"
	BackendSdfx  = "sdfx"
)

// Job is a complete run description.
type Job struct {
	// Path is a .npy or .json scalar field. Components, when set instead,
	// are the per-axis fields of a vector quantity whose magnitude is used.
	Path       string   `json:"path,omitempty"`
	Components []string `json:"components,omitempty"`

	// Simulation is a 5-D (or 6-D, with Run picking one) electromagnetic
	// simulation array. Quantity chooses the scalar derived from it; Eps is
	// the permittivity field the energy density divides by.
	Simulation string `json:"simulation,omitempty"`
	Run        int    `json:"run,omitempty"`
	Quantity   string `json:"quantity,omitempty"`
	Eps        string `json:"eps,omitempty"`

	// Center rolls the field by half its x and y extent.
	Center bool `json:"center,omitempty"`

	// Origin and Spacing place the grid in world space. Nil keeps the zero
	// origin and unit spacing of the loaded file.
	Origin  *[3]float64 `json:"origin,omitempty"`
	Spacing *[3]float64 `json:"spacing,omitempty"`

	Levels []float64 `json:"levels"`
	Clamp  bool      `json:"clamp,omitempty"`

	Colormap    string      `json:"colormap,omitempty"`
	ColorLimits *[2]float64 `json:"color_limits,omitempty"`
	Transmit    float64     `json:"transmit"`
	Normals     bool        `json:"normals"`

	Slice     *Slice      `json:"slice,omitempty"`
	Scale     *[3]float64 `json:"scale,omitempty"`
	Translate *[3]float64 `json:"translate,omitempty"`

	Backend string `json:"backend,omitempty"`
	Cells   int    `json:"cells,omitempty"`
	Workers int    `json:"workers,omitempty"`

	// Output is the fragment path; empty writes to standard output.
	Output string `json:"output,omitempty"`
	// STL, when set, also writes every surface to a binary STL file.
	STL string `json:"stl,omitempty"`
}

// Slice cuts the surfaces with a box given as fractions of the field
// bounds. Subtract removes the box instead of keeping it.
type Slice struct {
	Min      [3]float64 `json:"min"`
	Max      [3]float64 `json:"max"`
	Subtract bool       `json:"subtract,omitempty"`
}

// Default returns a job with every optional setting at its default.
func Default() *Job {
	return &Job{
		Colormap: "viridis",
		Transmit: 0.4,
		Normals:  true,
		Backend:  BackendMarch,
		Workers:  1,
	}
}

// Parse decodes a JSON job over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (*Job, error) {
	j := Default()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(j); err != nil {
		return nil, errors.Wrap(err, "parse job")
	}
	return j, nil
}

// Load reads a JSON job file. Relative field paths are resolved against
// the directory holding the job file.
func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load job")
	}
	defer f.Close()

	j, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load job %s", path)
	}
	j.ResolvePaths(filepath.Dir(path))
	return j, nil
}

// ResolvePaths makes relative field paths relative to dir.
func (j *Job) ResolvePaths(dir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	j.Path = resolve(j.Path)
	j.Simulation = resolve(j.Simulation)
	j.Eps = resolve(j.Eps)
	for i, c := range j.Components {
		j.Components[i] = resolve(c)
	}
}

// Sources returns the field files the job reads.
func (j *Job) Sources() []string {
	switch {
	case len(j.Components) > 0:
		return j.Components
	case j.Simulation != "" && j.Eps != "":
		return []string{j.Simulation, j.Eps}
	case j.Simulation != "":
		return []string{j.Simulation}
	case j.Path != "":
		return []string{j.Path}
	}
	return nil
}
