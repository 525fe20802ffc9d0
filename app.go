package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/chazu/isopov/pkg/engine"
	"github.com/chazu/isopov/pkg/field"
	"github.com/chazu/isopov/pkg/job"
	"github.com/chazu/isopov/pkg/kernel"
	"github.com/chazu/isopov/pkg/kernel/march"
	"github.com/chazu/isopov/pkg/kernel/sdfx"
	"github.com/chazu/isopov/pkg/pov"
	"github.com/chazu/isopov/pkg/tessellate"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/lucasb-eyer/go-colorful"
)

// App turns jobs into POV-Ray fragments.
type App struct {
	engine *engine.Engine

	// stdout receives the fragment when a job names no output file.
	stdout io.Writer
}

// SurfaceData summarizes one emitted isosurface.
type SurfaceData struct {
	Name      string  `json:"name"`
	Level     float64 `json:"level"`
	Vertices  int     `json:"vertices"`
	Triangles int     `json:"triangles"`
	Color     string  `json:"color"`
}

// EvalErrorData is a script, validation or run problem.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is everything a run produced.
type EvalResult struct {
	Fragment string          `json:"fragment"`
	Surfaces []SurfaceData   `json:"surfaces"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`

	meshes []*kernel.Mesh
}

// NewApp creates a new App writing unnamed output to standard output.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
		stdout: os.Stdout,
	}
}

// Evaluate takes a job script and renders it without writing any files.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Surfaces: []SurfaceData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the script into a job.
	j, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 2: Check the job before touching any files.
	if problems := j.Validate(); len(problems) > 0 {
		for _, p := range problems {
			result.Errors = append(result.Errors, EvalErrorData{Message: p.Error()})
		}
		return result
	}

	// Step 3: Extract and emit.
	rendered, err := a.Render(j)
	if err != nil {
		log.Printf("Render error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: "render failed: " + err.Error()})
		return result
	}
	rendered.Errors = result.Errors
	return *rendered
}

// Run renders j and writes the fragment, and the STL file when asked for.
func (a *App) Run(j *job.Job) error {
	if err := j.Err(); err != nil {
		return err
	}
	result, err := a.Render(j)
	if err != nil {
		return err
	}

	if j.Output == "" {
		if _, err := io.WriteString(a.stdout, result.Fragment); err != nil {
			return fmt.Errorf("write fragment: %w", err)
		}
	} else if err := os.WriteFile(j.Output, []byte(result.Fragment), 0o644); err != nil {
		return fmt.Errorf("write fragment: %w", err)
	}

	if j.STL != "" {
		f, err := os.Create(j.STL)
		if err != nil {
			return fmt.Errorf("write stl: %w", err)
		}
		if err := kernel.WriteSTL(f, result.meshes...); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write stl: %w", err)
		}
	}

	for _, s := range result.Surfaces {
		log.Printf("%s: level %g, %d vertices, %d triangles", s.Name, s.Level, s.Vertices, s.Triangles)
	}
	return nil
}

// Render loads the field of j, extracts every level and builds the
// fragment. Levels without triangles are skipped with a warning; when all
// of them are empty the first level's EmptyMeshError is returned.
func (a *App) Render(j *job.Job) (*EvalResult, error) {
	f, err := loadField(j)
	if err != nil {
		return nil, err
	}
	x, err := extractor(j)
	if err != nil {
		return nil, err
	}

	surfaces, err := tessellate.Tessellate(f, x, j.Levels, tessellate.Options{
		Clamp:       j.Clamp,
		Colormap:    j.Colormap,
		ColorLimits: j.ColorLimits,
		Transmit:    j.Transmit,
	})
	if err != nil {
		return nil, err
	}

	result := &EvalResult{
		Surfaces: []SurfaceData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}
	scale, translate := vecOrNil(j.Scale), vecOrNil(j.Translate)
	var objects []string
	var firstEmpty error
	for _, s := range surfaces {
		pigment := s.Pigment
		obj, err := pov.Mesh2(s.Mesh, pov.Options{
			Normals:   j.Normals,
			Pigment:   &pigment,
			Scale:     scale,
			Translate: translate,
		})
		var empty *pov.EmptyMeshError
		if errors.As(err, &empty) {
			log.Printf("warning: %v", err)
			result.Warnings = append(result.Warnings, EvalErrorData{Message: err.Error()})
			if firstEmpty == nil {
				firstEmpty = err
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		objects = append(objects, obj)
		result.meshes = append(result.meshes, s.Mesh)
		result.Surfaces = append(result.Surfaces, SurfaceData{
			Name:      s.Mesh.Name,
			Level:     s.Mesh.Level,
			Vertices:  s.Mesh.VertexCount(),
			Triangles: s.Mesh.TriangleCount(),
			Color:     colorful.Color{R: pigment.R, G: pigment.G, B: pigment.B}.Hex(),
		})
	}
	if len(objects) == 0 {
		return nil, firstEmpty
	}

	fragment := pov.Union(objects...)
	if j.Slice != nil {
		box, err := pov.FractionBox(field.Bounds(f), j.Slice.Min, j.Slice.Max, j.Slice.Subtract)
		if err != nil {
			return nil, err
		}
		fragment = pov.Slice(fragment, placeBox(box, scale, translate))
	}
	result.Fragment = fragment
	return result, nil
}

// loadField reads the field a job names and applies its placement.
func loadField(j *job.Job) (field.Field, error) {
	var g *field.Grid
	var err error
	switch {
	case j.Simulation != "":
		g, err = loadSimulation(j)
	case len(j.Components) > 0:
		components := make([]field.Field, 0, len(j.Components))
		for _, path := range j.Components {
			c, err := field.Load(path)
			if err != nil {
				return nil, err
			}
			components = append(components, c)
		}
		g, err = field.Magnitude(components...)
	default:
		g, err = field.Load(j.Path)
	}
	if err != nil {
		return nil, err
	}

	if j.Center {
		g = field.Center(g)
	}
	if j.Origin != nil || j.Spacing != nil {
		origin, spacing := g.Origin(), g.Spacing()
		if j.Origin != nil {
			origin = toVec(*j.Origin)
		}
		if j.Spacing != nil {
			spacing = toVec(*j.Spacing)
		}
		if g, err = g.WithPlacement(origin, spacing); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// loadSimulation derives the job's quantity from a simulation array. The
// permittivity field is on the simulation grid, before any centring.
func loadSimulation(j *job.Job) (*field.Grid, error) {
	sim, err := field.LoadSimulation(j.Simulation, j.Run)
	if err != nil {
		return nil, err
	}
	var eps field.Field
	if j.Eps != "" {
		if eps, err = field.Load(j.Eps); err != nil {
			return nil, err
		}
	}
	return sim.Quantity(field.Quantity(j.Quantity), eps)
}

// extractor builds the backend a job selects.
func extractor(j *job.Job) (kernel.Extractor, error) {
	switch j.Backend {
	case "", job.BackendMarch:
		return march.New(march.WithWorkers(j.Workers)), nil
	case job.BackendSdfx:
		return sdfx.New(j.Cells), nil
	}
	return nil, fmt.Errorf("unknown backend %q", j.Backend)
}

// placeBox moves a cut box from field coordinates to where the scaled and
// translated meshes end up.
func placeBox(b pov.Box, scale, translate *v3.Vec) pov.Box {
	lo, hi := b.Min, b.Max
	if scale != nil {
		lo = v3.Vec{X: lo.X * scale.X, Y: lo.Y * scale.Y, Z: lo.Z * scale.Z}
		hi = v3.Vec{X: hi.X * scale.X, Y: hi.Y * scale.Y, Z: hi.Z * scale.Z}
	}
	if translate != nil {
		lo, hi = lo.Add(*translate), hi.Add(*translate)
	}
	b.Min = v3.Vec{X: math.Min(lo.X, hi.X), Y: math.Min(lo.Y, hi.Y), Z: math.Min(lo.Z, hi.Z)}
	b.Max = v3.Vec{X: math.Max(lo.X, hi.X), Y: math.Max(lo.Y, hi.Y), Z: math.Max(lo.Z, hi.Z)}
	return b
}

func toVec(a [3]float64) v3.Vec {
	return v3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

func vecOrNil(a *[3]float64) *v3.Vec {
	if a == nil {
		return nil
	}
	v := toVec(*a)
	return &v
}
