package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/isopov/pkg/job"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW reports whether s is a keyword produced by preprocessSource and
// returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs splits a call's arguments into positional and keyword arguments.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			// A trailing keyword is a flag.
			result.kw[name] = &zygo.SexpBool{Val: true}
		}
	}
	return result
}

// check rejects keywords the builtin does not know, so typos fail loudly.
func (a kwArgs) check(builtin string, known ...string) error {
	for name := range a.kw {
		found := false
		for _, k := range known {
			if name == k {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s: unknown keyword :%s", builtin, name)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected true or false, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a list or array to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// toFloats converts a list or array of numbers.
func toFloats(s zygo.Sexp) ([]float64, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, item := range items {
		if out[i], err = toFloat64(item); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return out, nil
}

// toVec3 converts a three-element list or array such as [0 0 1].
func toVec3(s zygo.Sexp) ([3]float64, error) {
	fs, err := toFloats(s)
	if err != nil {
		return [3]float64{}, err
	}
	if len(fs) != 3 {
		return [3]float64{}, fmt.Errorf("expected 3 components, got %d", len(fs))
	}
	return [3]float64{fs[0], fs[1], fs[2]}, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

type builtin func(j *job.Job, a kwArgs) error

// registerBuiltins installs the job DSL into env. Every builtin edits j in
// place and returns nil, so a script reads as a list of settings. Source
// must go through preprocessSource first.
func registerBuiltins(env *zygo.Zlisp, j *job.Job) {
	builtins := map[string]builtin{
		"volume":       volumeBuiltin,
		"magnitude":    magnitudeBuiltin,
		"simulation":   simulationBuiltin,
		"levels":       levelsBuiltin,
		"colormap":     colormapBuiltin,
		"color_limits": colorLimitsBuiltin,
		"cut":          cutBuiltin,
		"place":        placeBuiltin,
		"backend":      backendBuiltin,
		"output":       outputBuiltin,
	}
	for name, fn := range builtins {
		env.AddFunction(name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if err := fn(j, parseArgs(args)); err != nil {
				return zygo.SexpNull, err
			}
			return zygo.SexpNull, nil
		})
	}
}

// placement handles the :center :origin :spacing keywords shared by the
// field source builtins.
func placement(builtin string, j *job.Job, a kwArgs) error {
	if v, ok := a.kw["center"]; ok {
		b, err := toBool(v)
		if err != nil {
			return fmt.Errorf("%s: center: %w", builtin, err)
		}
		j.Center = b
	}
	if v, ok := a.kw["origin"]; ok {
		o, err := toVec3(v)
		if err != nil {
			return fmt.Errorf("%s: origin: %w", builtin, err)
		}
		j.Origin = &o
	}
	if v, ok := a.kw["spacing"]; ok {
		s, err := toVec3(v)
		if err != nil {
			return fmt.Errorf("%s: spacing: %w", builtin, err)
		}
		j.Spacing = &s
	}
	return nil
}

// (volume "e_mag.npy" :center true :origin [0 0 0] :spacing [1 1 1])
func volumeBuiltin(j *job.Job, a kwArgs) error {
	if err := a.check("volume", "center", "origin", "spacing"); err != nil {
		return err
	}
	if len(a.positional) != 1 {
		return fmt.Errorf("volume requires exactly one path, got %d arguments", len(a.positional))
	}
	path, err := toString(a.positional[0])
	if err != nil {
		return fmt.Errorf("volume: path: %w", err)
	}
	j.Path = path
	j.Components = nil
	clearSimulation(j)
	return placement("volume", j, a)
}

// (magnitude "ex.npy" "ey.npy" "ez.npy" :center true)
func magnitudeBuiltin(j *job.Job, a kwArgs) error {
	if err := a.check("magnitude", "center", "origin", "spacing"); err != nil {
		return err
	}
	if len(a.positional) == 0 {
		return fmt.Errorf("magnitude requires at least one component path")
	}
	var paths []string
	for i, p := range a.positional {
		s, err := toString(p)
		if err != nil {
			return fmt.Errorf("magnitude: component %d: %w", i, err)
		}
		paths = append(paths, s)
	}
	j.Path = ""
	j.Components = paths
	clearSimulation(j)
	return placement("magnitude", j, a)
}

func clearSimulation(j *job.Job) {
	j.Simulation, j.Quantity, j.Eps, j.Run = "", "", "", 0
}

// (simulation "all_sims.npy" :run 1 :quantity "energy" :eps "eps.npy" :center true)
func simulationBuiltin(j *job.Job, a kwArgs) error {
	if err := a.check("simulation", "run", "quantity", "eps", "center", "origin", "spacing"); err != nil {
		return err
	}
	if len(a.positional) != 1 {
		return fmt.Errorf("simulation requires exactly one path, got %d arguments", len(a.positional))
	}
	path, err := toString(a.positional[0])
	if err != nil {
		return fmt.Errorf("simulation: path: %w", err)
	}
	clearSimulation(j)
	j.Path = ""
	j.Components = nil
	j.Simulation = path
	if v, ok := a.kw["run"]; ok {
		if j.Run, err = toInt(v); err != nil {
			return fmt.Errorf("simulation: run: %w", err)
		}
	}
	if v, ok := a.kw["quantity"]; ok {
		if j.Quantity, err = toString(v); err != nil {
			return fmt.Errorf("simulation: quantity: %w", err)
		}
	}
	if v, ok := a.kw["eps"]; ok {
		if j.Eps, err = toString(v); err != nil {
			return fmt.Errorf("simulation: eps: %w", err)
		}
	}
	return placement("simulation", j, a)
}

// (levels 0.5 1.0 1.5 :clamp true)
func levelsBuiltin(j *job.Job, a kwArgs) error {
	if err := a.check("levels", "clamp"); err != nil {
		return err
	}
	if len(a.positional) == 0 {
		return fmt.Errorf("levels requires at least one value")
	}
	levels := make([]float64, 0, len(a.positional))
	for i, p := range a.positional {
		f, err := toFloat64(p)
		if err != nil {
			return fmt.Errorf("levels: value %d: %w", i, err)
		}
		levels = append(levels, f)
	}
	j.Levels = levels
	if v, ok := a.kw["clamp"]; ok {
		b, err := toBool(v)
		if err != nil {
			return fmt.Errorf("levels: clamp: %w", err)
		}
		j.Clamp = b
	}
	return nil
}

// (colormap "hot" :transmit 0.2 :normals false)
func colormapBuiltin(j *job.Job, a kwArgs) error {
	if err := a.check("colormap", "transmit", "normals"); err != nil {
		return err
	}
	if len(a.positional) > 1 {
		return fmt.Errorf("colormap takes one name, got %d", len(a.positional))
	}
	if len(a.positional) == 1 {
		name, err := toString(a.positional[0])
		if err != nil {
			return fmt.Errorf("colormap: name: %w", err)
		}
		j.Colormap = name
	}
	if v, ok := a.kw["transmit"]; ok {
		f, err := toFloat64(v)
		if err != nil {
			return fmt.Errorf("colormap: transmit: %w", err)
		}
		j.Transmit = f
	}
	if v, ok := a.kw["normals"]; ok {
		b, err := toBool(v)
		if err != nil {
			return fmt.Errorf("colormap: normals: %w", err)
		}
		j.Normals = b
	}
	return nil
}

// (color-limits 0 2.5)
func colorLimitsBuiltin(j *job.Job, a kwArgs) error {
	if err := a.check("color-limits"); err != nil {
		return err
	}
	if len(a.positional) != 2 {
		return fmt.Errorf("color-limits requires a low and a high value, got %d arguments", len(a.positional))
	}
	lo, err := toFloat64(a.positional[0])
	if err != nil {
		return fmt.Errorf("color-limits: low: %w", err)
	}
	hi, err := toFloat64(a.positional[1])
	if err != nil {
		return fmt.Errorf("color-limits: high: %w", err)
	}
	j.ColorLimits = &[2]float64{lo, hi}
	return nil
}

// (cut :min [0.5 0.5 0] :max [1 1 1] :subtract true)
func cutBuiltin(j *job.Job, a kwArgs) error {
	if err := a.check("cut", "min", "max", "subtract"); err != nil {
		return err
	}
	s := &job.Slice{Max: [3]float64{1, 1, 1}}
	if v, ok := a.kw["min"]; ok {
		m, err := toVec3(v)
		if err != nil {
			return fmt.Errorf("cut: min: %w", err)
		}
		s.Min = m
	}
	if v, ok := a.kw["max"]; ok {
		m, err := toVec3(v)
		if err != nil {
			return fmt.Errorf("cut: max: %w", err)
		}
		s.Max = m
	}
	if v, ok := a.kw["subtract"]; ok {
		b, err := toBool(v)
		if err != nil {
			return fmt.Errorf("cut: subtract: %w", err)
		}
		s.Subtract = b
	}
	j.Slice = s
	return nil
}

// (place :scale [1 1 -1] :translate [0 0 5])
func placeBuiltin(j *job.Job, a kwArgs) error {
	if err := a.check("place", "scale", "translate"); err != nil {
		return err
	}
	if len(a.positional) > 0 {
		return fmt.Errorf("place takes only :scale and :translate")
	}
	if v, ok := a.kw["scale"]; ok {
		s, err := toVec3(v)
		if err != nil {
			return fmt.Errorf("place: scale: %w", err)
		}
		j.Scale = &s
	}
	if v, ok := a.kw["translate"]; ok {
		t, err := toVec3(v)
		if err != nil {
			return fmt.Errorf("place: translate: %w", err)
		}
		j.Translate = &t
	}
	return nil
}

// (backend "march" :workers 4) or (backend "sdfx" :cells 128)
func backendBuiltin(j *job.Job, a kwArgs) error {
	if err := a.check("backend", "workers", "cells"); err != nil {
		return err
	}
	if len(a.positional) != 1 {
		return fmt.Errorf("backend requires exactly one name, got %d arguments", len(a.positional))
	}
	name, err := toString(a.positional[0])
	if err != nil {
		return fmt.Errorf("backend: name: %w", err)
	}
	j.Backend = name
	if v, ok := a.kw["workers"]; ok {
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("backend: workers: %w", err)
		}
		j.Workers = n
	}
	if v, ok := a.kw["cells"]; ok {
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("backend: cells: %w", err)
		}
		j.Cells = n
	}
	return nil
}

// (output "iso.inc" :stl "iso.stl")
func outputBuiltin(j *job.Job, a kwArgs) error {
	if err := a.check("output", "stl"); err != nil {
		return err
	}
	if len(a.positional) > 1 {
		return fmt.Errorf("output takes one path, got %d", len(a.positional))
	}
	if len(a.positional) == 1 {
		path, err := toString(a.positional[0])
		if err != nil {
			return fmt.Errorf("output: path: %w", err)
		}
		j.Output = path
	}
	if v, ok := a.kw["stl"]; ok {
		path, err := toString(v)
		if err != nil {
			return fmt.Errorf("output: stl: %w", err)
		}
		j.STL = path
	}
	return nil
}
