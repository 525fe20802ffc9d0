package job

import (
	"fmt"
	"math"
	"strings"

	"github.com/chazu/isopov/pkg/field"
	"github.com/chazu/isopov/pkg/tessellate"
)

// ValidationError describes one problem with a job.
type ValidationError struct {
	Code    string
	Message string
	Field   string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validate checks the job without touching the filesystem. An empty result
// means the job can run.
func (j *Job) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, j.validateSource()...)
	errs = append(errs, j.validateLevels()...)
	errs = append(errs, j.validateAppearance()...)
	errs = append(errs, j.validatePlacement()...)
	errs = append(errs, j.validateRun()...)
	return errs
}

// Err folds the validation result into a single error, or nil.
func (j *Job) Err() error {
	errs := j.Validate()
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("job: %d problem(s): %s", len(errs), strings.Join(msgs, "; "))
}

func (j *Job) validateSource() []ValidationError {
	var errs []ValidationError
	sources := 0
	for _, set := range []bool{j.Path != "", len(j.Components) > 0, j.Simulation != ""} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		errs = append(errs, ValidationError{
			Code:    "NO_FIELD",
			Message: "Job names no field path, components or simulation",
			Field:   "path",
		})
	case sources > 1:
		errs = append(errs, ValidationError{
			Code:    "AMBIGUOUS_FIELD",
			Message: "Job names more than one of field path, components and simulation",
			Field:   "components",
		})
	}
	for i, c := range j.Components {
		if c == "" {
			errs = append(errs, ValidationError{
				Code:    "EMPTY_COMPONENT",
				Message: fmt.Sprintf("Component %d has no path", i),
				Field:   "components",
			})
		}
	}
	return append(errs, j.validateSimulation()...)
}

func (j *Job) validateSimulation() []ValidationError {
	if j.Simulation == "" {
		if j.Quantity != "" || j.Eps != "" || j.Run != 0 {
			return []ValidationError{{
				Code:    "QUANTITY_WITHOUT_SIMULATION",
				Message: "Quantity, eps and run only apply to a simulation array",
				Field:   "simulation",
			}}
		}
		return nil
	}
	var errs []ValidationError
	known := j.Quantity == ""
	for _, q := range field.Quantities {
		if field.Quantity(j.Quantity) == q {
			known = true
		}
	}
	if !known {
		errs = append(errs, ValidationError{
			Code:    "UNKNOWN_QUANTITY",
			Message: fmt.Sprintf("Quantity %q is not one of %v", j.Quantity, field.Quantities),
			Field:   "quantity",
		})
	}
	if field.Quantity(j.Quantity) == field.EnergyDensity && j.Eps == "" {
		errs = append(errs, ValidationError{
			Code:    "EPS_REQUIRED",
			Message: "Energy density needs a permittivity field",
			Field:   "eps",
		})
	}
	if j.Run < 0 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_RUN",
			Message: fmt.Sprintf("Run is %d", j.Run),
			Field:   "run",
		})
	}
	return errs
}

func (j *Job) validateLevels() []ValidationError {
	if len(j.Levels) == 0 {
		return []ValidationError{{
			Code:    "NO_LEVELS",
			Message: "At least one isosurface level is required",
			Field:   "levels",
		}}
	}
	var errs []ValidationError
	for i, l := range j.Levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			errs = append(errs, ValidationError{
				Code:    "INVALID_LEVEL",
				Message: fmt.Sprintf("Level %d is %g", i, l),
				Field:   "levels",
			})
		}
	}
	return errs
}

func (j *Job) validateAppearance() []ValidationError {
	var errs []ValidationError
	if _, err := tessellate.LookupColormap(j.Colormap); err != nil {
		errs = append(errs, ValidationError{
			Code:    "UNKNOWN_COLORMAP",
			Message: fmt.Sprintf("Colormap %q is not one of %v", j.Colormap, tessellate.ColormapNames()),
			Field:   "colormap",
		})
	}
	if j.ColorLimits != nil && !(j.ColorLimits[0] < j.ColorLimits[1]) {
		errs = append(errs, ValidationError{
			Code:    "INVALID_COLOR_LIMITS",
			Message: fmt.Sprintf("Color limits [%g, %g] must be increasing", j.ColorLimits[0], j.ColorLimits[1]),
			Field:   "color_limits",
		})
	}
	if !(j.Transmit >= 0 && j.Transmit <= 1) {
		errs = append(errs, ValidationError{
			Code:    "INVALID_TRANSMIT",
			Message: fmt.Sprintf("Transmit %g is outside [0, 1]", j.Transmit),
			Field:   "transmit",
		})
	}
	return errs
}

func (j *Job) validatePlacement() []ValidationError {
	var errs []ValidationError
	if j.Spacing != nil {
		for axis, s := range j.Spacing {
			if !(s > 0) || math.IsInf(s, 0) {
				errs = append(errs, ValidationError{
					Code:    "INVALID_SPACING",
					Message: fmt.Sprintf("Spacing along axis %d is %g, want > 0", axis, s),
					Field:   "spacing",
				})
			}
		}
	}
	if j.Scale != nil {
		for axis, s := range j.Scale {
			if s == 0 {
				errs = append(errs, ValidationError{
					Code:    "ZERO_SCALE",
					Message: fmt.Sprintf("Scale along axis %d is zero", axis),
					Field:   "scale",
				})
			}
		}
	}
	if s := j.Slice; s != nil {
		for axis := 0; axis < 3; axis++ {
			for _, f := range []float64{s.Min[axis], s.Max[axis]} {
				if !(f >= 0 && f <= 1) {
					errs = append(errs, ValidationError{
						Code:    "INVALID_SLICE",
						Message: fmt.Sprintf("Slice fraction %g on axis %d is outside [0, 1]", f, axis),
						Field:   "slice",
					})
				}
			}
		}
	}
	return errs
}

func (j *Job) validateRun() []ValidationError {
	var errs []ValidationError
	switch j.Backend {
	case BackendMarch, BackendSdfx:
	default:
		errs = append(errs, ValidationError{
			Code:    "UNKNOWN_BACKEND",
			Message: fmt.Sprintf("Backend %q is not %q or %q", j.Backend, BackendMarch, BackendSdfx),
			Field:   "backend",
		})
	}
	if j.Workers < 0 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_WORKERS",
			Message: fmt.Sprintf("Workers is %d", j.Workers),
			Field:   "workers",
		})
	}
	if j.Cells < 0 {
		errs = append(errs, ValidationError{
			Code:    "INVALID_CELLS",
			Message: fmt.Sprintf("Cells is %d", j.Cells),
			Field:   "cells",
		})
	}
	if j.Output != "" && j.Output == j.STL {
		errs = append(errs, ValidationError{
			Code:    "OUTPUT_COLLISION",
			Message: "Fragment and STL outputs are the same file",
			Field:   "stl",
		})
	}
	return errs
}
