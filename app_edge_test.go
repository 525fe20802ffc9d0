package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/chazu/isopov/pkg/job"
	"github.com/chazu/isopov/pkg/pov"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ---------------------------------------------------------------------------
// 1. Empty result slices serialize as [] not null.
// ---------------------------------------------------------------------------

func TestE2EResultSlicesNonNil(t *testing.T) {
	for _, source := range []string{"", `(levels 1`, `;; just a comment`} {
		result := NewApp().Evaluate(source)
		if result.Surfaces == nil || result.Errors == nil || result.Warnings == nil {
			t.Errorf("source %q: result has nil slices: %+v", source, result)
		}
		data, err := json.Marshal(result)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), `"surfaces":[]`) {
			t.Errorf("source %q: surfaces not serialized as []: %s", source, data)
		}
	}
}

// ---------------------------------------------------------------------------
// 2. Syntax error on a later line keeps a message.
// ---------------------------------------------------------------------------

func TestE2ESyntaxErrorWithLineInfo(t *testing.T) {
	source := "(levels 1 2)\n(volume \"test.json\""
	result := NewApp().Evaluate(source)

	if len(result.Errors) == 0 {
		t.Fatal("expected at least one eval error for unmatched parens")
	}
	e := result.Errors[0]
	if e.Message == "" {
		t.Error("syntax error should have a non-empty message")
	}
	if e.Line > 0 {
		t.Logf("extracted line info: line=%d, message=%q", e.Line, e.Message)
	}
}

// ---------------------------------------------------------------------------
// 3. Levels outside the field range.
// ---------------------------------------------------------------------------

func TestE2EEmptyLevelWarns(t *testing.T) {
	source := fmt.Sprintf(`(volume %q) (levels 1 100)`, ballField(t))
	result := NewApp().Evaluate(source)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Surfaces) != 1 || result.Surfaces[0].Name != "iso_0" {
		t.Fatalf("surfaces = %+v, want only iso_0", result.Surfaces)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0].Message, "iso_1") {
		t.Errorf("warnings = %v, want one for iso_1", result.Warnings)
	}
	if strings.HasPrefix(result.Fragment, "union") {
		t.Error("a single surviving surface should not be wrapped in a union")
	}
}

func TestRenderAllLevelsEmpty(t *testing.T) {
	j := job.Default()
	j.Path = ballField(t)
	j.Levels = []float64{50, -50}

	_, err := NewApp().Render(j)
	var empty *pov.EmptyMeshError
	if !errors.As(err, &empty) {
		t.Fatalf("Render error = %v, want EmptyMeshError", err)
	}
	// Levels are planned in ascending order, so the first is -50.
	if empty.Name != "iso_0" || empty.Level != -50 {
		t.Errorf("EmptyMeshError = %+v, want iso_0 at -50", empty)
	}
}

func TestE2EClampRescuesLevel(t *testing.T) {
	source := fmt.Sprintf(`(volume %q) (levels 100 :clamp true)`, ballField(t))
	result := NewApp().Evaluate(source)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Surfaces) != 1 || result.Surfaces[0].Triangles == 0 {
		t.Errorf("clamped level produced %+v", result.Surfaces)
	}
}

// ---------------------------------------------------------------------------
// 4. Field preparation and backends.
// ---------------------------------------------------------------------------

func TestE2EMagnitude(t *testing.T) {
	dir := t.TempDir()
	ex := writeField(t, dir, "ex.json", 9, func(x, y, z float64) float64 { return 10 - 2*ball(x, y, z) })
	ey := writeField(t, dir, "ey.json", 9, func(x, y, z float64) float64 { return 0 })
	source := fmt.Sprintf(`(magnitude %q %q) (levels 6)`, ex, ey)

	result := NewApp().Evaluate(source)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Surfaces) != 1 || result.Surfaces[0].Triangles == 0 {
		t.Errorf("magnitude job produced %+v", result.Surfaces)
	}
}

func TestE2EBackends(t *testing.T) {
	field := ballField(t)
	for _, backend := range []string{`(backend "march" :workers 4)`, `(backend "sdfx" :cells 16)`} {
		t.Run(backend, func(t *testing.T) {
			result := NewApp().Evaluate(fmt.Sprintf(`(volume %q) (levels 1.5) %s`, field, backend))
			if len(result.Errors) > 0 {
				t.Fatalf("unexpected errors: %v", result.Errors)
			}
			if len(result.Surfaces) != 1 || result.Surfaces[0].Triangles == 0 {
				t.Errorf("surfaces = %+v", result.Surfaces)
			}
		})
	}
}

func TestE2EWorkersDoNotChangeOutput(t *testing.T) {
	field := ballField(t)
	var fragments []string
	for _, workers := range []int{1, 3, 8} {
		result := NewApp().Evaluate(fmt.Sprintf(`(volume %q) (levels 1 2.5) (backend "march" :workers %d)`, field, workers))
		if len(result.Errors) > 0 {
			t.Fatalf("workers %d: %v", workers, result.Errors)
		}
		fragments = append(fragments, result.Fragment)
	}
	for i := 1; i < len(fragments); i++ {
		if fragments[i] != fragments[0] {
			t.Errorf("fragment %d differs from the single-worker fragment", i)
		}
	}
}

// ---------------------------------------------------------------------------
// 5. Cut and placement.
// ---------------------------------------------------------------------------

func TestE2ECutAndPlace(t *testing.T) {
	source := fmt.Sprintf(`
(volume %q)
(levels 1)
(cut :min [0.5 0 0] :max [1 1 1] :subtract true)
(place :scale [2 2 2] :translate [0 0 10])
`, ballField(t))
	result := NewApp().Evaluate(source)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	f := result.Fragment
	if !strings.HasPrefix(f, "intersection {\n") {
		t.Errorf("fragment should be an intersection, starts with %q", firstLine(f))
	}
	for _, want := range []string{
		"\t\tscale <2.00000, 2.00000, 2.00000>",
		"\t\ttranslate <0.00000, 0.00000, 10.00000>",
		"inverse",
	} {
		if !strings.Contains(f, want) {
			t.Errorf("fragment missing %q", want)
		}
	}
}

func TestPlaceBox(t *testing.T) {
	box := pov.Box{Min: v3.Vec{X: 0, Y: 1, Z: 2}, Max: v3.Vec{X: 1, Y: 2, Z: 3}, Inverse: true}
	tests := []struct {
		name             string
		scale, translate *v3.Vec
		want             pov.Box
	}{
		{"none", nil, nil, box},
		{
			"translate",
			nil, &v3.Vec{X: 1, Y: 1, Z: 1},
			pov.Box{Min: v3.Vec{X: 1, Y: 2, Z: 3}, Max: v3.Vec{X: 2, Y: 3, Z: 4}, Inverse: true},
		},
		{
			"mirror z",
			&v3.Vec{X: 2, Y: 1, Z: -1}, &v3.Vec{Z: 5},
			pov.Box{Min: v3.Vec{X: 0, Y: 1, Z: 2}, Max: v3.Vec{X: 2, Y: 2, Z: 3}, Inverse: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := placeBox(box, tt.scale, tt.translate); got != tt.want {
				t.Errorf("placeBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// 6. Rapid evaluation on one App.
// ---------------------------------------------------------------------------

func TestE2ERapidEvaluationAlternating(t *testing.T) {
	// Alternates between valid and invalid sources; the engine must recover
	// cleanly between error and success states.
	app := NewApp()
	field := ballField(t)

	sources := []string{
		fmt.Sprintf(`(volume %q) (levels 1)`, field),
		`(volume "broken"`,
		``,
		`(levels "x")`,
		fmt.Sprintf(`(volume %q) (levels 2) (colormap "plasma")`, field),
		`(+ 1 2)`,
		`;; just a comment`,
		`(undefined-func 1 2 3)`,
		fmt.Sprintf(`(volume %q) (levels 0.5 3)`, field),
	}
	wantOK := map[int]bool{0: true, 4: true, 8: true}

	for i, source := range sources {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("iteration %d panicked on source %q: %v", i, source, r)
				}
			}()
			result := app.Evaluate(source)
			if ok := len(result.Errors) == 0; ok != wantOK[i] {
				t.Errorf("iteration %d: errors = %v, want success %v", i, result.Errors, wantOK[i])
			}
		}()
	}
}

func TestE2EArithmeticLevels(t *testing.T) {
	source := fmt.Sprintf(`
(def base 0.5)
(volume %q)
(levels base (* base 2) (+ base 1.5))
`, ballField(t))
	result := NewApp().Evaluate(source)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	want := []float64{0.5, 1, 2}
	if len(result.Surfaces) != len(want) {
		t.Fatalf("got %d surfaces, want %d", len(result.Surfaces), len(want))
	}
	for i, s := range result.Surfaces {
		if s.Level != want[i] {
			t.Errorf("surface %d level = %g, want %g", i, s.Level, want[i])
		}
	}
}
