// Command isopov extracts isosurfaces from a volumetric scalar field and
// writes them as a POV-Ray mesh2 fragment for #include in a scene.
//
// The job is a JSON file or a Lisp script:
//
//	isopov -job shells.json
//	isopov -job shells.lisp -o shells.inc -stl shells.stl -workers 8
//
// Field paths in a job are relative to the job file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chazu/isopov/pkg/engine"
	"github.com/chazu/isopov/pkg/job"
	"github.com/unixpickle/essentials"
)

func main() {
	var jobPath, outputPath, stlPath string
	var workers int
	var timeout time.Duration
	flag.StringVar(&jobPath, "job", "", "job file (.json or .lisp)")
	flag.StringVar(&outputPath, "o", "", "fragment output file (overrides the job)")
	flag.StringVar(&stlPath, "stl", "", "STL output file (overrides the job)")
	flag.IntVar(&workers, "workers", 0, "extraction workers (overrides the job)")
	flag.DurationVar(&timeout, "timeout", engine.DefaultTimeout, "limit on evaluating a .lisp job")
	flag.Parse()

	if jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	app := NewApp()
	app.engine = engine.NewEngine(engine.WithTimeout(timeout))
	j, err := readJob(app, jobPath)
	essentials.Must(err)

	if outputPath != "" {
		j.Output = outputPath
	}
	if stlPath != "" {
		j.STL = stlPath
	}
	if workers > 0 {
		j.Workers = workers
	}

	if err := app.Run(j); err != nil {
		log.Fatal(err)
	}
}

// readJob loads a JSON job or evaluates a script, by file extension.
func readJob(app *App, path string) (*job.Job, error) {
	if !strings.EqualFold(filepath.Ext(path), ".lisp") {
		return job.Load(path)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	j, evalErrs, err := app.engine.Evaluate(string(source))
	if err != nil {
		return nil, err
	}
	if len(evalErrs) > 0 {
		msgs := make([]string, len(evalErrs))
		for i, e := range evalErrs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("%s: %s", path, strings.Join(msgs, "; "))
	}
	j.ResolvePaths(filepath.Dir(path))
	return j, nil
}
