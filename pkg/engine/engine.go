// Package engine evaluates isosurface job scripts. A script is a small Lisp
// program run by zygomys in a fresh sandbox; its builtins fill in a
// job.Job, which the caller validates and runs.
package engine

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chazu/isopov/pkg/job"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError is a problem in the script itself: a parse error, an unknown
// symbol, or a builtin called with bad arguments.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates job scripts. It is safe for concurrent use; every call
// to Evaluate gets its own sandbox.
type Engine struct {
	timeout time.Duration

	mu         sync.Mutex
	generation uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout limits each evaluation to d. Values of zero or less keep
// DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewEngine creates a new Engine instance.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs source and returns the job it describes, starting from
// job.Default.
//
//   - On success: job, nil, nil
//   - On a script error: nil, eval errors, nil
//   - On timeout, panic or a superseded run: nil, nil, error
func (e *Engine) Evaluate(source string) (*job.Job, []EvalError, error) {
	return e.EvaluateContext(context.Background(), source)
}

// EvaluateContext is Evaluate that also gives up when ctx ends.
func (e *Engine) EvaluateContext(ctx context.Context, source string) (*job.Job, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("engine: panic during evaluation: %v", r)}
			}
		}()

		j, evalErrs, err := e.evaluate(source)
		ch <- evalResult{job: j, errors: evalErrs, err: err}
	}()

	return e.await(ctx, ch, gen)
}

func (e *Engine) evaluate(source string) (*job.Job, []EvalError, error) {
	j := job.Default()
	if strings.TrimSpace(source) == "" {
		return j, nil, nil
	}

	// The sandbox has no filesystem or syscall access; field files are read
	// later by the application, not by the script.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, j)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}
	return j, nil, nil
}

// zygomys reports parse errors as "Error on line N: ..." and some runtime
// errors as "line N: ...".
var (
	linePattern      = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
	linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)
)

// parseZygomysError turns a zygomys error into EvalErrors, keeping the line
// number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	for _, p := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := p.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
