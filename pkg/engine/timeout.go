package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/chazu/isopov/pkg/job"
	"github.com/pkg/errors"
)

// DefaultTimeout bounds a single script evaluation unless WithTimeout says
// otherwise.
const DefaultTimeout = 5 * time.Second

// ErrSuperseded is returned by an evaluation that finished after a newer
// one on the same Engine had started.
var ErrSuperseded = errors.New("engine: evaluation superseded by newer request")

// TimeoutError reports a script that ran past the engine's limit. The
// interpreter goroutine cannot be stopped and is left to finish on its own.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("engine: evaluation timed out after %s", e.After)
}

type evalResult struct {
	job    *job.Job
	errors []EvalError
	err    error
}

// await blocks until the evaluation of generation gen reports on ch, the
// engine's timeout passes, or ctx ends.
func (e *Engine) await(ctx context.Context, ch <-chan evalResult, gen uint64) (*job.Job, []EvalError, error) {
	timer := time.NewTimer(e.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if !e.current(gen) {
			return nil, nil, ErrSuperseded
		}
		return res.job, res.errors, res.err
	case <-timer.C:
		return nil, nil, &TimeoutError{After: e.timeout}
	case <-ctx.Done():
		return nil, nil, errors.Wrap(ctx.Err(), "engine: evaluation abandoned")
	}
}

func (e *Engine) current(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return gen == e.generation
}
