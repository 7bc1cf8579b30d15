// SPDX-License-Identifier: MIT

// Package batch fits many coordination polyhedra concurrently.
//
// Each job is one polyhedron, read from a file or supplied in memory. A fixed
// pool of workers runs the fits; results come back in job order whatever the
// completion order, and one failing job never aborts the others.
package batch

import (
	"context"
	"errors"
	"io"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/polyhedra/ellipsoid"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

// ErrNoSource is recorded for a job with neither a Path nor a Polyhedron.
var ErrNoSource = errors.New("batch: job has no path and no polyhedron")

const panicWorkersInvalid = "batch: WithWorkers: workers must be >= 1"

// Job identifies one polyhedron to fit. When Polyhedron is nil it is read
// from Path.
type Job struct {
	ID         string
	Path       string
	Polyhedron *polyhedron.Polyhedron
}

// Result is the outcome of one Job. Exactly one of Err and Ellipsoid is set.
type Result struct {
	Job        Job
	Polyhedron *polyhedron.Polyhedron
	Ellipsoid  *ellipsoid.Ellipsoid
	Err        error
	Elapsed    time.Duration
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
	logger  *log.Logger
	fit     []ellipsoid.Option
}

// WithWorkers sets the pool size (default runtime.NumCPU()).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithLogger routes per-job progress lines to l. nil discards them.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithFitOptions sets the options of every fit.
func WithFitOptions(opts ...ellipsoid.Option) Option {
	return func(o *options) { o.fit = opts }
}

func gatherOptions(user ...Option) options {
	o := options{workers: runtime.NumCPU()}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}

	return o
}

// Run fits every job and returns one Result per job, in job order.
//
// Cancelling ctx stops dispatch: jobs not yet started get ctx.Err() as their
// error, jobs already running finish.
func Run(ctx context.Context, jobs []Job, opts ...Option) []Result {
	o := gatherOptions(opts...)
	results := make([]Result, len(jobs))
	for i, j := range jobs {
		results[i].Job = j
	}

	workers := o.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	queue := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range queue {
				results[i] = runJob(jobs[i], o)
			}
		}()
	}

	next := 0
dispatch:
	for ; next < len(jobs); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case queue <- next:
		}
	}
	close(queue)
	wg.Wait()

	for i := next; i < len(jobs); i++ {
		results[i].Err = ctx.Err()
		o.logger.Printf("%s: skipped: %v", jobName(jobs[i]), ctx.Err())
	}

	return results
}

func runJob(j Job, o options) Result {
	start := time.Now()
	res := Result{Job: j, Polyhedron: j.Polyhedron}

	if res.Polyhedron == nil {
		if j.Path == "" {
			res.Err = ErrNoSource
			o.logger.Printf("%s: %v", jobName(j), res.Err)

			return res
		}
		res.Polyhedron, res.Err = polyhedron.ReadFile(j.Path)
		if res.Err != nil {
			o.logger.Printf("%s: read failed: %v", jobName(j), res.Err)

			return res
		}
	}

	res.Ellipsoid, res.Err = res.Polyhedron.FitEllipsoid(o.fit...)
	res.Elapsed = time.Since(start)
	switch {
	case res.Err != nil:
		o.logger.Printf("%s: fit failed: %v", jobName(j), res.Err)
	case !res.Ellipsoid.Converged():
		o.logger.Printf("%s: iteration cap reached, residual %g after %d iterations",
			jobName(j), res.Ellipsoid.Tolerance(), res.Ellipsoid.Iterations())
	default:
		o.logger.Printf("%s: fitted %d-D ellipsoid in %s", jobName(j), res.Ellipsoid.Dims(), res.Elapsed)
	}

	return res
}

func jobName(j Job) string {
	if j.ID != "" {
		return j.ID
	}
	if j.Path != "" {
		return j.Path
	}

	return "<unnamed>"
}
