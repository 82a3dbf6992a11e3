package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Source is a discovered file handed to a ProcessFunc.
type Source struct {
	// Path is the absolute path of the file.
	Path string

	// Rel is Path relative to the discovery root, slash-separated.
	Rel string
}

// ProcessFunc handles one source file. It is called concurrently.
type ProcessFunc func(ctx context.Context, src Source) (*Output, error)

// Runner discovers sources and processes them concurrently.
type Runner struct {
	process ProcessFunc
}

// New creates a Runner that hands every discovered file to process.
func New(process ProcessFunc) *Runner {
	return &Runner{process: process}
}

// Run discovers files under opts.Root and processes them on a worker pool.
// A failing file does not stop the run; its error is recorded in the result.
// Outcomes are ordered by path.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	sources, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	return r.RunSources(ctx, sources, opts.Jobs)
}

// RunSources processes already discovered sources.
func (r *Runner) RunSources(ctx context.Context, sources []Source, jobs int) (*Result, error) {
	result := &Result{
		Files: make([]FileOutcome, 0, len(sources)),
	}
	result.Stats.Discovered = len(sources)

	if len(sources) == 0 {
		return result, nil
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(sources) {
		jobs = len(sources)
	}

	workCh := make(chan Source)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, src := range sources {
			select {
			case <-ctx.Done():
				return
			case workCh <- src:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order.
	outcomes := make(map[string]FileOutcome, len(sources))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, src := range sources {
		if outcome, ok := outcomes[src.Path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan Source, outCh chan<- FileOutcome) {
	for src := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: src.Path, Rel: src.Rel}

		out, err := r.process(ctx, src)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Output = out
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
