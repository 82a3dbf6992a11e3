package runner

import (
	"errors"
	"fmt"
)

// Output is what a ProcessFunc reports for one source file.
type Output struct {
	// Path is where the result was written.
	Path string

	// Written is false when the existing output already had this content.
	Written bool

	// Bytes is the size of the generated output.
	Bytes int64
}

// FileOutcome is the result of processing one source file.
type FileOutcome struct {
	// Path is the absolute source path.
	Path string

	// Rel is Path relative to the discovery root, slash-separated.
	Rel string

	// Output is set when processing succeeded.
	Output *Output

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// Discovered is the number of files found during discovery.
	Discovered int

	// Processed is the number of files processed without error.
	Processed int

	// Written is the number of outputs created or changed.
	Written int

	// Unchanged is the number of outputs left as they were.
	Unchanged int

	// Errored is the number of files that failed.
	Errored int

	// Bytes is the total size of generated output.
	Bytes int64
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per processed file, ordered by path.
	Files []FileOutcome

	// Stats aggregates Files.
	Stats Stats
}

// HasFailures reports whether any file failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.Errored > 0
}

// Failed returns the outcomes that carry an error.
func (r *Result) Failed() []FileOutcome {
	if r == nil {
		return nil
	}

	var failed []FileOutcome
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// Err joins the per-file errors, or returns nil.
func (r *Result) Err() error {
	var errs []error
	for _, outcome := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", outcome.Rel, outcome.Error))
	}
	return errors.Join(errs...)
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.Errored++
		return
	}

	r.Stats.Processed++

	if outcome.Output == nil {
		return
	}

	if outcome.Output.Written {
		r.Stats.Written++
	} else {
		r.Stats.Unchanged++
	}
	r.Stats.Bytes += outcome.Output.Bytes
}
