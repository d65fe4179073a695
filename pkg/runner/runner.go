package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bsltools/bsllint/internal/logging"
	"github.com/bsltools/bsllint/pkg/lint"
)

// Runner orchestrates multi-module analysis using a lint.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in discovery (path) order regardless of which worker
// finished first, so repeated runs over the same tree produce identical
// output.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	logging.FromContext(ctx).Debug("starting analysis",
		logging.FieldModulesDiscovered, len(files),
		logging.FieldJobs, jobs)

	pipelineOpts := lint.DefaultPipelineOptions()
	if opts.Config != nil {
		pipelineOpts.RetainTrees = opts.Config.RetainTrees
	}

	// Each file writes its outcome into its own slot, so no ordering work is
	// needed after the group finishes.
	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			outcome := FileOutcome{Path: path}
			pr, err := r.Pipeline.ProcessFile(groupCtx, path, pipelineOpts)
			if err != nil {
				outcome.Error = err
			} else {
				outcome.Result = pr
			}
			outcomes[i] = outcome
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	return result, nil
}
