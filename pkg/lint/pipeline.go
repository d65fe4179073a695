package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-enry/go-enry/v2"

	"github.com/bsltools/bsllint/internal/logging"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates a parsing error.
	ErrParseFailure = errors.New("parse failure")
)

// PipelineResult contains the result of processing a single module file.
type PipelineResult struct {
	// UnitResult contains the diagnostics and rule errors, nil when the
	// file was skipped.
	*UnitResult

	// Path is the file path that was processed.
	Path string

	// Skipped is true if the file was skipped (e.g., binary content).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped: " + pr.SkipReason
	}
	if pr.UnitResult != nil && pr.HasIssues() {
		return "issues found"
	}
	return "ok"
}

// PipelineOptions controls pipeline behavior.
type PipelineOptions struct {
	// RetainTrees keeps parsed trees and token streams in memory after
	// analysis. By default they are released once diagnostics are
	// collected, keeping only content and line tables for reporting.
	RetainTrees bool
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{RetainTrees: false}
}

// Pipeline orchestrates the processing of a single module file.
type Pipeline struct {
	// Engine is the configured lint engine used for parsing and rule
	// execution.
	Engine *Engine
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile reads, parses, and analyzes a single module file.
//
// The pipeline performs the following steps:
//  1. Read the file, categorizing filesystem errors.
//  2. Skip binary content.
//  3. Parse and run the configured rules.
//  4. Release the tree and token stream unless RetainTrees is set.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return result, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		case errors.Is(err, os.ErrPermission):
			return result, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		default:
			return result, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if enry.IsBinary(content) {
		result.Skipped = true
		result.SkipReason = "binary content"
		logging.FromContext(ctx).Debug("skipping binary file", logging.FieldPath, path)
		return result, nil
	}

	unitResult, err := p.Engine.LintFile(ctx, path, content)
	if err != nil {
		if unitResult == nil {
			return result, fmt.Errorf("%w: %v", ErrParseFailure, err)
		}
		result.UnitResult = unitResult
		return result, err
	}
	result.UnitResult = unitResult

	if !opts.RetainTrees && unitResult.Unit != nil {
		unitResult.Unit.ReleaseTree()
	}

	return result, nil
}
