// Package batch detects the language of many text files concurrently.
package batch

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/MeKo-Tech/langid/detect"
	"github.com/MeKo-Tech/langid/internal/common"
)

// Config holds batch processing settings.
type Config struct {
	// Workers bounds concurrent file processing; 0 means number of CPUs.
	Workers int

	// Recursive descends into directories given as inputs.
	Recursive bool

	// IncludePatterns/ExcludePatterns filter discovered files by base name.
	// An empty include list accepts every file.
	IncludePatterns []string
	ExcludePatterns []string
}

// FileResult is the detection outcome for one input file.
type FileResult struct {
	Path        string                   `json:"path"`
	Language    string                   `json:"language"`
	Code        string                   `json:"code,omitempty"`
	Confidences []detect.ConfidenceValue `json:"confidences,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

// Result holds the outcome of a batch run.
type Result struct {
	Files []FileResult `json:"files"`
}

// Process detects the language of every input file. Inputs may be files or
// directories; directories are expanded through the configured discovery
// filters. Results are in input order regardless of completion order. File
// read failures are recorded per file and do not abort the batch; ctx
// cancellation does.
func Process(ctx context.Context, detector *detect.Detector, inputs []string, config Config) (*Result, error) {
	paths, err := discoverTextFiles(inputs, config.Recursive, config.IncludePatterns, config.ExcludePatterns)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files found")
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	timer := common.NewNamedTimer("batch")
	defer timer.StopAndLog()

	results := make([]FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = processFile(detector, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Files: results}, nil
}

func processFile(detector *detect.Detector, path string) FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Error: err.Error()}
	}

	text := string(data)
	detected := detector.Detect(text)
	return FileResult{
		Path:        path,
		Language:    detected.String(),
		Code:        detected.Code(),
		Confidences: detector.ConfidenceValues(text),
	}
}
