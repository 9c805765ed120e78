// Package batch runs the pipeline over every résumé/job combination and
// collects per-combination outcomes into a report.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/pipeline"
	"resume-tailor/internal/rendering"
)

// Outcome classifies a single combination. Failed means the pipeline
// reported a recognized tagged error; Exception means something escaped the
// pipeline's own handling and is the broader, unexpected category.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailed    Outcome = "failed"
	OutcomeException Outcome = "exception"
)

// PipelineRunner runs one résumé/job combination. *pipeline.Pipeline
// satisfies it; tests substitute fakes.
type PipelineRunner interface {
	Run(ctx context.Context, opts pipeline.RunOptions) (*pipeline.Result, error)
}

// Options configures a batch run.
type Options struct {
	ResumePaths []string
	JobPaths    []string
	OutputDir   string
	Format      rendering.Format

	// Concurrency bounds the worker pool. Zero or one keeps the runner
	// strictly sequential, which is the default.
	Concurrency int

	SaveExtraction bool

	// OnResult is called as each combination finishes, in completion
	// order. It must be safe for concurrent use when Concurrency > 1.
	OnResult func(CombinationResult)
}

// CombinationResult is the outcome of one résumé/job combination.
type CombinationResult struct {
	Index         int
	ResumePath    string
	JobPath       string
	Outcome       Outcome
	OutputPath    string
	CandidateName string
	JobTitle      string
	CompanyName   string
	FailedStage   pipeline.Stage
	Tag           errs.Tag
	Error         string
}

// Summary holds the outcome counts for a batch run.
type Summary struct {
	Total     int
	Success   int
	Failed    int
	Exception int
}

// Report is the full result of a batch run. Results are ordered by the
// sorted résumé list with the sorted job list as the inner loop, regardless
// of completion order.
type Report struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	OutputDir  string
	Results    []CombinationResult
	Summary    Summary
}

// Runner executes batches.
type Runner struct {
	Pipeline PipelineRunner
	Now      func() time.Time
	NewID    func() string
}

// NewRunner creates a Runner around a pipeline.
func NewRunner(p PipelineRunner) *Runner {
	return &Runner{
		Pipeline: p,
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

// Run processes every combination. Combinations are independent: a failure
// in one never aborts the rest, and the returned error covers only invalid
// batch input.
func (r *Runner) Run(ctx context.Context, opts Options) (*Report, error) {
	if len(opts.ResumePaths) == 0 {
		return nil, errs.New(errs.TagFileNotFound, "no resume files to process")
	}
	if len(opts.JobPaths) == 0 {
		return nil, errs.New(errs.TagFileNotFound, "no job files to process")
	}
	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, errs.Wrap(errs.TagFileNotFound,
				fmt.Sprintf("failed to create output directory: %s", opts.OutputDir), err)
		}
	}

	resumes := sortedCopy(opts.ResumePaths)
	jobs := sortedCopy(opts.JobPaths)

	report := &Report{
		RunID:     r.NewID(),
		StartedAt: r.Now(),
		OutputDir: opts.OutputDir,
		Results:   make([]CombinationResult, len(resumes)*len(jobs)),
	}

	var group errgroup.Group
	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}
	group.SetLimit(limit)

	for i, resumePath := range resumes {
		for j, jobPath := range jobs {
			index := i*len(jobs) + j
			resumePath, jobPath := resumePath, jobPath
			group.Go(func() error {
				result := r.runOne(ctx, resumePath, jobPath, opts)
				result.Index = index
				report.Results[index] = result
				if opts.OnResult != nil {
					opts.OnResult(result)
				}
				return nil
			})
		}
	}
	// Workers never return errors; outcomes are recorded per combination.
	_ = group.Wait()

	report.FinishedAt = r.Now()
	for _, result := range report.Results {
		report.Summary.Total++
		switch result.Outcome {
		case OutcomeSuccess:
			report.Summary.Success++
		case OutcomeFailed:
			report.Summary.Failed++
		default:
			report.Summary.Exception++
		}
	}
	return report, nil
}

// runOne executes a single combination. A panic escaping the pipeline is
// recovered into an exception outcome so the rest of the batch proceeds.
func (r *Runner) runOne(ctx context.Context, resumePath, jobPath string, opts Options) (result CombinationResult) {
	result = CombinationResult{ResumePath: resumePath, JobPath: jobPath}
	defer func() {
		if rec := recover(); rec != nil {
			result.Outcome = OutcomeException
			result.Error = fmt.Sprintf("panic: %v", rec)
		}
	}()

	outputName := fmt.Sprintf("%s_for_%s_%s",
		stem(resumePath), stem(jobPath), r.Now().Format("20060102_150405"))

	runResult, err := r.Pipeline.Run(ctx, pipeline.RunOptions{
		ResumePath:     resumePath,
		JobPath:        jobPath,
		OutputName:     outputName,
		OutputDir:      opts.OutputDir,
		Format:         opts.Format,
		SaveExtraction: opts.SaveExtraction,
	})
	if err != nil {
		if runResult != nil {
			result.FailedStage = runResult.FailedStage
		}
		result.Error = err.Error()
		if errs.IsTagged(err) {
			result.Outcome = OutcomeFailed
			result.Tag = errs.TagOf(err)
		} else {
			result.Outcome = OutcomeException
		}
		return result
	}

	result.Outcome = OutcomeSuccess
	result.OutputPath = runResult.OutputPath
	result.CandidateName = runResult.CandidateName
	result.JobTitle = runResult.JobTitle
	result.CompanyName = runResult.CompanyName
	return result
}

// FindFiles returns the files in dir carrying one of the extensions,
// sorted by path. A missing directory yields an empty list.
func FindFiles(dir string, extensions []string) []string {
	var files []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return files
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range extensions {
			if ext == want {
				files = append(files, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}
	sort.Strings(files)
	return files
}

func sortedCopy(paths []string) []string {
	out := append([]string{}, paths...)
	sort.Strings(out)
	return out
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
