// Package pipeline provides the high-level orchestration for tailoring a
// résumé to a job posting.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/extraction"
	"resume-tailor/internal/ingestion"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/mapping"
	"resume-tailor/internal/parsing"
	"resume-tailor/internal/rendering"
	"resume-tailor/internal/schemas"
	"resume-tailor/internal/tailoring"
	"resume-tailor/internal/types"
)

// Stage identifies a pipeline state. The pipeline advances through the
// stages in order and moves to StageFailed from any of them on the first
// stage that reports failure; no stage is retried.
type Stage string

const (
	StageValidating       Stage = "validating"
	StageExtractingResume Stage = "extracting_resume"
	StageParsingJob       Stage = "parsing_job"
	StageTailoring        Stage = "tailoring"
	StageRendering        Stage = "rendering"
	StageDone             Stage = "done"
	StageFailed           Stage = "failed"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// ResumeExtractor is the résumé-extraction stage collaborator.
type ResumeExtractor interface {
	Extract(ctx context.Context, resumeText string) types.Envelope[types.RawResume]
}

// JobParser is the job-parsing stage collaborator.
type JobParser interface {
	Parse(ctx context.Context, jobText string) types.Envelope[types.JobRecord]
}

// ResumeTailor is the tailoring stage collaborator.
type ResumeTailor interface {
	Run(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord) types.Envelope[types.TailoredResume]
}

// DocumentRenderer is the rendering stage collaborator.
type DocumentRenderer interface {
	Render(ctx context.Context, resume *types.TailoredResume, basePath string, format rendering.Format) (*rendering.Result, error)
}

// Pipeline holds the stage collaborators. Fields are exported so tests can
// swap in fakes; New wires the real implementations.
type Pipeline struct {
	Extractor ResumeExtractor
	Parser    JobParser
	Tailor    ResumeTailor
	Renderer  DocumentRenderer

	// Local document handling, injectable for the same reason.
	Convert func(path string) (*types.Document, error)
	ReadJob func(path string) (string, error)

	// Now stamps output filenames.
	Now func() time.Time
}

// New creates a Pipeline wired to the real stages behind the given client.
func New(client llm.Client) *Pipeline {
	return &Pipeline{
		Extractor: extraction.New(client),
		Parser:    parsing.New(client),
		Tailor:    tailoring.New(client),
		Renderer:  rendering.NewRenderer(),
		Convert:   ingestion.ExtractFromFile,
		ReadJob:   ingestion.ReadJobText,
		Now:       time.Now,
	}
}

// RunOptions holds configuration for a single pipeline run.
type RunOptions struct {
	ResumePath     string
	JobPath        string
	OutputName     string // without extension; derived from inputs when empty
	OutputDir      string
	Format         rendering.Format
	SaveExtraction bool // persist the raw extraction next to the outputs
	OnProgress     ProgressCallback
}

// Result is the outcome of a pipeline run. On failure FailedStage and Err
// identify the first stage that failed; no later stage was attempted.
type Result struct {
	Stage         Stage
	OutputPath    string
	CandidateName string
	JobTitle      string
	CompanyName   string
	Resume        *types.ResumeRecord
	Job           *types.JobRecord
	Tailored      *types.TailoredResume
	Render        *rendering.Result
	Warnings      []schemas.Warning

	FailedStage Stage
	Err         error
}

// Run executes the pipeline for one résumé/job combination. The returned
// error is the first failing stage's error, tagged per the errs taxonomy;
// the Result always reports which stage that was.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	result := &Result{Stage: StageValidating}

	fail := func(stage Stage, err error) (*Result, error) {
		result.Stage = StageFailed
		result.FailedStage = stage
		result.Err = err
		p.emit(opts, StageFailed, fmt.Sprintf("%s failed: %v", stage, err), nil)
		return result, err
	}

	// Validating: both inputs are read locally before any remote call.
	p.emit(opts, StageValidating, "reading input documents", nil)
	doc, err := p.Convert(opts.ResumePath)
	if err != nil {
		return fail(StageValidating, err)
	}
	jobText, err := p.ReadJob(opts.JobPath)
	if err != nil {
		return fail(StageValidating, err)
	}
	if len([]rune(doc.Text)) < extraction.MinTextLength {
		return fail(StageValidating, errs.Newf(errs.TagEmptyOrTooShort,
			"extracted text is too short (%d chars, need at least %d)", len([]rune(doc.Text)), extraction.MinTextLength))
	}

	// Extracting.
	result.Stage = StageExtractingResume
	p.emit(opts, StageExtractingResume, "extracting structured data from resume", nil)
	extractionEnv := p.Extractor.Extract(ctx, doc.Text)
	if !extractionEnv.Success {
		return fail(StageExtractingResume, extractionEnv.Err)
	}
	if opts.SaveExtraction {
		p.saveExtraction(opts, extractionEnv.Data)
	}
	result.Resume = mapping.MapResume(extractionEnv.Data)
	result.CandidateName = result.Resume.PersonalInfo.Name

	// Parsing.
	result.Stage = StageParsingJob
	p.emit(opts, StageParsingJob, "parsing job description", nil)
	jobEnv := p.Parser.Parse(ctx, jobText)
	if !jobEnv.Success {
		return fail(StageParsingJob, jobEnv.Err)
	}
	result.Job = mapping.MapJob(jobEnv.Data)
	result.JobTitle = result.Job.JobTitle
	result.CompanyName = result.Job.CompanyName

	// Tailoring.
	result.Stage = StageTailoring
	p.emit(opts, StageTailoring, "tailoring resume to the job", nil)
	tailoredEnv := p.Tailor.Run(ctx, result.Resume, result.Job)
	if !tailoredEnv.Success {
		return fail(StageTailoring, tailoredEnv.Err)
	}
	result.Tailored = tailoredEnv.Data
	if warnings, err := schemas.ValidateTailored(result.Tailored); err == nil {
		result.Warnings = warnings
	}

	// Rendering.
	result.Stage = StageRendering
	basePath := filepath.Join(opts.OutputDir, p.outputName(opts))
	p.emit(opts, StageRendering, fmt.Sprintf("writing %s output", opts.Format), nil)
	renderResult, err := p.Renderer.Render(ctx, result.Tailored, basePath, opts.Format)
	if err != nil {
		return fail(StageRendering, err)
	}
	result.Render = renderResult
	result.OutputPath = renderResult.OutputPath

	result.Stage = StageDone
	p.emit(opts, StageDone, fmt.Sprintf("wrote %s", result.OutputPath), nil)
	return result, nil
}

// outputName derives the output base name when none was given:
// {resume}_tailored_for_{job}_{timestamp}.
func (p *Pipeline) outputName(opts RunOptions) string {
	if opts.OutputName != "" {
		return opts.OutputName
	}
	return fmt.Sprintf("%s_tailored_for_%s_%s",
		stem(opts.ResumePath), stem(opts.JobPath), p.Now().Format("20060102_150405"))
}

// saveExtraction persists the raw extraction as {resume}_extracted_{ts}.json.
// Best effort: a persistence failure never fails the run.
func (p *Pipeline) saveExtraction(opts RunOptions, raw *types.RawResume) {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return
	}
	name := fmt.Sprintf("%s_extracted_%s.json", stem(opts.ResumePath), p.Now().Format("20060102_150405"))
	path := filepath.Join(opts.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		p.emit(opts, StageExtractingResume, fmt.Sprintf("could not save extraction to %s: %v", path, err), nil)
		return
	}
	p.emit(opts, StageExtractingResume, fmt.Sprintf("saved extraction to %s", path), nil)
}

func (p *Pipeline) emit(opts RunOptions, stage Stage, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Stage: stage, Message: message, Content: content})
	}
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
