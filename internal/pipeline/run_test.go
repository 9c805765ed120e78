package pipeline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/rendering"
	"resume-tailor/internal/types"
)

const longResumeText = "Sarah Chen, Senior Backend Engineer. Eight years building Go services at Acme, Austin TX. sarah@example.com."

type fakeExtractor struct {
	env   types.Envelope[types.RawResume]
	calls int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) types.Envelope[types.RawResume] {
	f.calls++
	return f.env
}

type fakeParser struct {
	env   types.Envelope[types.JobRecord]
	calls int
}

func (f *fakeParser) Parse(_ context.Context, _ string) types.Envelope[types.JobRecord] {
	f.calls++
	return f.env
}

type fakeTailor struct {
	env   types.Envelope[types.TailoredResume]
	calls int
}

func (f *fakeTailor) Run(_ context.Context, _ *types.ResumeRecord, _ *types.JobRecord) types.Envelope[types.TailoredResume] {
	f.calls++
	return f.env
}

type fakeRenderer struct {
	err      error
	calls    int
	lastBase string
}

func (f *fakeRenderer) Render(_ context.Context, _ *types.TailoredResume, basePath string, format rendering.Format) (*rendering.Result, error) {
	f.calls++
	f.lastBase = basePath
	if f.err != nil {
		return nil, f.err
	}
	return &rendering.Result{OutputPath: basePath + "." + string(format), Format: format, FileSizeKB: 12.5}, nil
}

// happyPipeline wires fakes that succeed at every stage.
func happyPipeline() (*Pipeline, *fakeExtractor, *fakeParser, *fakeTailor, *fakeRenderer) {
	raw := &types.RawResume{
		PersonalDetails: types.RawPersonalDetails{Name: "Sarah Chen"},
		Summary:         "Backend engineer.",
	}
	job := &types.JobRecord{JobTitle: "Senior Backend Engineer", CompanyName: "Initech"}
	tailored := &types.TailoredResume{
		PersonalInfo:        types.PersonalInfo{Name: "Sarah Chen"},
		ProfessionalSummary: "Go engineer focused on payments.",
	}
	tailored.ApplyDefaults()

	extractor := &fakeExtractor{env: types.Ok(raw, "{}")}
	parser := &fakeParser{env: types.Ok(job, "{}")}
	tailor := &fakeTailor{env: types.Ok(tailored, "{}")}
	renderer := &fakeRenderer{}

	p := &Pipeline{
		Extractor: extractor,
		Parser:    parser,
		Tailor:    tailor,
		Renderer:  renderer,
		Convert: func(path string) (*types.Document, error) {
			return &types.Document{Text: longResumeText, Format: types.FormatPDF}, nil
		},
		ReadJob: func(path string) (string, error) {
			return "Senior Backend Engineer at Initech. Go, Postgres.", nil
		},
		Now: func() time.Time {
			return time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
		},
	}
	return p, extractor, parser, tailor, renderer
}

func defaultOpts() RunOptions {
	return RunOptions{
		ResumePath: "/in/sarah_chen.pdf",
		JobPath:    "/in/initech_backend.txt",
		Format:     rendering.FormatDOCX,
	}
}

func TestRunHappyPath(t *testing.T) {
	p, extractor, parser, tailor, renderer := happyPipeline()

	var stages []Stage
	opts := defaultOpts()
	opts.OnProgress = func(event ProgressEvent) { stages = append(stages, event.Stage) }

	result, err := p.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, StageDone, result.Stage)
	assert.Equal(t, "Sarah Chen", result.CandidateName)
	assert.Equal(t, "Senior Backend Engineer", result.JobTitle)
	assert.Equal(t, "Initech", result.CompanyName)
	assert.Equal(t, "sarah_chen_tailored_for_initech_backend_20260825_103000.docx", result.OutputPath)

	assert.Equal(t, 1, extractor.calls)
	assert.Equal(t, 1, parser.calls)
	assert.Equal(t, 1, tailor.calls)
	assert.Equal(t, 1, renderer.calls)

	assert.Equal(t, []Stage{
		StageValidating, StageExtractingResume, StageParsingJob,
		StageTailoring, StageRendering, StageDone,
	}, stages)
}

func TestRunHonorsExplicitOutputName(t *testing.T) {
	p, _, _, _, renderer := happyPipeline()

	opts := defaultOpts()
	opts.OutputName = "custom_name"
	opts.OutputDir = "/out"

	result, err := p.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "/out/custom_name", renderer.lastBase)
	assert.Equal(t, "/out/custom_name.docx", result.OutputPath)
}

func TestRunFailsFastOnConversionError(t *testing.T) {
	p, extractor, parser, tailor, renderer := happyPipeline()
	p.Convert = func(path string) (*types.Document, error) {
		return nil, errs.Newf(errs.TagFileNotFound, "file not found: %s", path)
	}

	result, err := p.Run(context.Background(), defaultOpts())
	require.Error(t, err)

	assert.Equal(t, StageFailed, result.Stage)
	assert.Equal(t, StageValidating, result.FailedStage)
	assert.Equal(t, errs.TagFileNotFound, errs.TagOf(err))

	// No remote or rendering work is attempted.
	assert.Zero(t, extractor.calls)
	assert.Zero(t, parser.calls)
	assert.Zero(t, tailor.calls)
	assert.Zero(t, renderer.calls)
}

func TestRunFailsFastOnShortText(t *testing.T) {
	p, extractor, _, _, _ := happyPipeline()
	p.Convert = func(path string) (*types.Document, error) {
		return &types.Document{Text: "too short", Format: types.FormatPDF}, nil
	}

	result, err := p.Run(context.Background(), defaultOpts())
	require.Error(t, err)

	assert.Equal(t, StageValidating, result.FailedStage)
	assert.Equal(t, errs.TagEmptyOrTooShort, errs.TagOf(err))
	assert.Zero(t, extractor.calls)
}

func TestRunFailsFastOnMissingJobFile(t *testing.T) {
	p, extractor, _, _, _ := happyPipeline()
	p.ReadJob = func(path string) (string, error) {
		return "", errs.Newf(errs.TagFileNotFound, "file not found: %s", path)
	}

	result, err := p.Run(context.Background(), defaultOpts())
	require.Error(t, err)

	assert.Equal(t, StageValidating, result.FailedStage)
	assert.Equal(t, errs.TagFileNotFound, errs.TagOf(err))
	assert.Zero(t, extractor.calls)
}

func TestRunStageFailuresCarryTheirTag(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Pipeline)
		expectedStage Stage
		expectedTag   errs.Tag
	}{
		{
			name: "Extraction timeout",
			mutate: func(p *Pipeline) {
				p.Extractor = &fakeExtractor{env: types.Fail[types.RawResume](
					errs.New(errs.TagRemoteTimeout, "chat completion request timed out"), "")}
			},
			expectedStage: StageExtractingResume,
			expectedTag:   errs.TagRemoteTimeout,
		},
		{
			name: "Job parsing reply without JSON",
			mutate: func(p *Pipeline) {
				p.Parser = &fakeParser{env: types.Fail[types.JobRecord](
					errs.New(errs.TagNoJSONFound, "no JSON object found in model reply"), "prose")}
			},
			expectedStage: StageParsingJob,
			expectedTag:   errs.TagNoJSONFound,
		},
		{
			name: "Tailoring invalid JSON",
			mutate: func(p *Pipeline) {
				p.Tailor = &fakeTailor{env: types.Fail[types.TailoredResume](
					errs.New(errs.TagInvalidJSON, "reply is not valid JSON"), "{oops")}
			},
			expectedStage: StageTailoring,
			expectedTag:   errs.TagInvalidJSON,
		},
		{
			name: "Rendering without pandoc",
			mutate: func(p *Pipeline) {
				p.Renderer = &fakeRenderer{err: errs.New(errs.TagToolchainNotFound, "pandoc not found in PATH")}
			},
			expectedStage: StageRendering,
			expectedTag:   errs.TagToolchainNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _, _, _ := happyPipeline()
			tt.mutate(p)

			result, err := p.Run(context.Background(), defaultOpts())
			require.Error(t, err)
			assert.Equal(t, StageFailed, result.Stage)
			assert.Equal(t, tt.expectedStage, result.FailedStage)
			assert.Equal(t, tt.expectedTag, errs.TagOf(err))
		})
	}
}

func TestRunLaterStagesNotCalledAfterFailure(t *testing.T) {
	p, _, parser, tailor, renderer := happyPipeline()
	p.Extractor = &fakeExtractor{env: types.Fail[types.RawResume](
		errs.New(errs.TagRemoteRequest, "chat completion request failed"), "")}

	_, err := p.Run(context.Background(), defaultOpts())
	require.Error(t, err)

	assert.Zero(t, parser.calls)
	assert.Zero(t, tailor.calls)
	assert.Zero(t, renderer.calls)
}

func TestRunSavesExtraction(t *testing.T) {
	p, _, _, _, _ := happyPipeline()

	opts := defaultOpts()
	opts.OutputDir = t.TempDir()
	opts.SaveExtraction = true

	var messages []string
	opts.OnProgress = func(event ProgressEvent) { messages = append(messages, event.Message) }

	_, err := p.Run(context.Background(), opts)
	require.NoError(t, err)

	expected := fmt.Sprintf("%s/sarah_chen_extracted_20260825_103000.json", opts.OutputDir)
	assert.Contains(t, messages, "saved extraction to "+expected)
	assert.FileExists(t, expected)
}
