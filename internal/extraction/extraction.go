// Package extraction runs the résumé-extraction stage: résumé text in,
// structured RawResume out.
package extraction

import (
	"context"
	"time"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/mapping"
	"resume-tailor/internal/prompts"
	"resume-tailor/internal/types"
)

const defaultTimeout = 30 * time.Second

// MinTextLength is the minimum number of characters of extracted text
// worth sending to the model. Anything shorter means document conversion
// almost certainly failed.
const MinTextLength = 50

// Extractor turns résumé text into a structured RawResume via the model.
type Extractor struct {
	client  llm.Client
	timeout time.Duration
}

// New creates an Extractor with the default stage timeout.
func New(client llm.Client) *Extractor {
	return &Extractor{client: client, timeout: defaultTimeout}
}

// Extract sends résumé text to the model and decodes the structured reply.
// The returned envelope carries the raw reply even on failure so callers
// can inspect what the model produced.
func (e *Extractor) Extract(ctx context.Context, resumeText string) types.Envelope[types.RawResume] {
	if len([]rune(resumeText)) < MinTextLength {
		return types.Fail[types.RawResume](errs.Newf(errs.TagEmptyOrTooShort,
			"extracted text is too short (%d chars, need at least %d)", len([]rune(resumeText)), MinTextLength), "")
	}

	system := prompts.MustGet("extraction.json", "extract-resume-system")
	prompt := prompts.Format(prompts.MustGet("extraction.json", "extract-resume"),
		map[string]string{"ResumeText": resumeText})

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	reply, err := e.client.GenerateJSON(ctx, system, prompt, llm.TierExtraction)
	if err != nil {
		return types.Fail[types.RawResume](err, "")
	}

	candidate, ok := llm.ExtractJSON(reply)
	if !ok {
		return types.Fail[types.RawResume](
			errs.New(errs.TagNoJSONFound, "no JSON object found in model reply").WithRaw(reply), reply)
	}

	raw, err := mapping.DecodeResume([]byte(candidate))
	if err != nil {
		return types.Fail[types.RawResume](err, reply)
	}
	return types.Ok(raw, reply)
}
