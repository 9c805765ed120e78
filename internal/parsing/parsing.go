// Package parsing runs the job-parsing stage: job-description text in,
// structured JobRecord out.
package parsing

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

// Parser turns job-description text into a structured JobRecord.
type Parser struct {
	client  llm.Client
	timeout time.Duration
}

// New creates a Parser with the default stage timeout.
func New(client llm.Client) *Parser {
	return &Parser{client: client, timeout: defaultTimeout}
}

// Parse sends a job description to the model and decodes the structured
// reply.
func (p *Parser) Parse(ctx context.Context, jobText string) types.Envelope[types.JobRecord] {
	if jobText == "" {
		return types.Fail[types.JobRecord](errs.New(errs.TagEmptyOrTooShort, "job description is empty"), "")
	}

	system := prompts.MustGet("parsing.json", "parse-job-system")
	prompt := prompts.Format(prompts.MustGet("parsing.json", "parse-job"),
		map[string]string{"JobText": jobText})

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	reply, err := p.client.GenerateJSON(ctx, system, prompt, llm.TierExtraction)
	if err != nil {
		return types.Fail[types.JobRecord](err, "")
	}

	candidate, ok := llm.ExtractJSON(reply)
	if !ok {
		return types.Fail[types.JobRecord](
			errs.New(errs.TagNoJSONFound, "no JSON object found in model reply").WithRaw(reply), reply)
	}

	job, err := mapping.DecodeJob([]byte(candidate))
	if err != nil {
		return types.Fail[types.JobRecord](err, reply)
	}
	return types.Ok(job, reply)
}
