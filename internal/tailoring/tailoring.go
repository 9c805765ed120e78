// Package tailoring runs the tailoring stage: a mapped résumé plus a
// parsed job in, a rewritten job-aligned résumé out.
package tailoring

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/mapping"
	"resume-tailor/internal/prompts"
	"resume-tailor/internal/types"
)

// Tailoring gets a longer deadline than the other stages; it produces the
// largest completion.
const defaultTimeout = 60 * time.Second

// Prompt caps keep the job context focused on the strongest signals.
const (
	maxRequiredSkills   = 15
	maxPreferredSkills  = 10
	maxResponsibilities = 5
)

// Tailor rewrites a résumé to align with a parsed job posting.
type Tailor struct {
	client  llm.Client
	timeout time.Duration
}

// New creates a Tailor with the default stage timeout.
func New(client llm.Client) *Tailor {
	return &Tailor{client: client, timeout: defaultTimeout}
}

// Run sends the résumé and job context to the model and decodes the
// tailored résumé from the reply. Defaults are applied to the result so
// renderers never see nil lists.
func (t *Tailor) Run(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord) types.Envelope[types.TailoredResume] {
	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return types.Fail[types.TailoredResume](errs.Wrap(errs.TagMalformedInput, "failed to encode resume", err), "")
	}

	system := prompts.MustGet("tailoring.json", "tailor-resume-system")
	prompt := prompts.Format(prompts.MustGet("tailoring.json", "tailor-resume"), map[string]string{
		"ResumeJSON":       string(resumeJSON),
		"JobTitle":         job.JobTitle,
		"RequiredSkills":   joinCapped(job.RequiredSkills, maxRequiredSkills, ", "),
		"PreferredSkills":  joinCapped(job.PreferredSkills, maxPreferredSkills, ", "),
		"Responsibilities": joinCapped(job.KeyResponsibilities, maxResponsibilities, "; "),
	})

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	reply, err := t.client.GenerateJSON(ctx, system, prompt, llm.TierTailoring)
	if err != nil {
		return types.Fail[types.TailoredResume](err, "")
	}

	candidate, ok := llm.ExtractJSON(reply)
	if !ok {
		return types.Fail[types.TailoredResume](
			errs.New(errs.TagNoJSONFound, "no JSON object found in model reply").WithRaw(reply), reply)
	}

	tailored, err := mapping.DecodeTailored([]byte(candidate))
	if err != nil {
		return types.Fail[types.TailoredResume](err, reply)
	}
	tailored.ApplyDefaults()
	return types.Ok(tailored, reply)
}

func joinCapped(items []string, max int, sep string) string {
	if len(items) > max {
		items = items[:max]
	}
	return strings.Join(items, sep)
}
