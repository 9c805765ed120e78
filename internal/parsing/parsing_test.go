package parsing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/llm"
)

type stubClient struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
	lastTier   llm.ModelTier
}

func (s *stubClient) GenerateJSON(_ context.Context, _, prompt string, tier llm.ModelTier) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	s.lastTier = tier
	return s.reply, s.err
}

func (s *stubClient) Close() error { return nil }

func TestParse(t *testing.T) {
	jobText := "Acme is hiring a Senior Backend Engineer. Go, PostgreSQL, Kubernetes. Remote."

	tests := []struct {
		name          string
		text          string
		reply         string
		clientErr     error
		expectedTag   errs.Tag
		expectedCalls int
	}{
		{
			name:          "Structured reply decodes into a job record",
			text:          jobText,
			reply:         "```json\n{\"job_title\": \"Senior Backend Engineer\", \"company_name\": \"Acme\", \"required_skills\": [\"Go\"]}\n```",
			expectedCalls: 1,
		},
		{
			name:          "Empty job text fails before any remote call",
			text:          "",
			expectedTag:   errs.TagEmptyOrTooShort,
			expectedCalls: 0,
		},
		{
			name:          "Transport failure passes through",
			text:          jobText,
			clientErr:     errs.New(errs.TagRemoteRequest, "chat completion request failed"),
			expectedTag:   errs.TagRemoteRequest,
			expectedCalls: 1,
		},
		{
			name:          "Reply that is a bare list",
			text:          jobText,
			reply:         `["Go", "PostgreSQL"]`,
			expectedTag:   errs.TagMalformedInput,
			expectedCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{reply: tt.reply, err: tt.clientErr}
			env := New(client).Parse(context.Background(), tt.text)

			assert.Equal(t, tt.expectedCalls, client.calls)
			if tt.expectedTag != "" {
				assert.False(t, env.Success)
				assert.Equal(t, tt.expectedTag, env.Tag())
				return
			}
			require.True(t, env.Success)
			require.NotNil(t, env.Data)
			assert.Equal(t, "Senior Backend Engineer", env.Data.JobTitle)
			assert.Equal(t, "Acme", env.Data.CompanyName)
		})
	}
}

func TestParsePromptCarriesJobText(t *testing.T) {
	client := &stubClient{reply: "{}"}
	env := New(client).Parse(context.Background(), "Hiring a Go engineer")

	require.True(t, env.Success)
	assert.Equal(t, llm.TierExtraction, client.lastTier)
	assert.True(t, strings.Contains(client.lastPrompt, "Hiring a Go engineer"))
}
