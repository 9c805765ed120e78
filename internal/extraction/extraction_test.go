package extraction

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

const sampleResumeText = "Sarah Chen, Senior Backend Engineer. Eight years building Go services at Acme. sarah@example.com, Austin TX."

func TestExtract(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		reply         string
		clientErr     error
		expectedTag   errs.Tag
		expectedCalls int
	}{
		{
			name:          "Fenced reply decodes into a raw resume",
			text:          sampleResumeText,
			reply:         "```json\n{\"personal_details\": {\"name\": \"Sarah Chen\"}, \"summary\": \"Engineer.\"}\n```",
			expectedCalls: 1,
		},
		{
			name:          "Short text fails before any remote call",
			text:          "too short",
			expectedTag:   errs.TagEmptyOrTooShort,
			expectedCalls: 0,
		},
		{
			name:          "Empty text fails before any remote call",
			text:          "",
			expectedTag:   errs.TagEmptyOrTooShort,
			expectedCalls: 0,
		},
		{
			name:          "Client error passes through with its tag",
			text:          sampleResumeText,
			clientErr:     errs.New(errs.TagRemoteTimeout, "chat completion request timed out"),
			expectedTag:   errs.TagRemoteTimeout,
			expectedCalls: 1,
		},
		{
			name:          "Reply without JSON",
			text:          sampleResumeText,
			reply:         "I was unable to find structured information.",
			expectedTag:   errs.TagNoJSONFound,
			expectedCalls: 1,
		},
		{
			name:          "Reply with unparseable candidate",
			text:          sampleResumeText,
			reply:         "{\"personal_details\": truncated}",
			expectedTag:   errs.TagInvalidJSON,
			expectedCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{reply: tt.reply, err: tt.clientErr}
			env := New(client).Extract(context.Background(), tt.text)

			assert.Equal(t, tt.expectedCalls, client.calls)
			if tt.expectedTag != "" {
				assert.False(t, env.Success)
				assert.Nil(t, env.Data)
				assert.Equal(t, tt.expectedTag, env.Tag())
				return
			}
			require.True(t, env.Success)
			require.NotNil(t, env.Data)
			assert.Equal(t, "Sarah Chen", env.Data.PersonalDetails.Name)
			assert.Equal(t, tt.reply, env.Raw)
		})
	}
}

func TestExtractPromptCarriesResumeText(t *testing.T) {
	client := &stubClient{reply: "```json\n{}\n```"}
	env := New(client).Extract(context.Background(), sampleResumeText)

	require.True(t, env.Success)
	assert.Equal(t, llm.TierExtraction, client.lastTier)
	assert.True(t, strings.Contains(client.lastPrompt, sampleResumeText))
	assert.False(t, strings.Contains(client.lastPrompt, "{{.ResumeText}}"))
}
