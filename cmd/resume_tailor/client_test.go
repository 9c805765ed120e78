package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-tailor/internal/errs"
)

func TestResolveAPIKey(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		explicit  string
		groqEnv   string
		geminiEnv string
		want      string
		wantTag   errs.Tag
	}{
		{
			name:     "explicit key wins over environment",
			provider: "groq",
			explicit: "flag-key",
			groqEnv:  "env-key",
			want:     "flag-key",
		},
		{
			name:     "groq falls back to GROQ_API_KEY",
			provider: "groq",
			groqEnv:  "env-key",
			want:     "env-key",
		},
		{
			name:      "gemini reads GEMINI_API_KEY",
			provider:  "gemini",
			groqEnv:   "wrong-key",
			geminiEnv: "gemini-key",
			want:      "gemini-key",
		},
		{
			name:     "missing key is a credential error",
			provider: "groq",
			wantTag:  errs.TagMissingCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envGroqKey, tt.groqEnv)
			t.Setenv(envGeminiKey, tt.geminiEnv)

			key, err := resolveAPIKey(tt.provider, tt.explicit)
			if tt.wantTag != "" {
				assert.Equal(t, tt.wantTag, errs.TagOf(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "Backend Engineer", safeFilename("Backend Engineer", "job"))
	assert.Equal(t, "Initech  Co", safeFilename("Initech & Co.!", "company"))
	assert.Equal(t, "job", safeFilename("???", "job"))
	assert.Equal(t, "company", safeFilename("", "company"))
}
