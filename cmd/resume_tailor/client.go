package main

import (
	"context"
	"os"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/llm"
)

// Environment variables holding provider credentials.
const (
	envGroqKey   = "GROQ_API_KEY"
	envGeminiKey = "GEMINI_API_KEY"
)

// resolveAPIKey returns the credential for a provider: an explicit value
// wins, then the provider's environment variable. An empty result is a
// MissingCredential error here, checked once before any pipeline work.
func resolveAPIKey(provider, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	envVar := envGroqKey
	if llm.Provider(provider) == llm.ProviderGemini {
		envVar = envGeminiKey
	}
	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}
	return "", errs.Newf(errs.TagMissingCredential, "no API key provided (set %s or pass --api-key)", envVar)
}

// newClient builds the chat-completion client for a provider.
func newClient(ctx context.Context, provider, apiKey string) (llm.Client, error) {
	return llm.NewClient(ctx, llm.ConfigForProvider(provider), apiKey)
}
