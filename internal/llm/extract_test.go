package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{
			name:     "Tagged fence surrounded by prose",
			input:    "Here is the data you asked for:\n```json\n{\"name\": \"Sarah\"}\n```\nLet me know if you need more.",
			expected: `{"name": "Sarah"}`,
			found:    true,
		},
		{
			name:     "Untagged fence holding an object",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
			found:    true,
		},
		{
			name:  "Untagged fence holding non-JSON falls back to braces",
			input: "```\nplain text\n```\nresult: {\"a\": 1}",
			// The fence content is not brace-delimited, so the brace scan wins.
			expected: `{"a": 1}`,
			found:    true,
		},
		{
			name:     "Bare object with no fences",
			input:    `{"job_title": "Engineer"}`,
			expected: `{"job_title": "Engineer"}`,
			found:    true,
		},
		{
			name:     "Object embedded in prose without fences",
			input:    "Sure! The extraction is {\"x\": {\"y\": 2}} as requested.",
			expected: `{"x": {"y": 2}}`,
			found:    true,
		},
		{
			name:  "Stray opening brace before the real object over-captures",
			input: "Note the set {a, b} matters here. {\"k\": 1}",
			// Documented heuristic: first '{' to last '}', no balancing.
			expected: `{a, b} matters here. {"k": 1}`,
			found:    true,
		},
		{
			name:  "Stray closing brace after the real object over-captures",
			input: "{\"k\": 1} and a trailing }",
			expected: `{"k": 1} and a trailing }`,
			found:    true,
		},
		{
			name:     "Tagged fence wins over earlier stray braces",
			input:    "braces {here} first\n```json\n{\"k\": 1}\n```",
			expected: `{"k": 1}`,
			found:    true,
		},
		{
			name:     "Only the first fenced block is considered",
			input:    "```json\n{\"first\": true}\n```\n```json\n{\"second\": true}\n```",
			expected: `{"first": true}`,
			found:    true,
		},
		{
			name:     "Unterminated tagged fence falls back to braces",
			input:    "```json\n{\"k\": 1}",
			expected: `{"k": 1}`,
			found:    true,
		},
		{
			name:  "No braces at all",
			input: "I could not find any structured data in the document.",
			found: false,
		},
		{
			name:  "Empty input",
			input: "",
			found: false,
		},
		{
			name:  "Whitespace only",
			input: "   \n\t  ",
			found: false,
		},
		{
			name:  "Closing brace before opening brace",
			input: "} nothing useful {",
			found: false,
		},
		{
			name:     "Nested braces preserved verbatim",
			input:    "```json\n{\"outer\": {\"inner\": [1, 2]}}\n```",
			expected: `{"outer": {"inner": [1, 2]}}`,
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestExtractJSONDoesNotGuaranteeParseability(t *testing.T) {
	// The extractor hands back a candidate; whether it parses is the
	// caller's problem. This input yields a candidate that is not JSON.
	got, ok := ExtractJSON("set {a, b, c} has three elements}")
	assert.True(t, ok)
	assert.Equal(t, "{a, b, c} has three elements}", got)
}
