package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"format": "docx", "provider": "groq", "concurrency": 4, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "docx", cfg.Format)
	assert.Equal(t, "groq", cfg.Provider)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{"format": `))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.pdf")
	require.NoError(t, os.WriteFile(resumePath, []byte("x"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "Empty config is valid",
			cfg:  Config{},
		},
		{
			name: "Valid values pass",
			cfg:  Config{Format: "pdf", Provider: "gemini", Concurrency: 2, Resume: resumePath},
		},
		{
			name:    "Unknown format",
			cfg:     Config{Format: "html"},
			wantErr: true,
		},
		{
			name:    "Unknown provider",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "Concurrency out of range",
			cfg:     Config{Concurrency: 100},
			wantErr: true,
		},
		{
			name:    "Missing resume file",
			cfg:     Config{Resume: filepath.Join(tmpDir, "nope.pdf")},
			wantErr: true,
		},
		{
			name:    "Missing job file",
			cfg:     Config{Job: filepath.Join(tmpDir, "nope.txt")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Format: "pdf"}
	merged := cfg.MergeWithDefaults(Config{Format: "docx", Provider: "groq", Concurrency: 3, APIKey: "gsk_test"})

	assert.Equal(t, "pdf", merged.Format)
	assert.Equal(t, "groq", merged.Provider)
	assert.Equal(t, 3, merged.Concurrency)
	assert.Equal(t, "gsk_test", merged.APIKey)
}
