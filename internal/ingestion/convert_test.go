package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-tailor/internal/errs"
)

func TestExtractFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	txtPath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("plain text resume"), 0644))

	markdownPath := filepath.Join(tmpDir, "resume.md")
	require.NoError(t, os.WriteFile(markdownPath, []byte("# resume"), 0644))

	tests := []struct {
		name        string
		path        string
		expectedTag errs.Tag
	}{
		{
			name:        "Missing file",
			path:        filepath.Join(tmpDir, "does_not_exist.pdf"),
			expectedTag: errs.TagFileNotFound,
		},
		{
			name:        "Plain text extension is not a document format",
			path:        txtPath,
			expectedTag: errs.TagUnsupportedFormat,
		},
		{
			name:        "Markdown extension is not a document format",
			path:        markdownPath,
			expectedTag: errs.TagUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ExtractFromFile(tt.path)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.Equal(t, tt.expectedTag, errs.TagOf(err))
		})
	}
}

func TestExtractFromFileRejectsCorruptPDF(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0644))

	doc, err := ExtractFromFile(path)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Equal(t, errs.TagMalformedInput, errs.TagOf(err))
}

func TestExtractFromFileRejectsCorruptDOCX(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))

	doc, err := ExtractFromFile(path)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Equal(t, errs.TagMalformedInput, errs.TagOf(err))
}

func TestReadJobText(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Senior Go Engineer\n\nRemote,   full time"), 0644))

	text, err := ReadJobText(path)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer Remote, full time", text)
}

func TestReadJobTextMissingFile(t *testing.T) {
	text, err := ReadJobText(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Empty(t, text)
	assert.Equal(t, errs.TagFileNotFound, errs.TagOf(err))
}
