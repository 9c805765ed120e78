// Package types provides type definitions for the structured data exchanged
// between pipeline stages.
package types

// DocumentFormat identifies the source format of a converted document.
type DocumentFormat string

// Supported source document formats.
const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
	FormatDOC  DocumentFormat = "doc"
)

// Document is the plain-text result of converting a source file. It is
// immutable once produced by the conversion stage.
type Document struct {
	Text     string           `json:"text"`
	Format   DocumentFormat   `json:"format"`
	Metadata DocumentMetadata `json:"metadata"`
}

// DocumentMetadata carries conversion details useful for diagnostics.
type DocumentMetadata struct {
	SourcePath string `json:"source_path"`
	PageCount  int    `json:"page_count,omitempty"`
	TextLength int    `json:"text_length"`
	Extractor  string `json:"extractor"`
}
