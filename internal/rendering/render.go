// Package rendering writes a tailored résumé to disk as a DOCX or PDF
// document.
package rendering

import (
	"context"
	"fmt"
	"os"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/types"
)

// Format is an output document format.
type Format string

// Supported output formats.
const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// ParseFormat validates a format name from the CLI.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatDOCX, FormatPDF:
		return Format(s), nil
	default:
		return "", errs.Newf(errs.TagUnsupportedFormat, "unsupported output format %q (supported: docx, pdf)", s)
	}
}

// Result describes a written output document.
type Result struct {
	OutputPath string  `json:"output_path"`
	Format     Format  `json:"format"`
	FileSizeKB float64 `json:"file_size_kb"`
}

// Renderer writes tailored résumés to disk.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes resume to basePath plus the format's extension.
func (r *Renderer) Render(ctx context.Context, resume *types.TailoredResume, basePath string, format Format) (*Result, error) {
	switch format {
	case FormatPDF:
		return r.renderPDF(ctx, resume, basePath+".pdf")
	case FormatDOCX:
		return r.renderDOCX(resume, basePath+".docx")
	default:
		return nil, errs.Newf(errs.TagUnsupportedFormat, "unsupported output format %q", format)
	}
}

// fileResult stats the written file and fills in the size.
func fileResult(path string, format Format) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errs.Wrap(errs.TagFileNotFound, fmt.Sprintf("output file was not written: %s", path), err)
	}
	return &Result{
		OutputPath: path,
		Format:     format,
		FileSizeKB: float64(info.Size()) / 1024,
	}, nil
}
