// Package ingestion turns résumé documents and job-description files into
// clean plain text ready for the remote extraction stages.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/types"
)

// ExtractFromFile extracts plain text from a résumé document. Only .pdf,
// .docx, and .doc are recognized; a missing file and an unrecognized
// extension carry distinct error tags so callers can hint differently.
func ExtractFromFile(path string) (*types.Document, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Newf(errs.TagFileNotFound, "file not found: %s", path)
		}
		return nil, errs.Wrap(errs.TagFileNotFound, fmt.Sprintf("cannot access file: %s", path), err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	case ".doc":
		return extractDoc(path)
	default:
		return nil, errs.Newf(errs.TagUnsupportedFormat,
			"unsupported file format %q (supported: .pdf, .docx, .doc)", ext)
	}
}

func extractPDF(path string) (*types.Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.TagMalformedInput, fmt.Sprintf("failed to open PDF: %s", path), err)
	}
	defer f.Close()

	var builder strings.Builder
	pageCount := reader.NumPage()
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Pages that fail to decode are skipped; the length check
		// downstream catches a document that yielded nothing.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n\n")
	}

	cleaned := CleanPDFText(builder.String())
	return &types.Document{
		Text:   cleaned,
		Format: types.FormatPDF,
		Metadata: types.DocumentMetadata{
			SourcePath: path,
			PageCount:  pageCount,
			TextLength: len(cleaned),
			Extractor:  "ledongthuc/pdf",
		},
	}, nil
}

func extractDOCX(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.TagFileNotFound, fmt.Sprintf("failed to read file: %s", path), err)
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errs.Wrap(errs.TagMalformedInput, fmt.Sprintf("failed to parse DOCX: %s", path), err)
	}
	defer doc.Close()

	cleaned := CleanDOCXText(flattenDocumentXML(doc.Editable().GetContent()))
	return &types.Document{
		Text:   cleaned,
		Format: types.FormatDOCX,
		Metadata: types.DocumentMetadata{
			SourcePath: path,
			TextLength: len(cleaned),
			Extractor:  "nguyenthenguyen/docx",
		},
	}, nil
}

func extractDoc(path string) (*types.Document, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return nil, errs.Wrap(errs.TagMalformedInput, fmt.Sprintf("failed to parse document: %s", path), err)
	}

	cleaned := CleanDOCXText(res.Body)
	return &types.Document{
		Text:   cleaned,
		Format: types.FormatDOC,
		Metadata: types.DocumentMetadata{
			SourcePath: path,
			TextLength: len(cleaned),
			Extractor:  "docconv",
		},
	}, nil
}

// ReadJobText loads a plain-text job description and normalizes it.
func ReadJobText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errs.Newf(errs.TagFileNotFound, "file not found: %s", path)
		}
		return "", errs.Wrap(errs.TagFileNotFound, fmt.Sprintf("failed to read file: %s", path), err)
	}
	return CleanJobText(string(data)), nil
}
