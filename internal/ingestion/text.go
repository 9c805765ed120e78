package ingestion

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	camelBoundaryRe = regexp.MustCompile(`([a-z])([A-Z])`)
	wordDigitRe     = regexp.MustCompile(`(\w)(\d)`)
	digitWordRe     = regexp.MustCompile(`(\d)(\w)`)
	emailAtRe       = regexp.MustCompile(`([a-zA-Z])(@)`)
	phonePunctRe    = regexp.MustCompile(`(\d)([-+()])`)
	sectionHeaderRe = regexp.MustCompile(`(EXPERIENCE|EDUCATION|SKILLS|PROJECTS|CERTIFICATIONS|SUMMARY)([A-Z])`)
	blankRunsRe     = regexp.MustCompile(`\n{3,}`)
	htmlTagRe       = regexp.MustCompile(`<[^>]+>`)

	docxParagraphRe = regexp.MustCompile(`</w:p>`)
	docxBreakRe     = regexp.MustCompile(`<w:(?:br|cr)[^>]*/?>`)
	docxTabRe       = regexp.MustCompile(`<w:tab[^>]*/?>`)
)

// CleanPDFText normalizes text pulled out of a PDF. Extraction tends to
// drop the spaces between runs, so word boundaries are re-inserted at
// case changes, letter/digit seams, email markers, and phone punctuation,
// and the common section headers are forced onto their own line.
func CleanPDFText(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRe.ReplaceAllString(text, " ")

	text = camelBoundaryRe.ReplaceAllString(text, "${1} ${2}")
	text = wordDigitRe.ReplaceAllString(text, "${1} ${2}")
	text = digitWordRe.ReplaceAllString(text, "${1} ${2}")

	text = emailAtRe.ReplaceAllString(text, "${1} ${2}")
	text = phonePunctRe.ReplaceAllString(text, "${1} ${2}")

	text = sectionHeaderRe.ReplaceAllString(text, "${1}\n${2}")

	return strings.TrimSpace(text)
}

// CleanDOCXText normalizes text pulled out of a word-processing document:
// line breaks are unified, runs of blank lines collapse to a single
// separator, and intra-line whitespace collapses to single spaces.
func CleanDOCXText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = blankRunsRe.ReplaceAllString(text, "\n\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		cleaned := strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
		if cleaned != "" {
			lines = append(lines, cleaned)
		} else if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// CleanJobText normalizes a job description before it is sent for parsing.
// Postings copied from job boards often carry HTML markup; anything that
// looks like markup is stripped, then whitespace is collapsed.
func CleanJobText(text string) string {
	if text == "" {
		return ""
	}

	if strings.Contains(text, "<") && strings.Contains(text, ">") {
		text = stripHTML(text)
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func stripHTML(text string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return htmlTagRe.ReplaceAllString(text, " ")
	}

	// Joining text nodes with a space keeps words from adjacent block
	// elements from running together.
	var parts []string
	doc.Find("*").Contents().Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) != "#text" {
			return
		}
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}

// flattenDocumentXML turns raw WordprocessingML into plain text: paragraph
// ends and breaks become newlines, tabs become tabs, every other tag is
// dropped, and entities are unescaped.
func flattenDocumentXML(content string) string {
	content = docxParagraphRe.ReplaceAllString(content, "\n")
	content = docxBreakRe.ReplaceAllString(content, "\n")
	content = docxTabRe.ReplaceAllString(content, "\t")
	content = htmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
