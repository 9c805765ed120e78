package rendering

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"strings"

	"resume-tailor/internal/errs"
	"resume-tailor/internal/types"
)

// The DOCX is authored directly as a minimal OPC package: content types,
// the package relationship, and a single document part.
const (
	docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

	docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
)

// Font sizes in half-points.
const (
	sizeName    = 32
	sizeHeading = 24
	sizeBody    = 22
)

func (r *Renderer) renderDOCX(resume *types.TailoredResume, path string) (*Result, error) {
	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	entries := map[string]string{
		"[Content_Types].xml": docxContentTypes,
		"_rels/.rels":         docxRels,
		"word/document.xml":   documentXML(resume),
	}
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		w, err := archive.Create(name)
		if err != nil {
			return nil, errs.Wrap(errs.TagMalformedInput, "failed to assemble DOCX package", err)
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			return nil, errs.Wrap(errs.TagMalformedInput, "failed to assemble DOCX package", err)
		}
	}
	if err := archive.Close(); err != nil {
		return nil, errs.Wrap(errs.TagMalformedInput, "failed to assemble DOCX package", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return nil, errs.Wrap(errs.TagFileNotFound, fmt.Sprintf("failed to write output file: %s", path), err)
	}
	return fileResult(path, FormatDOCX)
}

// documentXML builds the document part, section by section, in the order
// sections appear on the rendered page.
func documentXML(resume *types.TailoredResume) string {
	d := &docBuilder{}

	d.personalSection(resume.PersonalInfo)
	d.summarySection(resume.ProfessionalSummary)
	d.competenciesSection(resume.CoreCompetencies)
	d.experienceSection(resume.ProfessionalExperience)
	d.educationSection(resume.Education)
	d.technicalSkillsSection(resume.TechnicalSkills)
	d.projectsSection(resume.Projects)
	d.certificationsSection(resume.Certifications)

	return d.String()
}

type docBuilder struct {
	body strings.Builder
}

type paraOpts struct {
	bold   bool
	size   int
	center bool
	bullet bool
}

func (d *docBuilder) para(text string, opts paraOpts) {
	d.body.WriteString("<w:p>")
	if opts.center {
		d.body.WriteString(`<w:pPr><w:jc w:val="center"/></w:pPr>`)
	}
	d.body.WriteString("<w:r><w:rPr>")
	d.body.WriteString(`<w:rFonts w:ascii="Arial" w:hAnsi="Arial"/>`)
	if opts.bold {
		d.body.WriteString("<w:b/>")
	}
	size := opts.size
	if size == 0 {
		size = sizeBody
	}
	fmt.Fprintf(&d.body, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, size, size)
	d.body.WriteString("</w:rPr>")
	if opts.bullet {
		text = "• " + text
	}
	fmt.Fprintf(&d.body, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(text))
	d.body.WriteString("</w:r></w:p>")
}

func (d *docBuilder) heading(text string) {
	d.para(text, paraOpts{bold: true, size: sizeHeading})
}

func (d *docBuilder) blank() {
	d.body.WriteString("<w:p/>")
}

func (d *docBuilder) personalSection(info types.PersonalInfo) {
	if info.Name != "" {
		d.para(info.Name, paraOpts{bold: true, size: sizeName, center: true})
	}
	if contact := contactLine(info); contact != "" {
		d.para(contact, paraOpts{center: true})
	}
	d.blank()
}

func (d *docBuilder) summarySection(summary string) {
	if summary == "" {
		return
	}
	d.heading("PROFESSIONAL SUMMARY")
	d.para(summary, paraOpts{})
	d.blank()
}

func (d *docBuilder) competenciesSection(competencies []string) {
	if len(competencies) == 0 {
		return
	}
	d.heading("CORE COMPETENCIES")
	d.para(strings.Join(competencies, " • "), paraOpts{})
	d.blank()
}

func (d *docBuilder) experienceSection(experience []types.Experience) {
	if len(experience) == 0 {
		return
	}
	d.heading("PROFESSIONAL EXPERIENCE")
	for _, job := range experience {
		d.para(job.Position+" | "+job.Company, paraOpts{bold: true})
		d.para(job.Duration+" | "+job.Location, paraOpts{})
		for _, achievement := range job.Achievements {
			d.para(achievement, paraOpts{bullet: true})
		}
		d.blank()
	}
}

func (d *docBuilder) educationSection(education []types.Education) {
	if len(education) == 0 {
		return
	}
	d.heading("EDUCATION")
	for _, edu := range education {
		d.para(degreeLine(edu), paraOpts{bold: true})
		d.para(edu.Institution+" | "+edu.GraduationYear, paraOpts{})
	}
	d.blank()
}

func (d *docBuilder) technicalSkillsSection(skills types.TechnicalSkills) {
	groups := skillGroups(skills)
	if len(groups) == 0 {
		return
	}
	d.heading("TECHNICAL SKILLS")
	for _, group := range groups {
		d.para(group.label+": "+strings.Join(group.skills, ", "), paraOpts{})
	}
	d.blank()
}

func (d *docBuilder) projectsSection(projects []types.Project) {
	if len(projects) == 0 {
		return
	}
	d.heading("PROJECTS")
	for _, project := range projects {
		d.para(project.Name, paraOpts{bold: true})
		if project.Description != "" {
			d.para(project.Description, paraOpts{})
		}
		if len(project.Technologies) > 0 {
			d.para("Technologies: "+strings.Join(project.Technologies, ", "), paraOpts{})
		}
		d.blank()
	}
}

func (d *docBuilder) certificationsSection(certifications []types.Certification) {
	if len(certifications) == 0 {
		return
	}
	d.heading("CERTIFICATIONS")
	for _, cert := range certifications {
		d.para(certificationLine(cert), paraOpts{bullet: true})
	}
	d.blank()
}

func (d *docBuilder) String() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		"<w:body>" + d.body.String() + "</w:body></w:document>"
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
