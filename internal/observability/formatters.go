// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"resume-tailor/internal/rendering"
	"resume-tailor/internal/schemas"
	"resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of an extracted résumé.
func (p *Printer) PrintResume(resume *types.ResumeRecord) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidate: %s\n", resume.PersonalInfo.Name))
	if resume.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:     %s\n", resume.PersonalInfo.Email))
	}
	if resume.PersonalInfo.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", resume.PersonalInfo.Location))
	}
	sb.WriteString("\n")

	if len(resume.CoreCompetencies) > 0 {
		sb.WriteString("Core Competencies:\n")
		count := min(len(resume.CoreCompetencies), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.CoreCompetencies[i]))
		}
		if len(resume.CoreCompetencies) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.CoreCompetencies)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.ProfessionalExperience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.ProfessionalExperience), 3)
		for i := 0; i < count; i++ {
			exp := resume.ProfessionalExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", exp.Position, exp.Company, exp.Duration))
		}
		if len(resume.ProfessionalExperience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.ProfessionalExperience)-3))
		}
	}

	p.printBox("EXTRACTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJob outputs a human-readable summary of a parsed job posting.
func (p *Printer) PrintJob(job *types.JobRecord) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.CompanyName))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.JobTitle))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	if job.RemoteWork != "" {
		sb.WriteString(fmt.Sprintf("Remote:   %s\n", job.RemoteWork))
	}
	sb.WriteString("\n")

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(job.PreferredSkills) > 0 {
		sb.WriteString("Preferred Skills:\n")
		count := min(len(job.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.PreferredSkills[i]))
		}
		if len(job.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.PreferredSkills)-3))
		}
	}

	p.printBox("PARSED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the rendered output file summary.
func (p *Printer) PrintResult(result *rendering.Result, candidate, jobTitle, company string) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", candidate))
	sb.WriteString(fmt.Sprintf("Target:    %s", jobTitle))
	if company != "" {
		sb.WriteString(fmt.Sprintf(" at %s", company))
	}
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Output:    %s\n", result.OutputPath))
	sb.WriteString(fmt.Sprintf("Format:    %s (%.1f KB)", strings.ToUpper(string(result.Format)), result.FileSizeKB))

	p.printBox("TAILORED RESUME WRITTEN", sb.String())
}

// PrintSchemaWarnings outputs advisory schema violations for the tailored
// résumé. Nothing is printed when the résumé is clean.
func (p *Printer) PrintSchemaWarnings(warnings []schemas.Warning) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(warnings)))

	for i, w := range warnings {
		message := w.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", w.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA WARNINGS", sb.String())
}
